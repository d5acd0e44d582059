package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minionsoliver/snmp-switch/report"
)

var portsCmd = &cobra.Command{
	Use:   "ports HOST",
	Short: "Print per-port interface statistics",
	Long: `Print the per-port interface report: name, operational status, speed,
octet counters and the MAC addresses learned on each port.

64-bit counters are used when the device implements the ifXTable;
otherwise the report falls back to the 32-bit counters and says so in
the column labels.

Examples:
  snmp-switch ports 192.168.1.1

  # With a MAC alias file
  snmp-switch ports -c ~/.config/snmp-switch/hosts 192.168.1.1`,
	Args: cobra.ExactArgs(1),
	RunE: runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	client, aliases, err := setup(args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	text, err := report.Ports(client, aliases)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
