package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minionsoliver/snmp-switch/report"
)

var (
	// Global flags
	cfgFile   string
	aliasFile string
	community string
	port      int
	timeout   time.Duration
	retries   int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "snmp-switch HOST",
	Short: "Switch report tool over SNMP",
	Long: `snmp-switch queries a network switch over SNMP v2c and prints three
reports: device identity and uptime, per-port interface statistics with
the MAC addresses learned on each port, and VLAN membership per port.

Learned MAC addresses can be annotated with friendly names from an alias
file of whitespace-separated "MAC NAME" lines.

Examples:
  # Full report
  snmp-switch 192.168.1.1

  # Single report with a non-default community
  snmp-switch ports -C mycommunity sw1.example.net

  # VLAN membership only
  snmp-switch vlans sw1.example.net`,
	Args:          cobra.ExactArgs(1),
	RunE:          runAll,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "cfgfile", "", "config file (default is $HOME/.snmp-switch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&aliasFile, "config", "c", defaultAliasPath(), "MAC alias file")
	rootCmd.PersistentFlags().StringVarP(&community, "community", "C", "public", "read community string")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 161, "SNMP agent port")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	rootCmd.PersistentFlags().IntVarP(&retries, "retries", "r", 3, "number of retries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("community", rootCmd.PersistentFlags().Lookup("community"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config"))
		viper.SetConfigName(".snmp-switch")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SNMP_SWITCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	// Apply viper values to flags
	aliasFile = viper.GetString("config")
	community = viper.GetString("community")
	port = viper.GetInt("port")
	timeout = viper.GetDuration("timeout")
	retries = viper.GetInt("retries")
	verbose = viper.GetBool("verbose")
}

// defaultAliasPath is the per-user MAC alias file location.
func defaultAliasPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hosts"
	}
	return filepath.Join(home, ".config", "snmp-switch", "hosts")
}

// runAll generates all three reports against one session, buffering the
// output so a mid-run failure prints a single error instead of a partial
// document.
func runAll(cmd *cobra.Command, args []string) error {
	client, aliases, err := setup(args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	var buf bytes.Buffer
	generators := []func() (string, error){
		func() (string, error) { return report.Identity(client) },
		func() (string, error) { return report.Ports(client, aliases) },
		func() (string, error) { return report.VLANs(client) },
	}
	for i, generate := range generators {
		text, err := generate()
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}

	fmt.Print(buf.String())
	return nil
}
