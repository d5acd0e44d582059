// Copyright 2025 the snmp-switch authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minionsoliver/snmp-switch/report"
)

var vlansCmd = &cobra.Command{
	Use:   "vlans HOST",
	Short: "Print VLAN membership per port",
	Long: `Print the VLAN report: a summary of configured versus supported VLANs,
then one row per VLAN marking each port U (untagged), T (tagged) or
E (excluded).

Switches with more than 32 ports are not supported.

Examples:
  snmp-switch vlans 192.168.1.1`,
	Args: cobra.ExactArgs(1),
	RunE: runVLANs,
}

func init() {
	rootCmd.AddCommand(vlansCmd)
}

func runVLANs(cmd *cobra.Command, args []string) error {
	client, _, err := setup(args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	text, err := report.VLANs(client)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
