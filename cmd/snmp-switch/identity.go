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

var identityCmd = &cobra.Command{
	Use:   "identity HOST",
	Short: "Print device identity and uptime",
	Long: `Print the device identity report from the standard system group:
name, location, description and uptime.

Examples:
  snmp-switch identity 192.168.1.1`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentity,
}

func init() {
	rootCmd.AddCommand(identityCmd)
}

func runIdentity(cmd *cobra.Command, args []string) error {
	client, _, err := setup(args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	text, err := report.Identity(client)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
