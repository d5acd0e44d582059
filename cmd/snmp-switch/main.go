// snmp-switch queries a network switch over SNMP and prints identity,
// port and VLAN reports.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var hostErr *hostError
		if errors.As(err, &hostErr) {
			fmt.Fprintln(os.Stderr, hostErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
}
