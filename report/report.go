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

// Package report builds the identity, port and VLAN reports. Each driver
// returns the rendered report as a string so the caller can buffer output
// and flush it only after every report succeeded.
package report

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/minionsoliver/snmp-switch/session"
)

// Querier is the slice of the SNMP session the drivers consume.
type Querier interface {
	// Get fetches one value per OID, in argument order.
	Get(oids ...string) ([]session.Value, error)
	// WalkTable walks parallel table columns into rows.
	WalkTable(columns ...string) ([]session.Row, error)
}

var _ Querier = (*session.Client)(nil)

// formatUptime renders a sysUpTime tick count (centiseconds) as a
// human duration, 360000 -> "1:00:00".
func formatUptime(ticks uint64) string {
	total := ticks / 100
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if days > 0 {
		return fmt.Sprintf("%d days, %d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// macFromIndex converts a bridge FDB instance index (six decimal octets)
// into a colon-separated MAC address string.
func macFromIndex(index string) (string, error) {
	parts := strings.Split(index, ".")
	if len(parts) != 6 {
		return "", fmt.Errorf("report: FDB index %q is not a MAC address", index)
	}
	hw := make(net.HardwareAddr, 6)
	for i, p := range parts {
		octet, err := strconv.Atoi(p)
		if err != nil || octet < 0 || octet > 255 {
			return "", fmt.Errorf("report: FDB index %q is not a MAC address", index)
		}
		hw[i] = byte(octet)
	}
	return hw.String(), nil
}
