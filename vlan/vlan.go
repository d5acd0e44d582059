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

// Package vlan decodes dot1q VLAN port bitmasks into per-port membership.
package vlan

import (
	"errors"
	"strconv"
)

// MaxPorts is the switch port ceiling the 32-bit masks can describe.
// Switches with more ports are rejected, not truncated.
const MaxPorts = 32

// ErrTooManyPorts is returned for port counts beyond MaxPorts.
var ErrTooManyPorts = errors.New("vlan: port count exceeds 32")

// Membership symbols, one per port column.
const (
	Untagged = "U"
	Tagged   = "T"
	Excluded = "E"
)

// DecodePorts converts a VLAN's egress and untagged port masks into a
// display row: vlan id, name, then one membership symbol per port. Bit 31
// (most significant) of a mask is port 1. An untagged bit wins over an
// egress bit; the untagged mask is not required to be a subset of the
// egress mask.
func DecodePorts(vlanID int, name string, egress, untagged uint32, portCount int) ([]string, error) {
	if portCount > MaxPorts {
		return nil, ErrTooManyPorts
	}

	row := make([]string, 0, 2+portCount)
	row = append(row, strconv.Itoa(vlanID), name)
	for p := 0; p < portCount; p++ {
		bit := uint32(1) << (31 - p)
		switch {
		case untagged&bit != 0:
			row = append(row, Untagged)
		case egress&bit != 0:
			row = append(row, Tagged)
		default:
			row = append(row, Excluded)
		}
	}
	return row, nil
}

// PortListMask packs the leading octets of a dot1q PortList octet string
// into a 32-bit mask, first octet highest so its top bit is port 1.
// Octets past the fourth describe ports beyond MaxPorts and are ignored
// here; callers reject such switches via the port count.
func PortListMask(octets []byte) uint32 {
	var mask uint32
	for i := 0; i < len(octets) && i < 4; i++ {
		mask |= uint32(octets[i]) << (24 - 8*i)
	}
	return mask
}
