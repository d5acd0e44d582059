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

package session

import (
	"errors"
	"fmt"

	"github.com/gosnmp/gosnmp"
)

// ErrNotConnected is returned when a request is issued before Connect.
var ErrNotConnected = errors.New("session: not connected")

// ProtocolError reports a failed SNMP exchange: either a transport
// indication (Err set) or a non-zero error status in the response
// (Status and Index set, Index naming the offending varbind).
type ProtocolError struct {
	Op     string
	Status string
	Index  int
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("session: %s: %s at index %d", e.Op, e.Status, e.Index)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// CapabilityError reports a MIB table the device does not implement.
// Report drivers may recover by querying an alternate table.
type CapabilityError struct {
	Table string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("session: device does not implement %s", e.Table)
}

// errorStatusName names an SNMP error-status code for diagnostics.
func errorStatusName(s gosnmp.SNMPError) string {
	switch s {
	case gosnmp.NoError:
		return "noError"
	case gosnmp.TooBig:
		return "tooBig"
	case gosnmp.NoSuchName:
		return "noSuchName"
	case gosnmp.BadValue:
		return "badValue"
	case gosnmp.ReadOnly:
		return "readOnly"
	case gosnmp.GenErr:
		return "genErr"
	case gosnmp.NoAccess:
		return "noAccess"
	case gosnmp.WrongType:
		return "wrongType"
	case gosnmp.WrongLength:
		return "wrongLength"
	case gosnmp.WrongEncoding:
		return "wrongEncoding"
	case gosnmp.WrongValue:
		return "wrongValue"
	case gosnmp.NoCreation:
		return "noCreation"
	case gosnmp.InconsistentValue:
		return "inconsistentValue"
	case gosnmp.ResourceUnavailable:
		return "resourceUnavailable"
	case gosnmp.CommitFailed:
		return "commitFailed"
	case gosnmp.UndoFailed:
		return "undoFailed"
	case gosnmp.AuthorizationError:
		return "authorizationError"
	case gosnmp.NotWritable:
		return "notWritable"
	case gosnmp.InconsistentName:
		return "inconsistentName"
	default:
		return fmt.Sprintf("errorStatus(%d)", int(s))
	}
}
