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
	"fmt"
	"strconv"

	"github.com/gosnmp/gosnmp"
)

// Kind discriminates the two value shapes the report drivers consume.
type Kind int

const (
	// Integer covers all numeric SNMP types (Integer, Counter, Gauge,
	// TimeTicks).
	Integer Kind = iota
	// Text covers octet strings and everything rendered as a string.
	// Octet strings keep their raw bytes; PortList masks arrive this way.
	Text
)

// Value is a response varbind value, typed once at ingestion so that no
// consumer has to re-infer it.
type Value struct {
	Kind Kind
	Int  uint64
	Text string
}

// FromPDU converts a gosnmp varbind into a tagged Value.
func FromPDU(pdu gosnmp.SnmpPDU) Value {
	switch pdu.Type {
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Counter64,
		gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32:
		return Value{Kind: Integer, Int: gosnmp.ToBigInt(pdu.Value).Uint64()}
	case gosnmp.OctetString:
		switch v := pdu.Value.(type) {
		case []byte:
			return Value{Kind: Text, Text: string(v)}
		case string:
			return Value{Kind: Text, Text: v}
		}
	}
	return Value{Kind: Text, Text: fmt.Sprintf("%v", pdu.Value)}
}

// String renders the value for display.
func (v Value) String() string {
	if v.Kind == Integer {
		return strconv.FormatUint(v.Int, 10)
	}
	return v.Text
}

// Uint returns the numeric value, zero for text values.
func (v Value) Uint() uint64 {
	return v.Int
}

// Bytes returns the raw octets of a text value.
func (v Value) Bytes() []byte {
	return []byte(v.Text)
}
