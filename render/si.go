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

// Package render formats counters and tables for the switch reports.
package render

import (
	"fmt"
	"math"
	"strconv"
)

// Metric prefixes, one per factor of 1000.
var siPrefixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// FormatSI renders a non-negative counter scaled to a metric prefix with
// the given number of fractional digits: FormatSI(1500000, 2) == "1.50M".
// Values that would need a prefix beyond yotta are an error, not clamped.
func FormatSI(value float64, decimals int) (string, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("render: value %v is not a non-negative finite number", value)
	}

	idx := 0
	for value >= 1000 {
		value /= 1000
		idx++
		if idx >= len(siPrefixes) {
			return "", fmt.Errorf("render: value exceeds the %s prefix scale",
				siPrefixes[len(siPrefixes)-1])
		}
	}

	return strconv.FormatFloat(value, 'f', decimals, 64) + siPrefixes[idx], nil
}
