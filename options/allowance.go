// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

import "fmt"

// Origin is where a value being classified came from.
type Origin byte

const (
	// FromText is a value that was scanned out of text.
	FromText Origin = iota + 1
	// FromNumeric is a value that was already a native number.
	FromNumeric
)

// String implements [fmt.Stringer].
func (o Origin) String() string {
	switch o {
	case FromText:
		return "text"
	case FromNumeric:
		return "numeric"
	default:
		return fmt.Sprintf("Origin(%d)", byte(o))
	}
}

// Allowance describes from which origins a special float value is
// acceptable.
type Allowance byte

const (
	Allowed     Allowance = iota // Accepted from any origin.
	Disallowed                   // Never accepted.
	TextOnly                     // Accepted only when scanned from text.
	NumericOnly                  // Accepted only from native numbers.

	allowanceCount
)

var allowanceNames = [...]string{
	Allowed:     "allowed",
	Disallowed:  "disallowed",
	TextOnly:    "text_only",
	NumericOnly: "numeric_only",
}

// Permits returns whether a value from the given origin is acceptable.
func (a Allowance) Permits(o Origin) bool {
	switch a {
	case Allowed:
		return true
	case TextOnly:
		return o == FromText
	case NumericOnly:
		return o == FromNumeric
	default:
		return false
	}
}

// ParseAllowance parses the name of an allowance, as produced by
// [Allowance.String].
func ParseAllowance(name string) (Allowance, error) {
	for i, n := range allowanceNames {
		if n == name {
			return Allowance(i), nil
		}
	}
	return 0, fmt.Errorf("options: unknown allowance %q", name)
}

// String implements [fmt.Stringer].
func (a Allowance) String() string {
	if !a.valid() {
		return fmt.Sprintf("Allowance(%d)", byte(a))
	}
	return allowanceNames[a]
}

func (a Allowance) valid() bool {
	return a < allowanceCount
}
