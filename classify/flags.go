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

package classify

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/bufbuild/numlit/options"
)

// Flags is a classification descriptor: the set of numeric interpretations
// that are valid for an input, plus the input's origin.
//
// A zero Flags means the input is not a number at all.
type Flags uint16

const (
	// Integer is set for integer literals and native integers.
	Integer Flags = 1 << iota
	// Float is set for literals with a decimal point, an exponent or a
	// special token, and for native floats.
	Float
	// IntLike is set for finite floats with no fractional part. It implies
	// Float.
	IntLike
	// Infinity and NaN record which special float was found. Both imply
	// Float.
	Infinity
	NaN
	// Overflow is set for an integer that does not fit in an int64, or a
	// float literal that rounds to infinity as a float64.
	Overflow
	// FromText and FromNumeric record the origin of the input.
	FromText
	FromNumeric

	flagCount = iota
)

var flagNames = [flagCount]string{
	"integer", "float", "intlike", "inf", "nan", "overflow", "text", "numeric",
}

// Has returns whether every flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any returns whether some flag in mask is set.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// IsNumber returns whether any numeric interpretation is valid.
func (f Flags) IsNumber() bool {
	return f.Any(Integer | Float)
}

// Origin returns the origin recorded in f, or zero if f is empty.
func (f Flags) Origin() options.Origin {
	switch {
	case f.Has(FromText):
		return options.FromText
	case f.Has(FromNumeric):
		return options.FromNumeric
	default:
		return 0
	}
}

// Permitted returns whether any infinity or NaN recorded in f is acceptable
// under opts for f's origin.
func (f Flags) Permitted(opts options.Options) bool {
	origin := f.Origin()
	switch {
	case f.Has(Infinity) && !opts.Inf.Permits(origin):
		return false
	case f.Has(NaN) && !opts.NaN.Permits(origin):
		return false
	default:
		return true
	}
}

// All returns an iterator over the individual flags set in f, lowest first.
func (f Flags) All() iter.Seq[Flags] {
	return func(yield func(Flags) bool) {
		for word := uint16(f); word != 0; word &= word - 1 {
			if !yield(Flags(word & -word)) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
//
// Flags are joined with "|", as in "float|intlike|text". An empty set is
// "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var out strings.Builder
	for flag := range f.All() {
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		i := bits.TrailingZeros16(uint16(flag))
		if i < flagCount {
			out.WriteString(flagNames[i])
		} else {
			fmt.Fprintf(&out, "Flags(%#x)", uint16(flag))
		}
	}
	return out.String()
}

// ParseFlags parses the output of [Flags.String].
func ParseFlags(s string) (Flags, error) {
	if s == "none" {
		return 0, nil
	}

	var f Flags
next:
	for name := range strings.SplitSeq(s, "|") {
		for i, n := range flagNames {
			if n == name {
				f |= 1 << i
				continue next
			}
		}
		return 0, fmt.Errorf("classify: unknown flag %q", name)
	}
	return f, nil
}
