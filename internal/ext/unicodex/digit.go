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

// Package unicodex contains extensions to Go's package unicode.
package unicodex

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxBase is the largest base [Digit] understands.
const MaxBase = 36

// Digit parses a digit in the given base, up to base 36.
//
// Letters are case-insensitive. Only ASCII is considered; see [Numeral] for
// other decimal digits.
func Digit(d rune, base byte) (value byte, ok bool) {
	switch {
	case d >= '0' && d <= '9':
		value = byte(d) - '0'

	case d >= 'a' && d <= 'z':
		value = byte(d) - 'a' + 10

	case d >= 'A' && d <= 'Z':
		value = byte(d) - 'A' + 10

	default:
		value = 0xff
	}

	if value >= base {
		return 0, false
	}
	return value, true
}

// Numeral returns the decimal value of a rune in the Unicode Nd (decimal
// digit) category, which includes the ASCII digits.
func Numeral(r rune) (value byte, ok bool) {
	if r < utf8.RuneSelf {
		if r >= '0' && r <= '9' {
			return byte(r - '0'), true
		}
		return 0, false
	}

	// Nd characters are allocated in contiguous runs of ten, starting at
	// zero, so the offset into the containing range gives the value.
	table := unicode.Nd
	if r <= 0xffff {
		r16 := table.R16
		i, found := slices.BinarySearchFunc(r16, uint16(r), func(rng unicode.Range16, r uint16) int {
			switch {
			case rng.Hi < r:
				return -1
			case rng.Lo > r:
				return 1
			default:
				return 0
			}
		})
		if !found || (uint16(r)-r16[i].Lo)%r16[i].Stride != 0 {
			return 0, false
		}
		return byte((uint16(r) - r16[i].Lo) / r16[i].Stride % 10), true
	}

	r32 := table.R32
	i, found := slices.BinarySearchFunc(r32, uint32(r), func(rng unicode.Range32, r uint32) int {
		switch {
		case rng.Hi < r:
			return -1
		case rng.Lo > r:
			return 1
		default:
			return 0
		}
	})
	if !found || (uint32(r)-r32[i].Lo)%r32[i].Stride != 0 {
		return 0, false
	}
	return byte((uint32(r) - r32[i].Lo) / r32[i].Stride % 10), true
}

// DigitOrNumeral is like [Digit], but also accepts any Nd rune when unicode
// is set.
func DigitOrNumeral(d rune, base byte, unicode bool) (value byte, ok bool) {
	if d < utf8.RuneSelf || !unicode {
		return Digit(d, base)
	}

	value, ok = Numeral(d)
	if !ok || value >= base {
		return 0, false
	}
	return value, true
}

// SingleNumeral reports whether s is a single user-perceived character made
// of exactly one non-ASCII rune, and returns that rune.
//
// This is the shape of input that callers may hand to the single-numeral
// path; it does not check that the rune is actually a numeral.
func SingleNumeral(s string) (r rune, ok bool) {
	if len(s) == 0 || s[0] < utf8.RuneSelf {
		return 0, false
	}

	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if rest != "" {
		return 0, false
	}

	r, n := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError || n != len(cluster) {
		return 0, false
	}
	return r, true
}
