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

// Package scan recognizes numeric literals in text without allocating.
//
// [Scan] trims ASCII whitespace, then matches the trimmed text against the
// integer or float grammar selected by an [options.Options]. The whole
// trimmed text must match; a partial match is not a number. The [Result]
// records the structural facts later stages need (sign, decimal point,
// exponent, digit counts, special tokens) and refers back into the scanned
// text rather than copying it.
//
// The default grammar is:
//
//	literal  = space* [sign] (special | decimal) space*
//	special  = "inf" | "infinity" | "nan"          (ASCII case-insensitive)
//	decimal  = (digits ["." [digits]] | "." digits) [exponent]
//	exponent = ("e" | "E") [sign] digits
//	digits   = digit {["_"] digit}                 (underscores if allowed)
//
// With an explicit base, only integers are recognized:
//
//	literal = space* [sign] [prefix ["_"]] digits space*
//	prefix  = "0x" | "0o" | "0b"                   (matching the base)
package scan

import (
	"fmt"
	"iter"
	"strconv"
	"unicode/utf8"

	"github.com/bufbuild/numlit/internal/charclass"
	"github.com/bufbuild/numlit/internal/ext/unicodex"
)

// maxExponent bounds the magnitude of a scanned exponent. Anything this
// large is far outside the range of every float type.
const maxExponent = 1 << 30

// Special is a special float token.
type Special byte

const (
	NotSpecial Special = iota
	Infinity
	NaN
)

// String implements [fmt.Stringer].
func (s Special) String() string {
	switch s {
	case NotSpecial:
		return "none"
	case Infinity:
		return "inf"
	case NaN:
		return "nan"
	default:
		return fmt.Sprintf("Special(%d)", byte(s))
	}
}

// Result is the structure of a successfully scanned literal.
type Result struct {
	// Start and End are the bounds of the literal in the scanned text after
	// whitespace is trimmed. The literal includes any sign and base prefix.
	Start, End int

	// Sign is '+', '-' or zero if the literal is unsigned.
	Sign byte
	// Base is the base digits are written in.
	Base int
	// Prefix is the length of the base prefix, including a separator
	// underscore that directly follows it.
	Prefix int

	// Point and Exp record whether a decimal point and exponent were present.
	Point, Exp bool
	// IntDigits and FracDigits count the digits before and after the decimal
	// point, not counting underscores.
	IntDigits, FracDigits int
	// Exponent is the value of the exponent, saturated far beyond the range
	// of any float type.
	Exponent int

	// LeadingZeros and TrailingZeros count zero digits at either end of the
	// combined integer and fractional digits.
	LeadingZeros, TrailingZeros int

	// Special is set when the literal is an infinity or NaN token.
	Special Special
	// Numeral is set for a lone numeral character, which is scanned
	// independently of the grammar above.
	Numeral bool

	// Underscores is set if any separator underscores were seen.
	Underscores bool
	// Unicode is set if any non-ASCII digits were seen.
	Unicode bool

	text    string
	expAt   int  // Offset of the exponent marker, or End.
	numeral byte // Value of a Numeral.
}

// Literal returns the scanned literal, without surrounding whitespace.
//
// For a numeral scanned from a rune, this is empty.
func (r Result) Literal() string {
	return r.text[r.Start:r.End]
}

// Negative returns whether the literal has a minus sign.
func (r Result) Negative() bool {
	return r.Sign == '-'
}

// Digits returns the number of mantissa digits.
func (r Result) Digits() int {
	return r.IntDigits + r.FracDigits
}

// SignificantDigits returns the number of mantissa digits after leading
// zeros, which is zero if the mantissa is zero.
func (r Result) SignificantDigits() int {
	return r.Digits() - r.LeadingZeros
}

// IsZero returns whether the literal is a (possibly signed) zero.
func (r Result) IsZero() bool {
	return r.Special == NotSpecial && r.SignificantDigits() == 0
}

// IsInteger returns whether the literal has integer syntax: no decimal
// point, no exponent and no special token.
func (r Result) IsInteger() bool {
	return r.Special == NotSpecial && !r.Point && !r.Exp
}

// IsFloat returns whether the literal is only valid as a float.
func (r Result) IsFloat() bool {
	return !r.IsInteger()
}

// IntLike returns whether the literal's value is a whole number, judged from
// its digits alone: every nonzero digit must lie to the left of the decimal
// point once the exponent is applied.
//
// Special tokens are never int-like.
func (r Result) IntLike() bool {
	switch {
	case r.Special != NotSpecial:
		return false
	case r.IsZero():
		return true
	default:
		return r.TrailingZeros >= r.FracDigits-r.Exponent
	}
}

// DecimalExponent returns the power of ten of the leading significant
// digit, i.e., the exponent of the literal written in scientific notation.
//
// Returns zero for zero.
func (r Result) DecimalExponent() int {
	if r.IsZero() || r.Special != NotSpecial {
		return 0
	}
	return r.SignificantDigits() - 1 + r.Exponent - r.FracDigits
}

// Mantissa returns an iterator over the values of the mantissa digits, in
// order, skipping separators and the decimal point.
func (r Result) Mantissa() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		switch {
		case r.Numeral:
			yield(r.numeral)
			return
		case r.Special != NotSpecial:
			return
		}

		base := byte(r.Base)
		i := r.Start + r.Prefix
		if r.Sign != 0 {
			i++
		}
		for i < r.expAt {
			c := r.text[i]
			if c == '_' || c == '.' {
				i++
				continue
			}
			if c < utf8.RuneSelf {
				d, _ := unicodex.Digit(rune(c), base)
				if !yield(d) {
					return
				}
				i++
				continue
			}

			ru, n := utf8.DecodeRuneInString(r.text[i:r.expAt])
			d, _ := unicodex.Numeral(ru)
			if !yield(d) {
				return
			}
			i += n
		}
	}
}

// AppendASCII appends an ASCII rendering of a base 10 literal to dst, in
// the syntax accepted by [strconv.ParseFloat]: separators are removed and
// non-ASCII digits are replaced with their ASCII equivalents.
func (r Result) AppendASCII(dst []byte) []byte {
	if r.Negative() {
		dst = append(dst, '-')
	}
	switch r.Special {
	case Infinity:
		return append(dst, "inf"...)
	case NaN:
		return append(dst, "nan"...)
	}

	if r.Numeral {
		return append(dst, '0'+r.numeral)
	}

	i := r.Start + r.Prefix
	if r.Sign != 0 {
		i++
	}
	for i < r.expAt {
		c := r.text[i]
		switch {
		case c == '_':
			i++
		case c < utf8.RuneSelf:
			dst = append(dst, c)
			i++
		default:
			ru, n := utf8.DecodeRuneInString(r.text[i:r.expAt])
			d, _ := unicodex.Numeral(ru)
			dst = append(dst, '0'+d)
			i += n
		}
	}

	if r.Exp {
		dst = append(dst, 'e')
		dst = strconv.AppendInt(dst, int64(r.Exponent), 10)
	}
	return dst
}

// String implements [fmt.Stringer].
func (r Result) String() string {
	return fmt.Sprintf(
		"%q base=%d int=%d frac=%d exp=%v(%d) special=%v",
		r.Literal(), r.Base, r.IntDigits, r.FracDigits, r.Exp, r.Exponent, r.Special,
	)
}

// FoldSpecial returns the special token spelled by s, ignoring ASCII case.
func FoldSpecial(s string) Special {
	switch {
	case charclass.EqualFold(s, "inf"), charclass.EqualFold(s, "infinity"):
		return Infinity
	case charclass.EqualFold(s, "nan"):
		return NaN
	default:
		return NotSpecial
	}
}
