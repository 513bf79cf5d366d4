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

package scan

import (
	"unicode/utf8"

	"github.com/bufbuild/numlit/internal/charclass"
	"github.com/bufbuild/numlit/internal/ext/unicodex"
	"github.com/bufbuild/numlit/options"
)

// Scan matches text against the numeric grammar selected by opts.
//
// Returns false if text, once trimmed of whitespace, is not entirely a
// numeric literal.
func Scan(text string, opts options.Options) (Result, bool) {
	if opts.AllowUnicodeDigits {
		if r, ok := unicodex.SingleNumeral(text); ok {
			res, ok := ScanRune(r, opts)
			if !ok {
				return Result{}, false
			}
			res.text = text
			res.End = len(text)
			res.expAt = res.End
			return res, true
		}
	}

	start, end := charclass.Trim(text)
	if start == end {
		return Result{}, false
	}

	s := scanner{text: text, pos: start, end: end, opts: opts}
	res := Result{
		Start: start,
		End:   end,
		Base:  opts.EffectiveBase(),
		text:  text,
		expAt: end,
	}

	if charclass.IsSign(text[s.pos]) {
		res.Sign = text[s.pos]
		s.pos++
	}

	var ok bool
	if opts.IsDefaultBase() {
		if res.Special = FoldSpecial(text[s.pos:end]); res.Special != NotSpecial {
			return res, true
		}
		ok = s.decimal(&res)
	} else {
		ok = s.integer(&res)
	}

	if !ok || s.pos != s.end {
		return Result{}, false
	}
	return res, true
}

// ScanRune classifies a lone numeral character.
//
// This path is independent of the literal grammar: it only recognizes a
// single decimal digit, ASCII or otherwise, with no sign. Non-ASCII digits
// require [options.Options.AllowUnicodeDigits].
func ScanRune(r rune, opts options.Options) (Result, bool) {
	if r >= utf8.RuneSelf && !opts.AllowUnicodeDigits {
		return Result{}, false
	}

	v, ok := unicodex.Numeral(r)
	base := opts.EffectiveBase()
	if !ok || int(v) >= base {
		return Result{}, false
	}

	res := Result{
		Base:      base,
		IntDigits: 1,
		Numeral:   true,
		Unicode:   r >= utf8.RuneSelf,
		numeral:   v,
	}
	if v == 0 {
		res.LeadingZeros = 1
		res.TrailingZeros = 1
	}
	return res, true
}

// scanner is the cursor state of a single call to [Scan].
type scanner struct {
	text     string
	pos, end int
	opts     options.Options

	mantissa int // Mantissa digits seen so far.
}

// decimal scans the default grammar, after any sign.
func (s *scanner) decimal(res *Result) bool {
	n, ok := s.digits(res, 10, true)
	if !ok {
		return false
	}
	res.IntDigits = n

	if s.pos < s.end && charclass.IsPoint(s.text[s.pos]) {
		res.Point = true
		s.pos++
		if n, ok = s.digits(res, 10, true); !ok {
			return false
		}
		res.FracDigits = n
	}

	// A bare point, or nothing at all before the exponent, is not a number.
	if res.Digits() == 0 {
		return false
	}

	if s.pos < s.end && charclass.IsExponent(s.text[s.pos]) {
		res.Exp = true
		res.expAt = s.pos
		s.pos++

		negative := false
		if s.pos < s.end && charclass.IsSign(s.text[s.pos]) {
			negative = s.text[s.pos] == '-'
			s.pos++
		}

		start := s.pos
		if _, ok := s.digits(res, 10, false); !ok || s.pos == start {
			return false
		}
		res.Exponent = s.exponent(start)
		if negative {
			res.Exponent = -res.Exponent
		}
	}

	return true
}

// integer scans an integer in an explicit or prefix-selected base, after
// any sign.
func (s *scanner) integer(res *Result) bool {
	base := res.Base
	rest := s.text[s.pos:s.end]
	switch s.opts.Base {
	case options.PrefixBase:
		if len(rest) >= 2 && rest[0] == '0' {
			switch charclass.Lower(rest[1]) {
			case 'x':
				base = 16
			case 'o':
				base = 8
			case 'b':
				base = 2
			}
			if base != 10 {
				res.Prefix = 2
			}
		}
	case 16:
		if charclass.HasPrefixFold(rest, "0x") {
			res.Prefix = 2
		}
	case 8:
		if charclass.HasPrefixFold(rest, "0o") {
			res.Prefix = 2
		}
	case 2:
		if charclass.HasPrefixFold(rest, "0b") {
			res.Prefix = 2
		}
	}
	res.Base = base
	s.pos += res.Prefix

	// A single separator may follow the prefix, as in 0x_ff.
	if res.Prefix > 0 && s.opts.AllowUnderscores &&
		s.pos < s.end && charclass.IsSeparator(s.text[s.pos]) {
		res.Prefix++
		res.Underscores = true
		s.pos++
	}

	n, ok := s.digits(res, byte(base), true)
	if !ok || n == 0 {
		return false
	}
	res.IntDigits = n

	// Without a prefix, a nonzero decimal may not start with 0, so that 010
	// is not mistaken for an octal literal.
	if s.opts.Base == options.PrefixBase && res.Prefix == 0 &&
		res.LeadingZeros > 0 && res.SignificantDigits() > 0 {
		return false
	}
	return true
}

// digits consumes a run of digits in the given base, with single
// underscores between digits if they are allowed.
//
// Returns the number of digits consumed. Returns false if an underscore is
// misplaced; a run that is empty or stops at a non-digit is not an error.
func (s *scanner) digits(res *Result, base byte, mantissa bool) (n int, ok bool) {
	sep := false // Whether the previous character was an underscore.
	for s.pos < s.end {
		c := s.text[s.pos]
		if charclass.IsSeparator(c) {
			if !s.opts.AllowUnderscores || sep || n == 0 {
				return n, false
			}
			res.Underscores = true
			sep = true
			s.pos++
			continue
		}

		var (
			v    byte
			size = 1
		)
		if c < utf8.RuneSelf {
			if v, ok = unicodex.Digit(rune(c), base); !ok {
				break
			}
		} else {
			if !s.opts.AllowUnicodeDigits {
				break
			}
			var r rune
			r, size = utf8.DecodeRuneInString(s.text[s.pos:s.end])
			if v, ok = unicodex.DigitOrNumeral(r, base, true); !ok {
				break
			}
			res.Unicode = true
		}

		s.pos += size
		sep = false
		n++

		if !mantissa {
			continue
		}
		if v == 0 {
			if res.LeadingZeros == s.mantissa {
				res.LeadingZeros++
			}
			res.TrailingZeros++
		} else {
			res.TrailingZeros = 0
		}
		s.mantissa++
	}

	// A trailing underscore is as bad as a leading one.
	return n, !sep
}

// exponent evaluates the exponent digits from start to the cursor,
// saturating at maxExponent.
func (s *scanner) exponent(start int) int {
	var exp int
	for i := start; i < s.pos; {
		c := s.text[i]
		if charclass.IsSeparator(c) {
			i++
			continue
		}

		var d byte
		if c < utf8.RuneSelf {
			d = c - '0'
			i++
		} else {
			r, n := utf8.DecodeRuneInString(s.text[i:s.pos])
			d, _ = unicodex.Numeral(r)
			i += n
		}

		if exp < maxExponent {
			exp = exp*10 + int(d)
		}
	}
	return min(exp, maxExponent)
}
