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

// Package extract converts scanned literals and native numbers to values of
// a specific numeric width.
//
// Every conversion reports whether the value is representable in the
// requested type instead of wrapping or saturating. Integer accumulation is
// done on the magnitude in 64-bit unsigned arithmetic, and the sign is
// applied afterward so that the most negative value of a signed type parses
// without first overflowing its positive counterpart.
package extract

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/numlit/internal/ext/bitsx"
	"github.com/bufbuild/numlit/scan"
)

// IntValue extracts the integer value of a scanned literal.
//
// A literal with a fractional part is truncated toward zero, digit by digit,
// without a detour through floating point. Returns false if the literal is
// a special token or if the value does not fit in T.
func IntValue[T constraints.Integer](res scan.Result) (T, bool) {
	mag, ok := Magnitude(res)
	if !ok {
		return 0, false
	}
	return fromMagnitude[T](mag, res.Negative())
}

// Magnitude returns the absolute value of the integer part of a scanned
// literal, or false if it does not fit in a uint64.
func Magnitude(res scan.Result) (uint64, bool) {
	switch {
	case res.Special != scan.NotSpecial:
		return 0, false
	case res.IsZero():
		return 0, true
	}

	// keep is the number of mantissa digits that lie to the left of the
	// decimal point once the exponent is applied.
	keep := res.IntDigits + res.Exponent
	if keep <= 0 {
		return 0, true
	}

	var (
		acc  uint64
		ok   = true
		n    int
		base = uint64(res.Base)
	)
	for d := range res.Mantissa() {
		if n == keep {
			break
		}
		if acc, ok = bitsx.MulAdd(acc, base, uint64(d)); !ok {
			return 0, false
		}
		n++
	}

	// The remaining places are zeros contributed by the exponent. Since the
	// mantissa is nonzero, this overflows after at most twenty rounds.
	for ; n < keep; n++ {
		if acc, ok = bitsx.MulAdd(acc, base, 0); !ok {
			return 0, false
		}
	}
	return acc, true
}

// FromInt64 converts v to T, reporting whether it is in range.
func FromInt64[T constraints.Integer](v int64) (T, bool) {
	if v < 0 {
		return fromMagnitude[T](uint64(-v), true)
	}
	return fromMagnitude[T](uint64(v), false)
}

// FromUint64 converts v to T, reporting whether it is in range.
func FromUint64[T constraints.Integer](v uint64) (T, bool) {
	return fromMagnitude[T](v, false)
}

// fromMagnitude applies a sign to mag and range checks the result against
// T.
func fromMagnitude[T constraints.Integer](mag uint64, negative bool) (T, bool) {
	bits, signed := layout[T]()
	switch {
	case mag == 0:
		return 0, true

	case negative:
		if !signed || mag > uint64(1)<<(bits-1) {
			return 0, false
		}
		// For mag == 1<<63 the conversion wraps to MinInt64, which negates
		// to itself.
		return T(-int64(mag)), true

	default:
		limit := ^uint64(0) >> (64 - bits)
		if signed {
			limit >>= 1
		}
		if mag > limit {
			return 0, false
		}
		return T(mag), true
	}
}

// layout returns the size of T in bits and whether it is signed.
func layout[T constraints.Integer]() (bits int, signed bool) {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8, ^zero < 0
}

// MaxIntLen returns the number of decimal digits in the largest value of T.
func MaxIntLen[T constraints.Integer]() int {
	bits, signed := layout[T]()
	limit := ^uint64(0) >> (64 - bits)
	if signed {
		limit >>= 1
	}

	n := 0
	for ; limit > 0; limit /= 10 {
		n++
	}
	return n
}
