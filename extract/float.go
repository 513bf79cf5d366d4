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

package extract

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/numlit/internal/ext/unsafex"
	"github.com/bufbuild/numlit/scan"
)

// floatInfo describes the layout of an IEEE 754 binary float type.
type floatInfo struct {
	bits     int // Total width, for strconv.
	mantissa int // Significand bits, including the implicit one.
	exponent int // Exponent field bits.

	dig       int // Decimal digits preserved by a round trip.
	maxExp    int
	minExp    int
	exactPow  int // Largest exactly representable power of ten.
	exactMant uint64
}

var (
	float32Info = newFloatInfo(32, 24, 8)
	float64Info = newFloatInfo(64, 53, 11)
)

func newFloatInfo(bits, mantissa, exponent int) *floatInfo {
	info := &floatInfo{bits: bits, mantissa: mantissa, exponent: exponent}
	info.dig = int(float64(mantissa-1) * math.Log10(2))
	info.maxExp = 1 << (exponent - 1)
	info.minExp = 3 - info.maxExp
	info.exactMant = uint64(1) << mantissa

	// 10^k = 2^k * 5^k is exact as long as 5^k fits in the significand.
	for pow := uint64(5); pow < info.exactMant; pow *= 5 {
		info.exactPow++
	}
	return info
}

func infoOf[T constraints.Float]() *floatInfo {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return float32Info
	}
	return float64Info
}

// Dig returns the number of decimal digits that survive a round trip
// through T, like C's DBL_DIG.
func Dig[T constraints.Float]() int { return infoOf[T]().dig }

// MaxExp returns one more than the largest binary exponent of a finite T,
// like C's DBL_MAX_EXP.
func MaxExp[T constraints.Float]() int { return infoOf[T]().maxExp }

// MinExp returns one more than the smallest binary exponent of a normal T,
// like C's DBL_MIN_EXP.
func MinExp[T constraints.Float]() int { return infoOf[T]().minExp }

// pow10 holds the powers of ten that are exact in a float64.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// FloatValue extracts the floating-point value of a scanned literal.
//
// Returns false only if a finite literal rounds to infinity in a type
// narrower than float64; a float64 result saturates to infinity like
// [strconv.ParseFloat] does.
func FloatValue[T constraints.Float](res scan.Result) (T, bool) {
	sign := 1.0
	if res.Negative() {
		sign = -1
	}

	switch {
	case res.Special == scan.Infinity:
		return T(math.Inf(int(sign))), true
	case res.Special == scan.NaN:
		return T(math.Copysign(math.NaN(), sign)), true
	case res.IsZero():
		return T(math.Copysign(0, sign)), true
	case res.Base != 10:
		return T(sign) * nonDecimal[T](res), true
	}

	info := infoOf[T]()
	if v, ok := exact[T](res, info); ok {
		return v, true
	}
	return parse[T](res, info)
}

// exact computes the value of a short decimal literal with a single
// correctly rounded multiplication or division, following Clinger.
func exact[T constraints.Float](res scan.Result, info *floatInfo) (T, bool) {
	n := res.SignificantDigits() - res.TrailingZeros
	e10 := res.Exponent - res.FracDigits + res.TrailingZeros
	if n > info.dig || e10 > info.exactPow || e10 < -info.exactPow {
		return 0, false
	}

	var (
		mant uint64
		i    int
	)
	for d := range res.Mantissa() {
		if i >= res.LeadingZeros+n {
			break
		}
		if i >= res.LeadingZeros {
			mant = mant*10 + uint64(d)
		}
		i++
	}

	v := T(mant)
	if e10 >= 0 {
		v *= T(pow10[e10])
	} else {
		v /= T(pow10[-e10])
	}
	if res.Negative() {
		v = -v
	}
	return v, true
}

// parse hands the literal to strconv, after normalizing away separators and
// non-ASCII digits.
func parse[T constraints.Float](res scan.Result, info *floatInfo) (T, bool) {
	var scratch [64]byte
	buf := res.AppendASCII(scratch[:0])

	f, err := strconv.ParseFloat(unsafex.StringAlias(buf), info.bits)
	if err != nil && info.bits < 64 {
		// The scanner already validated the syntax, so this is ErrRange.
		return T(f), false
	}
	return T(f), true
}

// nonDecimal converts an integer literal in another base to T.
func nonDecimal[T constraints.Float](res scan.Result) T {
	if mag, ok := Magnitude(res); ok {
		return T(mag)
	}

	var v float64
	for d := range res.Mantissa() {
		v = v*float64(res.Base) + float64(d)
	}
	return T(v)
}

// FromFloat64 converts a native float to a float type, reporting false if
// a finite v overflows T.
func FromFloat64[T constraints.Float](v float64) (T, bool) {
	out := T(v)
	if math.IsInf(float64(out), 0) && !math.IsInf(v, 0) {
		return out, false
	}
	return out, true
}

// Truncate converts a native float to an integer type, discarding any
// fractional part. Returns false for NaN, infinities and values out of
// range for T.
func Truncate[T constraints.Integer](v float64) (T, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	v = math.Trunc(v)
	bits, signed := layout[T]()
	lo, hi := 0.0, math.Ldexp(1, bits)
	if signed {
		hi = math.Ldexp(1, bits-1)
		lo = -hi
	}
	if v < lo || v >= hi {
		return 0, false
	}
	if signed {
		return T(int64(v)), true
	}
	return T(uint64(v)), true
}
