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

// Package classify turns an input and an [options.Options] into a
// classification descriptor.
//
// Text is handed to the scanner; native numbers are classified from their
// own values. The descriptor reports everything that was found, including
// infinities and NaNs that the configuration may go on to reject: policy is
// applied later, by package resolve.
package classify

import (
	"fmt"
	"math"

	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/scan"
)

// maxDecimalExp is the largest decimal exponent of a finite float64. A
// literal whose leading digit sits below this power of ten cannot overflow.
var maxDecimalExp = int(float64(extract.MaxExp[float64]()) * math.Log10(2))

// Evaluation is the full result of classifying an input.
type Evaluation struct {
	Flags Flags
	// Scan is the scanned literal. It is only meaningful if the input is
	// text and Flags reports a number.
	Scan  scan.Result
	Input Input
}

// Evaluate classifies in under opts.
func Evaluate(in Input, opts options.Options) Evaluation {
	e := Evaluation{Input: in}
	switch in.kind {
	case textInput, bytesInput:
		res, ok := scan.Scan(in.text, opts)
		if ok {
			e.Scan = res
			e.Flags = fromScan(res)
		}

	case runeInput:
		res, ok := scan.ScanRune(rune(in.bits), opts)
		if ok {
			e.Scan = res
			e.Flags = fromScan(res)
		}

	case intInput:
		e.Flags = Integer | FromNumeric

	case uintInput:
		e.Flags = Integer | FromNumeric
		if in.bits > math.MaxInt64 {
			e.Flags |= Overflow
		}

	case floatInput:
		e.Flags = Float | FromNumeric
		switch v := in.float; {
		case math.IsInf(v, 0):
			e.Flags |= Infinity
		case math.IsNaN(v):
			e.Flags |= NaN
		case math.Trunc(v) == v:
			e.Flags |= IntLike
		}
	}
	return e
}

// fromScan computes the descriptor of a scanned literal.
func fromScan(res scan.Result) Flags {
	f := FromText
	switch {
	case res.IsInteger():
		f |= Integer
		if _, ok := extract.IntValue[int64](res); !ok {
			f |= Overflow
		}
		return f

	case res.Special == scan.Infinity:
		return f | Float | Infinity
	case res.Special == scan.NaN:
		return f | Float | NaN
	}

	f |= Float
	if res.DecimalExponent() >= maxDecimalExp {
		if v, _ := extract.FloatValue[float64](res); math.IsInf(v, 0) {
			return f | Overflow
		}
	}
	if res.IntLike() {
		f |= IntLike
	}
	return f
}

// Classify returns the descriptor of in under opts.
func Classify(in Input, opts options.Options) Flags {
	return Evaluate(in, opts).Flags
}

// Value converts the classified input to w. Integer widths truncate
// fractional values toward zero.
//
// Returns false if the input is not a number or is out of range for w.
func (e Evaluation) Value(w extract.Width) (any, bool) {
	in := e.Input
	switch {
	case !e.Flags.IsNumber():
		return nil, false
	case in.IsText():
		return w.FromText(e.Scan)
	case in.kind == intInput:
		return w.FromInt(int64(in.bits))
	case in.kind == uintInput:
		return w.FromUint(in.bits)
	default:
		return w.FromFloat(in.float)
	}
}

// Kind is the numeric type an input would convert to.
type Kind byte

const (
	Neither Kind = iota
	IntegerKind
	FloatKind
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Neither:
		return "neither"
	case IntegerKind:
		return "int"
	case FloatKind:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// TypeOf returns the kind of number in would convert to under opts.
//
// Integers, and int-like floats when [options.Options.CoerceIntLike] is set,
// are [IntegerKind]. Other floats are [FloatKind], unless they are an
// infinity or NaN that opts does not permit.
func TypeOf(in Input, opts options.Options) Kind {
	return Evaluate(in, opts).Kind(opts)
}

// Kind is like [TypeOf], for an input that has already been classified
// under opts.
func (e Evaluation) Kind(opts options.Options) Kind {
	f := e.Flags
	switch {
	case f.Has(Integer), opts.CoerceIntLike && f.Has(IntLike):
		return IntegerKind
	case f.Has(Float) && f.Permitted(opts):
		return FloatKind
	default:
		return Neither
	}
}
