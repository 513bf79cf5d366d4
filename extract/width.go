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
	"fmt"

	"github.com/bufbuild/numlit/scan"
)

// Width is a target numeric type for conversions that are not
// parameterized by a Go type, such as those driven by configuration.
type Width int8

const (
	// Default selects int64 for integer targets and float64 for float
	// targets.
	Default Width = iota

	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64

	widthCount
)

var widthNames = [...]string{
	Default: "default",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// ParseWidth parses the name of a Width, as returned by [Width.String].
func ParseWidth(name string) (Width, error) {
	for w, n := range widthNames {
		if n == name {
			return Width(w), nil
		}
	}
	return Default, fmt.Errorf("extract: unknown width %q", name)
}

// String implements [fmt.Stringer].
func (w Width) String() string {
	if w < 0 || w >= widthCount {
		return fmt.Sprintf("Width(%d)", int8(w))
	}
	return widthNames[w]
}

// Valid returns whether w is one of the declared widths.
func (w Width) Valid() bool {
	return w >= 0 && w < widthCount
}

// IsFloat returns whether w is a floating-point width.
func (w Width) IsFloat() bool {
	return w == Float32 || w == Float64
}

// Resolve replaces [Default] with int64 or float64, depending on whether a
// float is wanted.
func (w Width) Resolve(float bool) Width {
	switch {
	case w != Default:
		return w
	case float:
		return Float64
	default:
		return Int64
	}
}

// FromText extracts the value of a scanned literal as w. Integer widths
// truncate fractional literals.
//
// Panics if w is not valid.
func (w Width) FromText(res scan.Result) (any, bool) {
	return w.converter().text(res)
}

// FromInt converts a native signed integer to w.
func (w Width) FromInt(v int64) (any, bool) {
	return w.converter().int(v)
}

// FromUint converts a native unsigned integer to w.
func (w Width) FromUint(v uint64) (any, bool) {
	return w.converter().uint(v)
}

// FromFloat converts a native float to w. Integer widths truncate toward
// zero.
func (w Width) FromFloat(v float64) (any, bool) {
	return w.converter().float(v)
}

func (w Width) converter() *converter {
	if !w.Valid() {
		panic(fmt.Sprintf("extract: invalid width %v", w))
	}
	return &converters[w.Resolve(false)]
}

// converter is the set of conversions into one width, with the result
// boxed.
type converter struct {
	text  func(scan.Result) (any, bool)
	int   func(int64) (any, bool)
	uint  func(uint64) (any, bool)
	float func(float64) (any, bool)
}

var converters = [...]converter{
	Int:     intConverter[int](),
	Int8:    intConverter[int8](),
	Int16:   intConverter[int16](),
	Int32:   intConverter[int32](),
	Int64:   intConverter[int64](),
	Uint:    intConverter[uint](),
	Uint8:   intConverter[uint8](),
	Uint16:  intConverter[uint16](),
	Uint32:  intConverter[uint32](),
	Uint64:  intConverter[uint64](),
	Float32: floatConverter[float32](),
	Float64: floatConverter[float64](),
}

func box[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

func intConverter[T Integer]() converter {
	return converter{
		text: func(res scan.Result) (any, bool) {
			v, ok := IntValue[T](res)
			return box(v, ok)
		},
		int: func(v int64) (any, bool) {
			out, ok := FromInt64[T](v)
			return box(out, ok)
		},
		uint: func(v uint64) (any, bool) {
			out, ok := FromUint64[T](v)
			return box(out, ok)
		},
		float: func(v float64) (any, bool) {
			out, ok := Truncate[T](v)
			return box(out, ok)
		},
	}
}

func floatConverter[T Floating]() converter {
	return converter{
		text: func(res scan.Result) (any, bool) {
			v, ok := FloatValue[T](res)
			return box(v, ok)
		},
		int: func(v int64) (any, bool) {
			return T(v), true
		},
		uint: func(v uint64) (any, bool) {
			return T(v), true
		},
		float: func(v float64) (any, bool) {
			out, ok := FromFloat64[T](v)
			return box(out, ok)
		},
	}
}
