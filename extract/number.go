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

// Integer is the set of built-in integer types a [Width] can name.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Floating is the set of built-in float types a [Width] can name.
type Floating interface {
	float32 | float64
}

// Number is any type a [Width] can name. Named types are excluded so that
// a boxed value can always be asserted back to T.
type Number interface {
	Integer | Floating
}

// WidthOf returns the [Width] that names T.
func WidthOf[T Number]() Width {
	var zero T
	switch any(zero).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	default:
		return Float64
	}
}

// As converts a native Go number of any built-in numeric type to T, with
// the same range checks as the rest of this package.
//
// Returns false if v is not a number or is out of range for T.
func As[T Number](v any) (T, bool) {
	var zero T
	if v, ok := v.(T); ok {
		return v, true
	}

	var (
		w   = WidthOf[T]()
		out any
		ok  bool
	)
	switch v := v.(type) {
	case int:
		out, ok = w.FromInt(int64(v))
	case int8:
		out, ok = w.FromInt(int64(v))
	case int16:
		out, ok = w.FromInt(int64(v))
	case int32:
		out, ok = w.FromInt(int64(v))
	case int64:
		out, ok = w.FromInt(v)
	case uint:
		out, ok = w.FromUint(uint64(v))
	case uint8:
		out, ok = w.FromUint(uint64(v))
	case uint16:
		out, ok = w.FromUint(uint64(v))
	case uint32:
		out, ok = w.FromUint(uint64(v))
	case uint64:
		out, ok = w.FromUint(v)
	case float32:
		out, ok = w.FromFloat(float64(v))
	case float64:
		out, ok = w.FromFloat(v)
	}
	if !ok {
		return zero, false
	}
	return out.(T), true
}
