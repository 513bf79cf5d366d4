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
	"strconv"

	"github.com/bufbuild/numlit/internal/ext/unsafex"
	"github.com/bufbuild/numlit/options"
)

// inputKind is the variant held by an [Input].
type inputKind byte

const (
	unsupported inputKind = iota
	textInput
	bytesInput
	runeInput
	intInput
	uintInput
	floatInput
)

// Input is a value to classify: text, a single character, or a native
// number.
//
// The zero Input is an unsupported value.
type Input struct {
	kind  inputKind
	text  string
	bytes []byte
	bits  uint64 // Rune, int64, uint64 or float64 payload.
	float float64
	value any // The caller's value, if it was not one of the above.
}

// Text returns an Input for a string.
func Text(s string) Input {
	return Input{kind: textInput, text: s}
}

// Bytes returns an Input for UTF-8 text in a byte slice. The slice must not
// be modified while the Input is in use.
func Bytes(b []byte) Input {
	return Input{kind: bytesInput, text: unsafex.StringAlias(b), bytes: b}
}

// Rune returns an Input for a single character.
func Rune(r rune) Input {
	return Input{kind: runeInput, bits: uint64(r)}
}

// Int returns an Input for a native signed integer.
func Int(v int64) Input {
	return Input{kind: intInput, bits: uint64(v)}
}

// Uint returns an Input for a native unsigned integer.
func Uint(v uint64) Input {
	return Input{kind: uintInput, bits: v}
}

// Float64 returns an Input for a native float.
func Float64(v float64) Input {
	return Input{kind: floatInput, float: v}
}

// Unsupported returns an Input for a value of a type the engine does not
// understand. It classifies as nothing, but can still be passed through to
// a fallback action.
func Unsupported(v any) Input {
	return Input{value: v}
}

// Value returns an Input for an arbitrary Go value, choosing the variant by
// type. Strings and byte slices are text; built-in integer and float types
// are numeric; an Input is returned as-is. Anything else is unsupported.
//
// A rune is an int32 to Go; use [Rune] for a character.
func Value(v any) Input {
	var in Input
	switch v := v.(type) {
	case Input:
		return v
	case string:
		in = Text(v)
	case []byte:
		in = Bytes(v)
	case int:
		in = Int(int64(v))
	case int8:
		in = Int(int64(v))
	case int16:
		in = Int(int64(v))
	case int32:
		in = Int(int64(v))
	case int64:
		in = Int(v)
	case uint:
		in = Uint(uint64(v))
	case uint8:
		in = Uint(uint64(v))
	case uint16:
		in = Uint(uint64(v))
	case uint32:
		in = Uint(uint64(v))
	case uint64:
		in = Uint(v)
	case float32:
		in = Float64(float64(v))
	case float64:
		in = Float64(v)
	}
	in.value = v
	return in
}

// Supported returns whether the engine understands this input's type.
func (in Input) Supported() bool {
	return in.kind != unsupported
}

// IsText returns whether this input is text or a character.
func (in Input) IsText() bool {
	return in.kind == textInput || in.kind == bytesInput || in.kind == runeInput
}

// IsNumeric returns whether this input is a native number.
func (in Input) IsNumeric() bool {
	return in.kind == intInput || in.kind == uintInput || in.kind == floatInput
}

// Origin returns the origin of this input, or zero if it is unsupported.
func (in Input) Origin() options.Origin {
	switch {
	case in.IsText():
		return options.FromText
	case in.IsNumeric():
		return options.FromNumeric
	default:
		return 0
	}
}

// Interface returns the value this input was constructed from.
func (in Input) Interface() any {
	if in.value != nil {
		return in.value
	}

	switch in.kind {
	case textInput:
		return in.text
	case bytesInput:
		return in.bytes
	case runeInput:
		return rune(in.bits)
	case intInput:
		return int64(in.bits)
	case uintInput:
		return in.bits
	case floatInput:
		return in.float
	default:
		return nil
	}
}

// String implements [fmt.Stringer].
func (in Input) String() string {
	switch in.kind {
	case textInput, bytesInput:
		return strconv.Quote(in.text)
	case runeInput:
		return strconv.QuoteRune(rune(in.bits))
	case intInput:
		return strconv.FormatInt(int64(in.bits), 10)
	case uintInput:
		return strconv.FormatUint(in.bits, 10)
	case floatInput:
		return strconv.FormatFloat(in.float, 'g', -1, 64)
	default:
		return fmt.Sprintf("%T(%v)", in.value, in.value)
	}
}
