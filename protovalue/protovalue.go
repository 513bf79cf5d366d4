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

// Package protovalue adapts protobuf well-known value types to the engine.
//
// Scalar wrappers and [structpb.Value] are unpacked into a
// [classify.Input]; results are packed back into wrappers.
package protovalue

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/resolve"
)

// Input unpacks a message. String and bytes wrappers become text; numeric
// wrappers become native numbers. A [structpb.Value] is text or a float64
// depending on its kind. Anything else, including a nil message, is an
// unsupported input that carries the message itself.
func Input(msg proto.Message) classify.Input {
	switch m := msg.(type) {
	case *structpb.Value:
		switch k := m.GetKind().(type) {
		case *structpb.Value_StringValue:
			return classify.Text(k.StringValue)
		case *structpb.Value_NumberValue:
			return classify.Float64(k.NumberValue)
		}
	case *wrapperspb.StringValue:
		return classify.Text(m.GetValue())
	case *wrapperspb.BytesValue:
		return classify.Bytes(m.GetValue())
	case *wrapperspb.Int32Value:
		return classify.Int(int64(m.GetValue()))
	case *wrapperspb.Int64Value:
		return classify.Int(m.GetValue())
	case *wrapperspb.UInt32Value:
		return classify.Uint(uint64(m.GetValue()))
	case *wrapperspb.UInt64Value:
		return classify.Uint(m.GetValue())
	case *wrapperspb.FloatValue:
		return classify.Float64(float64(m.GetValue()))
	case *wrapperspb.DoubleValue:
		return classify.Float64(m.GetValue())
	}
	return classify.Unsupported(msg)
}

// Pack wraps a value produced by the engine in the narrowest matching
// wrapper type. Messages, which a passthrough action may return, are
// returned as-is.
func Pack(v any) (proto.Message, error) {
	switch v := v.(type) {
	case proto.Message:
		return v, nil
	case int8:
		return wrapperspb.Int32(int32(v)), nil
	case int16:
		return wrapperspb.Int32(int32(v)), nil
	case int32:
		return wrapperspb.Int32(v), nil
	case int:
		return wrapperspb.Int64(int64(v)), nil
	case int64:
		return wrapperspb.Int64(v), nil
	case uint8:
		return wrapperspb.UInt32(uint32(v)), nil
	case uint16:
		return wrapperspb.UInt32(uint32(v)), nil
	case uint32:
		return wrapperspb.UInt32(v), nil
	case uint:
		return wrapperspb.UInt64(uint64(v)), nil
	case uint64:
		return wrapperspb.UInt64(v), nil
	case float32:
		return wrapperspb.Float(v), nil
	case float64:
		return wrapperspb.Double(v), nil
	case string:
		return wrapperspb.String(v), nil
	case []byte:
		return wrapperspb.Bytes(v), nil
	default:
		return nil, fmt.Errorf("protovalue: cannot pack %T", v)
	}
}

// Resolve unpacks msg, resolves it with r, and packs the result.
func Resolve(r resolve.Resolver, msg proto.Message) (proto.Message, error) {
	v, err := r.Resolve(Input(msg))
	if err != nil {
		return nil, err
	}
	return Pack(v)
}

// Struct converts a value produced by the engine to a [structpb.Value], for
// JSON-shaped output.
func Struct(v any) (*structpb.Value, error) {
	if msg, ok := v.(proto.Message); ok {
		v = Input(msg).Interface()
	}
	return structpb.NewValue(v)
}
