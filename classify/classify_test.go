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

package classify_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/options"
)

func TestClassifyNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   classify.Input
		want classify.Flags
	}{
		{classify.Int(42), classify.Integer | classify.FromNumeric},
		{classify.Uint(math.MaxUint64), classify.Integer | classify.Overflow | classify.FromNumeric},
		{classify.Float64(3), classify.Float | classify.IntLike | classify.FromNumeric},
		{classify.Float64(3.5), classify.Float | classify.FromNumeric},
		{classify.Float64(math.Inf(-1)), classify.Float | classify.Infinity | classify.FromNumeric},
		{classify.Float64(math.NaN()), classify.Float | classify.NaN | classify.FromNumeric},
		{classify.Value(int8(-3)), classify.Integer | classify.FromNumeric},
		{classify.Value(float32(0.5)), classify.Float | classify.FromNumeric},
		{classify.Value(true), 0},
		{classify.Unsupported([]int{1}), 0},
		{classify.Input{}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify.Classify(tt.in, options.Options{}), "%v", tt.in)
	}
}

func TestClassifyText(t *testing.T) {
	t.Parallel()

	opts := options.Options{AllowUnderscores: true}
	tests := []struct {
		in   classify.Input
		want classify.Flags
	}{
		{classify.Text("123"), classify.Integer | classify.FromText},
		{classify.Bytes([]byte(" 1_000 ")), classify.Integer | classify.FromText},
		{classify.Text("3.0"), classify.Float | classify.IntLike | classify.FromText},
		{classify.Text("-inf"), classify.Float | classify.Infinity | classify.FromText},
		{classify.Rune('7'), classify.Integer | classify.FromText},
		{classify.Rune('x'), 0},
		{classify.Text("1__0"), 0},
		{classify.Value("1.8e308"), classify.Float | classify.Overflow | classify.FromText},
		{classify.Value("1.7976931348623157e308"), classify.Float | classify.IntLike | classify.FromText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify.Classify(tt.in, opts), "%v", tt.in)
	}
}

// The classifier reports what it found, whatever the policy.
func TestClassifyIgnoresPolicy(t *testing.T) {
	t.Parallel()

	opts := options.Options{Inf: options.Disallowed, NaN: options.Disallowed}
	assert.True(t, classify.Classify(classify.Text("inf"), opts).Has(classify.Infinity))
	assert.True(t, classify.Classify(classify.Float64(math.NaN()), opts).Has(classify.NaN))
}

// Whenever IntLike is set, the float value is a whole number.
func TestIntLikeIsExact(t *testing.T) {
	t.Parallel()

	texts := []string{
		"3.0", "3e2", "300e-2", "1.5e1", "0.0", "1e22", "123456789.000", "4.5e15",
		"3.5", "3.01", "1.25e1", "1e-5", "0.1", "2.5e-1", "9.99", "1e308",
	}
	for _, text := range texts {
		e := classify.Evaluate(classify.Text(text), options.Options{})
		require.True(t, e.Flags.Has(classify.Float), text)

		v, ok := e.Value(extract.Float64)
		require.True(t, ok, text)
		f := v.(float64)
		if e.Flags.Has(classify.IntLike) {
			assert.Equal(t, math.Trunc(f), f, text)
		} else {
			assert.NotEqual(t, math.Trunc(f), f, text)
		}
	}
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   classify.Input
		opts options.Options
		want classify.Kind
	}{
		{in: classify.Text("12"), want: classify.IntegerKind},
		{in: classify.Text("1.5"), want: classify.FloatKind},
		{in: classify.Text("2.0"), want: classify.FloatKind},
		{in: classify.Text("2.0"), opts: options.Options{CoerceIntLike: true}, want: classify.IntegerKind},
		{in: classify.Float64(2), opts: options.Options{CoerceIntLike: true}, want: classify.IntegerKind},
		{in: classify.Text("nan"), want: classify.FloatKind},
		{in: classify.Text("nan"), opts: options.Options{NaN: options.Disallowed}, want: classify.Neither},
		{in: classify.Text("inf"), opts: options.Options{Inf: options.NumericOnly}, want: classify.Neither},
		{in: classify.Float64(math.Inf(1)), opts: options.Options{Inf: options.NumericOnly}, want: classify.FloatKind},
		{in: classify.Float64(math.Inf(1)), opts: options.Options{Inf: options.TextOnly}, want: classify.Neither},
		{in: classify.Text("abc"), want: classify.Neither},
		{in: classify.Unsupported(struct{}{}), want: classify.Neither},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify.TypeOf(tt.in, tt.opts), "%v %v", tt.in, tt.opts)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	f := classify.Float | classify.IntLike | classify.FromText
	assert.Equal(t, "float|intlike|text", f.String())
	assert.Equal(t, "none", classify.Flags(0).String())
	assert.Equal(t,
		[]classify.Flags{classify.Float, classify.IntLike, classify.FromText},
		slices.Collect(f.All()))

	parsed, err := classify.ParseFlags(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, parsed)
	_, err = classify.ParseFlags("float|bogus")
	assert.Error(t, err)

	assert.True(t, f.Has(classify.Float|classify.IntLike))
	assert.False(t, f.Has(classify.Float|classify.NaN))
	assert.True(t, f.Any(classify.Integer|classify.Float))
	assert.Equal(t, options.FromText, f.Origin())
	assert.Equal(t, options.Origin(0), classify.Flags(0).Origin())
}

func TestInput(t *testing.T) {
	t.Parallel()

	b := []byte("12")
	assert.Equal(t, b, classify.Bytes(b).Interface())
	assert.Equal(t, "12", classify.Text("12").Interface())
	assert.Equal(t, 'x', classify.Rune('x').Interface())
	assert.Equal(t, int64(-1), classify.Int(-1).Interface())
	assert.Equal(t, uint16(7), classify.Value(uint16(7)).Interface())
	assert.Equal(t, true, classify.Value(true).Interface())

	assert.Equal(t, options.FromText, classify.Rune('1').Origin())
	assert.Equal(t, options.FromNumeric, classify.Float64(1).Origin())
	assert.False(t, classify.Value(nil).Supported())

	assert.Equal(t, `"a\n"`, classify.Text("a\n").String())
	assert.Equal(t, "2.5", classify.Float64(2.5).String())
	assert.Equal(t, "18446744073709551615", classify.Uint(math.MaxUint64).String())

	in := classify.Text("5")
	assert.Equal(t, in, classify.Value(in))
}

func TestFloatInput(t *testing.T) {
	t.Parallel()

	opts := options.Options{}
	want := classify.Classify(classify.Float64(0.5), opts)
	assert.Equal(t, classify.Float|classify.FromNumeric, want)
	assert.Equal(t, want, classify.Classify(classify.Value(0.5), opts))
	assert.Equal(t, want, classify.Classify(classify.Value(float32(0.5)), opts))

	f := classify.Classify(classify.Float64(-4), opts)
	assert.Equal(t, classify.Float|classify.IntLike|classify.FromNumeric, f)
	assert.False(t, f.Has(classify.Integer))
}

func TestValue(t *testing.T) {
	t.Parallel()

	e := classify.Evaluate(classify.Text("-2.75"), options.Options{})
	v, ok := e.Value(extract.Int32)
	require.True(t, ok)
	assert.Equal(t, int32(-2), v)

	e = classify.Evaluate(classify.Uint(300), options.Options{})
	_, ok = e.Value(extract.Uint8)
	assert.False(t, ok)
	v, ok = e.Value(extract.Float32)
	require.True(t, ok)
	assert.Equal(t, float32(300), v)

	e = classify.Evaluate(classify.Text("x"), options.Options{})
	_, ok = e.Value(extract.Int64)
	assert.False(t, ok)
}
