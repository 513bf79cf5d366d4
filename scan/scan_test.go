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

package scan_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/scan"
)

var underscores = options.Options{AllowUnderscores: true}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		opts options.Options
		want scan.Result
	}{
		{
			name: "integer",
			text: "123",
			want: scan.Result{End: 3, Base: 10, IntDigits: 3},
		},
		{
			name: "padded-float",
			text: "  -3.50  ",
			want: scan.Result{
				Start: 2, End: 7, Sign: '-', Base: 10,
				Point: true, IntDigits: 1, FracDigits: 2, TrailingZeros: 1,
			},
		},
		{
			name: "exponent",
			text: "3e2",
			want: scan.Result{End: 3, Base: 10, Exp: true, IntDigits: 1, Exponent: 2},
		},
		{
			name: "negative-exponent",
			text: "0.001e-3",
			want: scan.Result{
				End: 8, Base: 10, Point: true, Exp: true,
				IntDigits: 1, FracDigits: 3, Exponent: -3, LeadingZeros: 3,
			},
		},
		{
			name: "infinity",
			text: "Infinity",
			want: scan.Result{End: 8, Base: 10, Special: scan.Infinity},
		},
		{
			name: "signed-nan",
			text: "-nAn\n",
			want: scan.Result{End: 4, Sign: '-', Base: 10, Special: scan.NaN},
		},
		{
			name: "underscores",
			text: "1_000",
			opts: underscores,
			want: scan.Result{End: 5, Base: 10, IntDigits: 4, TrailingZeros: 3, Underscores: true},
		},
		{
			name: "prefix",
			text: "0x1F",
			opts: options.Options{Base: options.PrefixBase},
			want: scan.Result{End: 4, Base: 16, Prefix: 2, IntDigits: 2},
		},
		{
			name: "prefix-separator",
			text: "-0b_1_0",
			opts: options.Options{Base: 2, AllowUnderscores: true},
			want: scan.Result{
				End: 7, Sign: '-', Base: 2, Prefix: 3, IntDigits: 2,
				TrailingZeros: 1, Underscores: true,
			},
		},
		{
			name: "hex-without-prefix",
			text: "0b1",
			opts: options.Options{Base: 16},
			want: scan.Result{End: 3, Base: 16, IntDigits: 3, LeadingZeros: 1},
		},
		{
			name: "unicode",
			text: "١٢٣",
			opts: options.Options{AllowUnicodeDigits: true},
			want: scan.Result{End: 6, Base: 10, IntDigits: 3, Unicode: true},
		},
		{
			name: "numeral",
			text: "٣",
			opts: options.Options{AllowUnicodeDigits: true},
			want: scan.Result{End: 2, Base: 10, IntDigits: 1, Numeral: true, Unicode: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := scan.Scan(tt.text, tt.opts)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreUnexported(scan.Result{})); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestReject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts  options.Options
		texts []string
	}{
		{
			opts: options.Options{},
			texts: []string{
				"", "   ", ".", "-", "+", "e5", ".e5", "1e", "1e+", "1 2", "--1", "+-1",
				"1.2.3", "0x1F", "infinit", "infinityy", "nan1", "in f", "1_000",
				"١٢", "٣", "1e5.0", "0b1",
			},
		},
		{
			opts: underscores,
			texts: []string{
				"_1", "1_", "1__0", "1_.5", "1._5", "1_e5", "1e_5", "1e5_", "-_1", "_", "._1",
			},
		},
		{
			opts: options.Options{Base: options.PrefixBase, AllowUnderscores: true},
			texts: []string{"010", "0_7", "0x", "0b", "0x__1", "0x_", "1.5", "inf", "0b2", "0o8"},
		},
		{
			opts:  options.Options{Base: 10},
			texts: []string{"0x1F", "1.0", "1e3", "nan", "١"},
		},
		{
			opts:  options.Options{Base: 8},
			texts: []string{"8", "0x7", "0o"},
		},
		{
			opts:  options.Options{Base: 16},
			texts: []string{"0x_ff", "g", "0x"},
		},
	}

	for _, tt := range tests {
		for _, text := range tt.texts {
			_, ok := scan.Scan(text, tt.opts)
			assert.False(t, ok, "Scan(%q) with %v", text, tt.opts)
		}
	}
}

func TestAccept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts  options.Options
		texts []string
	}{
		{
			opts: options.Options{},
			texts: []string{
				"0", "-0", "+.5", "1.", "1.e5", "007", "1E+09", "INF", "+infinity", "NaN",
				"\t42\r\n", "123456789012345678901234567890",
			},
		},
		{
			opts:  underscores,
			texts: []string{"1_2_3", "1_000.000_1", "1e1_0", ".5_5"},
		},
		{
			opts:  options.Options{Base: options.PrefixBase, AllowUnderscores: true},
			texts: []string{"0", "00", "0_0", "12", "0o17", "0B101", "-0X_fF"},
		},
		{
			opts:  options.Options{Base: 36},
			texts: []string{"zZ", "-10"},
		},
	}

	for _, tt := range tests {
		for _, text := range tt.texts {
			_, ok := scan.Scan(text, tt.opts)
			assert.True(t, ok, "Scan(%q) with %v", text, tt.opts)
		}
	}
}

// Underscores next to a boundary are rejected whether or not separators are
// allowed; interior separators depend on the option.
func TestUnderscoreRule(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"_1", "1_", "1__0", "1_.0", "1._0", "1_e1", "1e_1", "1.0_"} {
		for _, allow := range []bool{false, true} {
			_, ok := scan.Scan(text, options.Options{AllowUnderscores: allow})
			assert.False(t, ok, "Scan(%q) allow=%v", text, allow)
		}
	}

	for _, text := range []string{"1_0", "1.0_1", "1e1_0"} {
		_, ok := scan.Scan(text, options.Options{AllowUnderscores: false})
		assert.False(t, ok, "%q", text)
		_, ok = scan.Scan(text, options.Options{AllowUnderscores: true})
		assert.True(t, ok, "%q", text)
	}
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"12.5", " 12.5", "12.5 ", "\v\f12.5\t\n"} {
		res, ok := scan.Scan(text, options.Options{})
		require.True(t, ok, "%q", text)
		assert.Equal(t, "12.5", res.Literal())
	}

	for _, text := range []string{"12 .5", "1\t2", "- 1", "1e 5"} {
		_, ok := scan.Scan(text, options.Options{})
		assert.False(t, ok, "%q", text)
	}
}

func TestIntLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"3.0", true},
		{"3e2", true},
		{"3.5", false},
		{"3.01", false},
		{"300e-2", true},
		{"301e-2", false},
		{"1.", true},
		{".0", true},
		{"-0.000", true},
		{"1.5e1", true},
		{"1.25e1", false},
		{"1e-400", false},
		{"0e99", true},
		{"inf", false},
		{"nan", false},
	}
	for _, tt := range tests {
		res, ok := scan.Scan(tt.text, options.Options{})
		require.True(t, ok, "%q", tt.text)
		assert.Equal(t, tt.want, res.IntLike(), "%q", tt.text)
	}
}

func TestDecimalExponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want int
	}{
		{"123.45", 2},
		{"0.00123", -3},
		{"1e308", 308},
		{"17.5e307", 308},
		{"0", 0},
		{"9", 0},
	}
	for _, tt := range tests {
		res, ok := scan.Scan(tt.text, options.Options{})
		require.True(t, ok, "%q", tt.text)
		assert.Equal(t, tt.want, res.DecimalExponent(), "%q", tt.text)
	}
}

func TestMantissa(t *testing.T) {
	t.Parallel()

	res, ok := scan.Scan("-0X_1f", options.Options{Base: options.PrefixBase, AllowUnderscores: true})
	require.True(t, ok)
	assert.Equal(t, []byte{1, 15}, slices.Collect(res.Mantissa()))

	res, ok = scan.Scan("1_2.٣4e5", options.Options{AllowUnderscores: true, AllowUnicodeDigits: true})
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, slices.Collect(res.Mantissa()))

	res, ok = scan.ScanRune('७', options.Options{AllowUnicodeDigits: true})
	require.True(t, ok)
	assert.Equal(t, []byte{7}, slices.Collect(res.Mantissa()))
}

func TestAppendASCII(t *testing.T) {
	t.Parallel()

	opts := options.Options{AllowUnderscores: true, AllowUnicodeDigits: true}
	tests := []struct {
		text, want string
	}{
		{"-1_000.5e1_0", "-1000.5e10"},
		{"+.5", ".5"},
		{"1.E-07", "1.e-7"},
		{"١٢.٥", "12.5"},
		{"-Infinity", "-inf"},
		{"٣", "3"},
	}
	for _, tt := range tests {
		res, ok := scan.Scan(tt.text, opts)
		require.True(t, ok, "%q", tt.text)

		got := string(res.AppendASCII(nil))
		assert.Equal(t, tt.want, got, "%q", tt.text)

		if res.Special == scan.NotSpecial {
			_, err := strconv.ParseFloat(got, 64)
			assert.NoError(t, err, "%q", got)
		}
	}
}

func TestScanRune(t *testing.T) {
	t.Parallel()

	_, ok := scan.ScanRune('٣', options.Options{})
	assert.False(t, ok)

	res, ok := scan.ScanRune('8', options.Options{})
	require.True(t, ok)
	assert.True(t, res.Numeral)
	assert.True(t, res.IsInteger())

	_, ok = scan.ScanRune('8', options.Options{Base: 8})
	assert.False(t, ok)
	_, ok = scan.ScanRune('½', options.Options{AllowUnicodeDigits: true})
	assert.False(t, ok)
	_, ok = scan.ScanRune('x', options.Options{})
	assert.False(t, ok)
}

func TestZeroAlloc(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = scan.Scan("  -1_234.567_8e-1_0  ", underscores)
	})
	assert.Zero(t, allocs)
}
