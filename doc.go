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

// Package numlit classifies and converts numeric literals.
//
// Given text, a single character, or a native Go number, numlit decides
// whether it is a valid integer or float, classifies special forms such as
// NaN, infinity and int-like floats like "3.0", and either converts it or
// applies a fallback chosen by the caller.
//
// # Pipeline
//
// Conversion happens in stages, each in its own package:
//
//  1. Scan. The text is trimmed of whitespace and matched against the
//     literal grammar, without allocating.
//     Also see: scan.Scan
//  2. Classify. The scan result, or a native number, becomes a descriptor:
//     a set of flags saying which interpretations are valid.
//     Also see: classify.Evaluate
//  3. Extract. The literal is converted to a value of a specific width,
//     detecting overflow instead of wrapping.
//     Also see: extract.IntValue, extract.FloatValue
//  4. Resolve. A fixed decision table combines the descriptor, the value and
//     the caller's action table into a value, a replacement or an error.
//     Also see: resolve.Resolver
//
// The functions in this package run the whole pipeline with default
// actions, which raise on any failure. Use a [resolve.Resolver] directly to
// substitute defaults, call back into your code, or pass the input through.
//
// # Configuration
//
// An [options.Options] controls how permissive the grammar is: the numeric
// base, digit-grouping underscores, non-ASCII digits, whether infinity and
// NaN are acceptable from text or native numbers, and whether int-like
// floats count as integers. The zero value is base 10, strict ASCII, and
// allows infinity and NaN:
//
//	v, err := numlit.Int[int32]("0x_7f", options.Options{
//	    Base:             options.PrefixBase,
//	    AllowUnderscores: true,
//	})
//
// Every function is safe for concurrent use. For large slices, package batch
// spreads the work across goroutines.
package numlit
