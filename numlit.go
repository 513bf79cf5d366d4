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

package numlit

import (
	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/resolve"
)

// Int converts v to an integer of type T.
//
// v may be a string, a byte slice, a [classify.Input], or any built-in
// numeric type. Text must be an integer literal, or an int-like float if
// opts.CoerceIntLike is set; native floats are truncated.
func Int[T extract.Integer](v any, opts options.Options) (T, error) {
	return resolve.To[T](resolve.Resolver{Options: opts, Target: resolve.Int}, classify.Value(v))
}

// ForceInt converts any finite number in v to T, truncating toward zero.
func ForceInt[T extract.Integer](v any, opts options.Options) (T, error) {
	return resolve.To[T](resolve.Resolver{Options: opts, Target: resolve.ForceInt}, classify.Value(v))
}

// Float converts v to a float of type T. Text is always read in base 10.
func Float[T extract.Floating](v any, opts options.Options) (T, error) {
	return resolve.To[T](resolve.Resolver{Options: opts, Target: resolve.Float}, classify.Value(v))
}

// Real converts v to an int64 if it is an integer, or a float64 otherwise.
// With opts.CoerceIntLike, int-like floats that fit become int64 too.
func Real(v any, opts options.Options) (any, error) {
	return resolve.Resolver{Options: opts, Target: resolve.Real}.Resolve(classify.Value(v))
}

// IsInt reports whether v is an integer: integer text in opts' base, or a
// native integer.
func IsInt(v any, opts options.Options) bool {
	return resolve.Check{Options: opts, Query: resolve.QueryInt}.Test(classify.Value(v))
}

// IsIntLike reports whether v is an integer or a float with no fractional
// part.
func IsIntLike(v any, opts options.Options) bool {
	return resolve.Check{Options: opts, Query: resolve.QueryIntLike}.Test(classify.Value(v))
}

// IsFloat reports whether v is a float that opts permits. Integer text
// counts as a float; native integers do not.
func IsFloat(v any, opts options.Options) bool {
	return resolve.Check{Options: opts, Query: resolve.QueryFloat}.Test(classify.Value(v))
}

// IsReal reports whether v is any number that opts permits.
func IsReal(v any, opts options.Options) bool {
	return resolve.Check{Options: opts, Query: resolve.QueryReal}.Test(classify.Value(v))
}

// TypeOf reports the kind of number v would convert to.
func TypeOf(v any, opts options.Options) classify.Kind {
	return classify.TypeOf(classify.Value(v), opts)
}
