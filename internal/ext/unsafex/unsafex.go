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

// Package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import "unsafe"

// StringAlias returns a string that aliases a slice. This is useful for
// situations where we're allocating a string on the stack, or where we have
// a scratch buffer that is handed to a function that only reads a string.
//
// The slice must not be mutated for as long as the string is live.
//
//go:nosplit
func StringAlias[S ~[]E, E any](data S) string {
	var zero E
	return unsafe.String(
		(*byte)(unsafe.Pointer(unsafe.SliceData([]E(data)))),
		len(data)*int(unsafe.Sizeof(zero)),
	)
}
