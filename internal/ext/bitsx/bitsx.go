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

// Package bitsx contains extensions to Go's package math/bits.
package bitsx

import "math/bits"

// MulAdd computes acc*base + digit, reporting whether the result fits in a
// uint64.
func MulAdd(acc, base, digit uint64) (uint64, bool) {
	extra, shift := bits.Mul64(acc, base)
	sum, carry := bits.Add64(shift, digit, 0)
	if extra != 0 || carry != 0 {
		return 0, false
	}
	return sum, true
}
