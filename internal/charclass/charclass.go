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

// Package charclass contains the ASCII character predicates used by the
// numeric literal scanner.
//
// Everything here operates on single bytes; non-ASCII input is never a
// member of any class.
package charclass

// IsSpace reports whether c is a space or in the ASCII control range from
// tab to carriage return.
func IsSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSign reports whether c is '+' or '-'.
func IsSign(c byte) bool {
	return c == '+' || c == '-'
}

// IsPoint reports whether c is the decimal point.
func IsPoint(c byte) bool {
	return c == '.'
}

// IsExponent reports whether c is an exponent marker.
func IsExponent(c byte) bool {
	return c == 'e' || c == 'E'
}

// IsSeparator reports whether c is the digit grouping separator.
func IsSeparator(c byte) bool {
	return c == '_'
}

// Lower folds an ASCII letter to lower case. Other bytes are returned
// unchanged.
func Lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFold reports whether s equals lower, ignoring ASCII case. lower must
// already be lower case.
func EqualFold(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := range len(s) {
		if Lower(s[i]) != lower[i] {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether s begins with lower, ignoring ASCII case.
func HasPrefixFold(s, lower string) bool {
	return len(s) >= len(lower) && EqualFold(s[:len(lower)], lower)
}

// Trim returns the bounds of s with leading and trailing whitespace removed.
// If s is entirely whitespace, start == end.
func Trim(s string) (start, end int) {
	end = len(s)
	for start < end && IsSpace(s[start]) {
		start++
	}
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return start, end
}
