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

package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by [Handler.Error] when errors were reported
// but the reporter swallowed all of them.
var ErrInvalidInput = errors.New("batch contained invalid values")

// ErrorWithIndex is an error about one element of a batch, which records the
// position of the element that caused it.
//
// The value of Error() contains both the index and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithIndex interface {
	error
	Index() int
	Unwrap() error
}

// Error returns an [ErrorWithIndex] for the element at index i.
func Error(i int, err error) ErrorWithIndex {
	return errorWithIndex{index: i, underlying: err}
}

// Errorf is like [Error], but formats the underlying error.
func Errorf(i int, format string, args ...any) ErrorWithIndex {
	return errorWithIndex{index: i, underlying: fmt.Errorf(format, args...)}
}

type errorWithIndex struct {
	underlying error
	index      int
}

func (e errorWithIndex) Error() string {
	return fmt.Sprintf("element %d: %v", e.index, e.underlying)
}

// Index implements [ErrorWithIndex].
func (e errorWithIndex) Index() int {
	return e.index
}

// Unwrap implements [ErrorWithIndex].
func (e errorWithIndex) Unwrap() error {
	return e.underlying
}

var _ ErrorWithIndex = errorWithIndex{}
