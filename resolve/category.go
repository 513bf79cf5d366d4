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

package resolve

import (
	"errors"
	"fmt"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
)

// Category is the reason a conversion did not produce a value.
type Category byte

const (
	// None means the conversion succeeded.
	None Category = iota
	TypeMismatch
	ParseFailure
	InfinityEncountered
	NaNEncountered
	Overflow

	categoryCount
)

// Sentinel errors for each failure category, so that callers can test a
// [*Failure] with [errors.Is].
var (
	ErrType     = errors.New("unsupported input type")
	ErrSyntax   = errors.New("invalid numeric literal")
	ErrInfinity = errors.New("infinity not allowed")
	ErrNaN      = errors.New("NaN not allowed")
	ErrRange    = errors.New("value out of range")
)

var categoryInfo = [...]struct {
	name string
	err  error
}{
	None:                {"none", nil},
	TypeMismatch:        {"type_mismatch", ErrType},
	ParseFailure:        {"parse_failure", ErrSyntax},
	InfinityEncountered: {"infinity", ErrInfinity},
	NaNEncountered:      {"nan", ErrNaN},
	Overflow:            {"overflow", ErrRange},
}

// Categories returns the failure categories, in decision order.
func Categories() []Category {
	return []Category{TypeMismatch, ParseFailure, InfinityEncountered, NaNEncountered, Overflow}
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	if c >= categoryCount {
		return fmt.Sprintf("Category(%d)", byte(c))
	}
	return categoryInfo[c].name
}

// Err returns the sentinel error for c, or nil for [None].
func (c Category) Err() error {
	if c >= categoryCount {
		return nil
	}
	return categoryInfo[c].err
}

// Failure is the error produced when a [Raise] action fires.
type Failure struct {
	Category Category
	Target   Target
	Width    extract.Width
	Input    classify.Input
}

// Error implements [error].
func (f *Failure) Error() string {
	to := f.Target.String()
	if f.Width != extract.Default {
		to = f.Width.String()
	}
	return fmt.Sprintf("cannot convert %v to %s: %v", f.Input, to, f.Category.Err())
}

// Unwrap returns the sentinel error for the failure's category.
func (f *Failure) Unwrap() error {
	return f.Category.Err()
}
