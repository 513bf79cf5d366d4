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

// Package options defines the configuration record that controls how
// permissive the numeric literal grammar is.
//
// An [Options] is a plain value. The zero value selects base 10 with the
// full float grammar, rejects underscores and non-ASCII digits, and allows
// infinity and NaN from any origin. Options are read-only once handed to the
// engine and may be shared across goroutines.
package options

import (
	"errors"
	"fmt"
	"strconv"
)

// Base selects the numeric base of integer literals.
type Base int

const (
	// DefaultBase selects base 10 with the full float grammar, including
	// infinity and NaN tokens.
	DefaultBase Base = 0

	// PrefixBase selects an integer base from a 0x, 0o or 0b prefix,
	// falling back to base 10.
	PrefixBase Base = -1

	// MinBase and MaxBase bound explicit integer bases.
	MinBase = 2
	MaxBase = 36
)

// String implements [fmt.Stringer].
func (b Base) String() string {
	switch b {
	case DefaultBase:
		return "default"
	case PrefixBase:
		return "prefix"
	default:
		return strconv.Itoa(int(b))
	}
}

func (b Base) valid() bool {
	return b == DefaultBase || b == PrefixBase || (b >= MinBase && b <= MaxBase)
}

// Options controls grammar permissiveness and numeric base selection.
type Options struct {
	// Base is [DefaultBase], [PrefixBase], or an explicit integer base
	// between [MinBase] and [MaxBase]. Only the default base recognizes
	// floats.
	Base Base `yaml:"base"`

	// AllowUnderscores permits single underscores between digits.
	AllowUnderscores bool `yaml:"allow_underscores"`

	// AllowUnicodeDigits permits any Unicode decimal digit wherever an ASCII
	// digit is allowed.
	AllowUnicodeDigits bool `yaml:"allow_unicode_digits"`

	// Inf and NaN select, per input origin, whether infinity and NaN are
	// acceptable results.
	Inf Allowance `yaml:"inf"`
	NaN Allowance `yaml:"nan"`

	// CoerceIntLike treats floats with no fractional part as integers.
	CoerceIntLike bool `yaml:"coerce_intlike"`
}

// IsDefaultBase returns whether the full float grammar applies.
func (o Options) IsDefaultBase() bool {
	return o.Base == DefaultBase
}

// EffectiveBase returns the base digits are read in, before any prefix
// detection. This is 10 for [DefaultBase] and [PrefixBase].
func (o Options) EffectiveBase() int {
	if o.Base == DefaultBase || o.Base == PrefixBase {
		return 10
	}
	return int(o.Base)
}

// WithDefaultBase returns a copy of o that uses the default base.
func (o Options) WithDefaultBase() Options {
	o.Base = DefaultBase
	return o
}

// Validate checks that o describes a configuration the engine understands.
func (o Options) Validate() error {
	var errs []error
	if !o.Base.valid() {
		errs = append(errs, fmt.Errorf("options: base must be between %d and %d, got %d", MinBase, MaxBase, int(o.Base)))
	}
	if !o.Inf.valid() {
		errs = append(errs, fmt.Errorf("options: invalid inf allowance %d", o.Inf))
	}
	if !o.NaN.valid() {
		errs = append(errs, fmt.Errorf("options: invalid nan allowance %d", o.NaN))
	}
	return errors.Join(errs...)
}

// String implements [fmt.Stringer].
func (o Options) String() string {
	return fmt.Sprintf(
		"base=%v underscores=%v unicode=%v inf=%v nan=%v coerce=%v",
		o.Base, o.AllowUnderscores, o.AllowUnicodeDigits, o.Inf, o.NaN, o.CoerceIntLike,
	)
}
