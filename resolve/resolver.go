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

// Package resolve turns a classification into a final outcome: a value, a
// replacement chosen by the caller's action table, or a failure.
//
// The decision is a fixed table evaluated once per input. The first
// matching row wins:
//
//  1. The input's type is not supported by the target: [TypeMismatch].
//  2. The input is not a literal the target accepts: [ParseFailure].
//  3. An infinity the configuration rejects for the input's origin:
//     [InfinityEncountered].
//  4. A NaN the configuration rejects for the input's origin:
//     [NaNEncountered].
//  5. The value does not fit the target width: [Overflow].
//  6. Otherwise, the converted value.
//
// Exactly one [Action] runs per failed input.
package resolve

import (
	"fmt"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/options"
)

// Target is the kind of number a [Resolver] converts to.
type Target byte

const (
	// Int accepts integer literals, int-like float literals when
	// [options.Options.CoerceIntLike] is set, and native numbers, which are
	// truncated.
	Int Target = iota
	// ForceInt accepts any finite number and truncates it toward zero.
	ForceInt
	// Float accepts any number, in the default base.
	Float
	// Real produces an int64 for integers and a float64 for floats, or an
	// int64 for int-like floats when [options.Options.CoerceIntLike] is set.
	Real

	targetCount
)

var targetNames = [...]string{
	Int:      "int",
	ForceInt: "forceint",
	Float:    "float",
	Real:     "real",
}

// ParseTarget parses the name of a target, as returned by [Target.String].
func ParseTarget(name string) (Target, error) {
	for t, n := range targetNames {
		if n == name {
			return Target(t), nil
		}
	}
	return 0, fmt.Errorf("resolve: unknown target %q", name)
}

// String implements [fmt.Stringer].
func (t Target) String() string {
	if t >= targetCount {
		return fmt.Sprintf("Target(%d)", byte(t))
	}
	return targetNames[t]
}

// IsFloat returns whether this target reads literals with the float
// grammar.
func (t Target) IsFloat() bool {
	return t == Float || t == Real
}

// Resolver converts inputs to one target.
//
// A Resolver is a plain value and is safe for concurrent use, as long as
// any callbacks in its action table are.
type Resolver struct {
	Options options.Options
	Actions Actions
	Target  Target
	// Width is the type to produce. [extract.Default] is int64 or float64,
	// according to the target. It is ignored by [Real].
	Width extract.Width
}

// Outcome is the full result of resolving one input.
type Outcome struct {
	// Value is the converted value, or the replacement produced by an
	// action.
	Value any
	// Category is why conversion failed, or [None].
	Category Category
	// Action is the action that ran, if Category is not [None].
	Action ActionKind
	// Failure describes the failure, if Category is not [None].
	Failure *Failure
	// Err is the error from a [Raise] action or a callback.
	Err error
}

// Substituted returns whether an action other than [Raise] replaced the
// result.
func (o Outcome) Substituted() bool {
	return o.Category != None && o.Err == nil
}

// Resolve converts in, returning either a value or an error.
func (r Resolver) Resolve(in classify.Input) (any, error) {
	o := r.Outcome(in)
	return o.Value, o.Err
}

// Outcome converts in, returning everything that happened.
//
// Panics if r's target or width is not valid.
func (r Resolver) Outcome(in classify.Input) Outcome {
	e := r.Evaluate(in)
	v, c := r.Decide(e)
	if c == None {
		return Outcome{Value: v}
	}

	f := &Failure{Category: c, Target: r.Target, Width: r.Width, Input: in}
	action := r.Actions.For(c)
	o := Outcome{Category: c, Action: action.Kind(), Failure: f}
	o.Value, o.Err = action.apply(f)
	return o
}

// Options returns the options r classifies inputs with. Float targets
// always use the default base.
func (r Resolver) options() options.Options {
	if r.Target.IsFloat() {
		return r.Options.WithDefaultBase()
	}
	return r.Options
}

// Evaluate classifies in the way r would before deciding.
func (r Resolver) Evaluate(in classify.Input) classify.Evaluation {
	return classify.Evaluate(in, r.options())
}

// Decide runs the decision table on a classified input. Returns the
// converted value on success, or the category of the failure.
func (r Resolver) Decide(e classify.Evaluation) (any, Category) {
	if r.Target >= targetCount {
		panic(fmt.Sprintf("resolve: invalid target %v", r.Target))
	}
	if !r.Width.Valid() {
		panic(fmt.Sprintf("resolve: invalid width %v", r.Width))
	}

	opts := r.options()
	in, f := e.Input, e.Flags
	origin := in.Origin()

	switch {
	case !in.Supported():
		return nil, TypeMismatch
	case !r.Target.IsFloat() && !opts.IsDefaultBase() && in.IsNumeric():
		// A base only makes sense for text.
		return nil, TypeMismatch
	case !r.accepts(e, opts):
		return nil, ParseFailure
	case f.Has(classify.Infinity) && !opts.Inf.Permits(origin):
		return nil, InfinityEncountered
	case f.Has(classify.NaN) && !opts.NaN.Permits(origin):
		return nil, NaNEncountered
	case f.Has(classify.NaN) && !r.Target.IsFloat():
		return nil, ParseFailure
	}

	v, ok := e.Value(r.width(e, opts))
	if !ok {
		return nil, Overflow
	}
	return v, None
}

// accepts returns whether the classified input is a number of a kind the
// target converts.
func (r Resolver) accepts(e classify.Evaluation, opts options.Options) bool {
	f := e.Flags
	switch {
	case !f.IsNumber():
		return false
	case r.Target == Int && e.Input.IsText():
		return f.Has(classify.Integer) || (opts.CoerceIntLike && f.Has(classify.IntLike))
	default:
		return true
	}
}

// width picks the width to extract with.
func (r Resolver) width(e classify.Evaluation, opts options.Options) extract.Width {
	if r.Target != Real {
		return r.Width.Resolve(r.Target == Float)
	}

	f := e.Flags
	switch {
	case f.Has(classify.Integer):
		return extract.Int64
	case opts.CoerceIntLike && f.Has(classify.IntLike):
		// Large int-like floats stay floats.
		if _, ok := e.Value(extract.Int64); ok {
			return extract.Int64
		}
	}
	return extract.Float64
}

// To resolves in to a T, converting any replacement value from an action.
//
// A [Real] target becomes [Int] or [Float] according to T. A replacement
// that is not a number representable as T is an [ErrType] error.
func To[T extract.Number](r Resolver, in classify.Input) (T, error) {
	v, o := ToOutcome[T](r, in)
	return v, o.Err
}

// ToOutcome is like [To], but also returns the full outcome.
func ToOutcome[T extract.Number](r Resolver, in classify.Input) (T, Outcome) {
	var zero T
	r.Width = extract.WidthOf[T]()
	if r.Target == Real {
		if r.Width.IsFloat() {
			r.Target = Float
		} else {
			r.Target = Int
		}
	}

	o := r.Outcome(in)
	if o.Err != nil {
		return zero, o
	}
	if v, ok := o.Value.(T); ok {
		return v, o
	}
	if v, ok := extract.As[T](o.Value); ok {
		return v, o
	}
	o.Err = fmt.Errorf("replacement %v (%T) for %v is not a %v: %w",
		o.Value, o.Value, in, r.Width, ErrType)
	return zero, o
}
