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
	"fmt"
	"strings"
)

// ActionKind is what an [Action] does.
type ActionKind byte

const (
	// KindRaise returns a [*Failure].
	KindRaise ActionKind = iota
	// KindDefault returns a fixed replacement value.
	KindDefault
	// KindCallback calls a function with the original input.
	KindCallback
	// KindPassthrough returns the original input unchanged.
	KindPassthrough
)

// String implements [fmt.Stringer].
func (k ActionKind) String() string {
	switch k {
	case KindRaise:
		return "raise"
	case KindDefault:
		return "default"
	case KindCallback:
		return "callback"
	case KindPassthrough:
		return "input"
	default:
		return fmt.Sprintf("ActionKind(%d)", byte(k))
	}
}

// Action is what to do when a conversion fails.
//
// The zero Action raises.
type Action struct {
	kind  ActionKind
	value any
	fn    func(any) (any, error)
}

// Raise returns an action that reports the failure as an error.
func Raise() Action { return Action{} }

// Default returns an action that replaces the result with v.
func Default(v any) Action {
	return Action{kind: KindDefault, value: v}
}

// Callback returns an action that replaces the result with whatever fn
// returns when called with the original input. An error from fn is
// returned as-is.
//
// Panics if fn is nil.
func Callback(fn func(any) (any, error)) Action {
	if fn == nil {
		panic("resolve: nil callback")
	}
	return Action{kind: KindCallback, fn: fn}
}

// Passthrough returns an action that replaces the result with the original
// input.
func Passthrough() Action {
	return Action{kind: KindPassthrough}
}

// Kind returns what this action does.
func (a Action) Kind() ActionKind {
	return a.kind
}

// ParseAction parses an action from text, for configuration surfaces that
// cannot express callbacks: "raise", "input", or "default=" followed by a
// replacement string.
func ParseAction(s string) (Action, error) {
	switch {
	case s == "raise":
		return Raise(), nil
	case s == "input":
		return Passthrough(), nil
	case strings.HasPrefix(s, "default="):
		return Default(strings.TrimPrefix(s, "default=")), nil
	default:
		return Action{}, fmt.Errorf("resolve: unknown action %q", s)
	}
}

// String implements [fmt.Stringer].
func (a Action) String() string {
	if a.kind == KindDefault {
		return fmt.Sprintf("default=%v", a.value)
	}
	return a.kind.String()
}

// apply runs the action on behalf of a failed conversion.
func (a Action) apply(f *Failure) (any, error) {
	switch a.kind {
	case KindDefault:
		return a.value, nil
	case KindCallback:
		return a.fn(f.Input.Interface())
	case KindPassthrough:
		return f.Input.Interface(), nil
	default:
		return nil, f
	}
}

// Actions is the action table: one action per failure category. Unset
// entries raise.
type Actions struct {
	OnFail     Action // ParseFailure.
	OnType     Action // TypeMismatch.
	OnOverflow Action
	OnInf      Action
	OnNaN      Action
}

// Uniform returns an action table that does a for every category.
func Uniform(a Action) Actions {
	return Actions{OnFail: a, OnType: a, OnOverflow: a, OnInf: a, OnNaN: a}
}

// For returns the action for a category.
//
// Panics if c is [None] or not a category.
func (a Actions) For(c Category) Action {
	switch c {
	case ParseFailure:
		return a.OnFail
	case TypeMismatch:
		return a.OnType
	case Overflow:
		return a.OnOverflow
	case InfinityEncountered:
		return a.OnInf
	case NaNEncountered:
		return a.OnNaN
	default:
		panic(fmt.Sprintf("resolve: no action for category %v", c))
	}
}
