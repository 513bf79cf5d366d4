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

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/options"
)

// Query is the question a [Check] answers.
type Query byte

const (
	// QueryInt asks whether the input is an integer.
	QueryInt Query = iota
	// QueryIntLike asks whether the input is an integer or an int-like
	// float.
	QueryIntLike
	// QueryFloat asks whether the input is a float. Integer text counts
	// unless the check is strict.
	QueryFloat
	// QueryReal asks whether the input is any number.
	QueryReal
)

// String implements [fmt.Stringer].
func (q Query) String() string {
	switch q {
	case QueryInt:
		return "int"
	case QueryIntLike:
		return "intlike"
	case QueryFloat:
		return "float"
	case QueryReal:
		return "real"
	default:
		return fmt.Sprintf("Query(%d)", byte(q))
	}
}

// Consider restricts a [Check] to inputs of one origin.
type Consider byte

const (
	Any Consider = iota
	OnlyText
	OnlyNumeric
)

// Check is a yes-or-no question about an input. Nothing is converted and
// no action runs.
type Check struct {
	Options  options.Options
	Query    Query
	Consider Consider
	// Strict makes [QueryFloat] reject integer text.
	Strict bool
}

// Test answers the check's question for in.
func (c Check) Test(in classify.Input) bool {
	switch {
	case c.Consider == OnlyText && !in.IsText():
		return false
	case c.Consider == OnlyNumeric && !in.IsNumeric():
		return false
	}

	opts := c.Options
	if c.Query == QueryFloat || c.Query == QueryReal {
		opts = opts.WithDefaultBase()
	}

	f := classify.Classify(in, opts)
	okFloat := f.Has(classify.Float) && f.Permitted(opts)
	okInt := f.Has(classify.Integer)

	switch c.Query {
	case QueryInt:
		return okInt
	case QueryIntLike:
		return okInt || f.Has(classify.IntLike)
	case QueryFloat:
		return okFloat || (f.Has(classify.FromText) && !c.Strict && okInt)
	case QueryReal:
		return okFloat || okInt
	default:
		panic(fmt.Sprintf("resolve: invalid query %v", c.Query))
	}
}
