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

package batch_test

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numlit/batch"
	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/reporter"
	"github.com/bufbuild/numlit/resolve"
)

func TestMap(t *testing.T) {
	t.Parallel()

	r := resolve.Resolver{Target: resolve.Real}
	inputs := []any{"1", "2.5", 3, 4.0, " 5 "}
	got, err := batch.Map(context.Background(), r, inputs, batch.Config{})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), 2.5, int64(3), 4.0, int64(5)}, got)
}

func TestMapParallel(t *testing.T) {
	t.Parallel()

	inputs := make([]any, 10_000)
	want := make([]any, len(inputs))
	for i := range inputs {
		inputs[i] = strconv.Itoa(i)
		want[i] = int64(i)
	}

	for _, cfg := range []batch.Config{
		{Parallelism: 1},
		{Parallelism: 4, ChunkSize: 7},
		{ChunkSize: 100},
	} {
		got, err := batch.Map(context.Background(), resolve.Resolver{}, inputs, cfg)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%+v", cfg)
	}
}

func TestMapAborts(t *testing.T) {
	t.Parallel()

	inputs := []any{"1", "x", "3"}
	got, err := batch.Map(context.Background(), resolve.Resolver{}, inputs, batch.Config{Parallelism: 1, ChunkSize: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrSyntax)

	var ewi reporter.ErrorWithIndex
	require.ErrorAs(t, err, &ewi)
	assert.Equal(t, 1, ewi.Index())
	assert.Equal(t, int64(1), got[0])
	assert.Nil(t, got[1])
}

func TestMapReportsAll(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		failed   []int
		replaced []int
	)
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithIndex) error {
			mu.Lock()
			defer mu.Unlock()
			failed = append(failed, err.Index())
			return nil
		},
		func(err reporter.ErrorWithIndex) {
			mu.Lock()
			defer mu.Unlock()
			replaced = append(replaced, err.Index())
		},
	)

	r := resolve.Resolver{
		Target:  resolve.Float,
		Actions: resolve.Actions{OnType: resolve.Default(0.0)},
	}
	inputs := []any{"x", 1.5, struct{}{}, "y", "2"}
	got, err := batch.Map(context.Background(), r, inputs, batch.Config{Reporter: rep, ChunkSize: 2})
	assert.ErrorIs(t, err, reporter.ErrInvalidInput)

	slices.Sort(failed)
	assert.Equal(t, []int{0, 3}, failed)
	assert.Equal(t, []int{2}, replaced)
	assert.Equal(t, []any{nil, 1.5, 0.0, nil, 2.0}, got)
}

func TestFill(t *testing.T) {
	t.Parallel()

	r := resolve.Resolver{
		Target:  resolve.Int,
		Actions: resolve.Actions{OnFail: resolve.Default(-1), OnOverflow: resolve.Default(math.MaxUint8)},
	}
	dst := make([]uint8, 5)
	var warnings int
	rep := reporter.NewReporter(nil, func(reporter.ErrorWithIndex) { warnings++ })

	err := batch.Fill(context.Background(), r, dst, []any{"7", "300", 9, "8", "0x10"}, batch.Config{Parallelism: 1, Reporter: rep})
	require.Error(t, err)
	// -1 does not fit a uint8, so the replacement for "0x10" is a type
	// failure.
	assert.ErrorIs(t, err, resolve.ErrType)
	assert.Equal(t, []uint8{7, 255, 9, 8, 0}, dst)
	assert.Equal(t, 1, warnings)

	floats := make([]float32, 3)
	err = batch.Fill(context.Background(), resolve.Resolver{Target: resolve.Real}, floats, []any{"1.5", 2, "inf"}, batch.Config{})
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 2, float32(math.Inf(1))}, floats)

	err = batch.Fill(context.Background(), r, dst, []any{"1"}, batch.Config{})
	assert.Error(t, err)
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.Map(ctx, resolve.Resolver{}, []any{"1", "2"}, batch.Config{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTally(t *testing.T) {
	t.Parallel()

	inputs := []any{"1", "2", "3.0", "x", 4, math.NaN(), "nan", "1.5", "7"}
	h, err := batch.Tally(context.Background(), inputs, options.Options{}, batch.Config{ChunkSize: 2})
	require.NoError(t, err)

	assert.Equal(t, len(inputs), h.Total())
	assert.Equal(t, 3, h.Count(classify.Integer|classify.FromText))
	assert.Equal(t, 1, h.Count(classify.Integer|classify.FromNumeric))
	assert.Equal(t, 1, h.Count(0))
	assert.Equal(t, 2, h.Matching(classify.NaN))
	assert.Equal(t, 4, h.Matching(classify.Float))

	var keys []classify.Flags
	for f := range h.All() {
		keys = append(keys, f)
	}
	assert.True(t, slices.IsSorted(keys))
	assert.Equal(t, h.Len(), len(keys))

	assert.True(t, strings.HasPrefix(h.String(), "none: 1\n"), h.String())
}

func TestHistogramMerge(t *testing.T) {
	t.Parallel()

	var a, b batch.Histogram
	a.Add(classify.Integer)
	b.AddN(classify.Integer, 2)
	b.Add(classify.Float)
	a.Merge(&b)

	assert.Equal(t, 3, a.Count(classify.Integer))
	assert.Equal(t, 1, a.Count(classify.Float))
	assert.Equal(t, 4, a.Total())
	assert.Equal(t, 2, a.Len())
}
