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

package batch

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/tidwall/btree"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/reporter"
)

// Histogram counts classification descriptors, ordered by descriptor.
//
// The zero Histogram is empty and ready to use. A Histogram is not safe for
// concurrent mutation.
type Histogram struct {
	counts btree.Map[classify.Flags, int]
	total  int
}

// Add counts one occurrence of f.
func (h *Histogram) Add(f classify.Flags) {
	h.AddN(f, 1)
}

// AddN counts n occurrences of f.
func (h *Histogram) AddN(f classify.Flags, n int) {
	prev, _ := h.counts.Get(f)
	h.counts.Set(f, prev+n)
	h.total += n
}

// Merge adds every count in other to h.
func (h *Histogram) Merge(other *Histogram) {
	for f, n := range other.All() {
		h.AddN(f, n)
	}
}

// Count returns the number of occurrences of exactly f.
func (h *Histogram) Count(f classify.Flags) int {
	n, _ := h.counts.Get(f)
	return n
}

// Matching returns the number of occurrences of descriptors that have every
// flag in mask.
func (h *Histogram) Matching(mask classify.Flags) int {
	var total int
	for f, n := range h.All() {
		if f.Has(mask) {
			total += n
		}
	}
	return total
}

// Len returns the number of distinct descriptors.
func (h *Histogram) Len() int {
	return h.counts.Len()
}

// Total returns the number of descriptors counted.
func (h *Histogram) Total() int {
	return h.total
}

// All returns an iterator over the distinct descriptors and their counts,
// in ascending order of descriptor.
func (h *Histogram) All() iter.Seq2[classify.Flags, int] {
	return func(yield func(classify.Flags, int) bool) {
		h.counts.Scan(yield)
	}
}

// String implements [fmt.Stringer].
func (h *Histogram) String() string {
	var out strings.Builder
	for f, n := range h.All() {
		fmt.Fprintf(&out, "%v: %d\n", f, n)
	}
	return out.String()
}

// Tally classifies every input and counts the descriptors.
//
// Each worker counts into its own histogram; they are merged at the end.
func Tally(ctx context.Context, inputs []any, opts options.Options, cfg Config) (*Histogram, error) {
	// Partial histograms, indexed by chunk.
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunk
	}
	parts := make([]Histogram, (len(inputs)+chunk-1)/chunk)

	cfg.ChunkSize = chunk
	err := run(ctx, len(inputs), cfg, func(i int, _ *reporter.Handler) error {
		parts[i/chunk].Add(classify.Classify(classify.Value(inputs[i]), opts))
		return nil
	})
	if err != nil {
		return nil, err
	}

	h := new(Histogram)
	for i := range parts {
		h.Merge(&parts[i])
	}
	return h, nil
}
