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

// Package batch drives the engine over slices of inputs.
//
// Elements are independent, so a batch is split into chunks that are
// resolved concurrently. Failures are routed through a [reporter.Reporter],
// which decides whether the batch stops at the first failure or carries on
// to report all of them.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/reporter"
	"github.com/bufbuild/numlit/resolve"
)

// defaultChunk is the number of elements a worker resolves between
// cancellation checks.
const defaultChunk = 1024

// Config controls how a batch is executed.
type Config struct {
	// Parallelism is the maximum number of concurrent workers. Zero means
	// GOMAXPROCS; one resolves chunks strictly in order.
	Parallelism int
	// ChunkSize is the number of consecutive elements each worker task
	// takes. Zero selects a default.
	ChunkSize int
	// Reporter receives per-element failures and substitutions. Nil aborts
	// the batch on the first failure.
	Reporter reporter.Reporter
}

// Map resolves every input, in order.
//
// On failure, the returned slice holds the values resolved so far, with nil
// for elements that failed or were not reached.
func Map(ctx context.Context, r resolve.Resolver, inputs []any, cfg Config) ([]any, error) {
	out := make([]any, len(inputs))
	err := run(ctx, len(inputs), cfg, func(i int, h *reporter.Handler) error {
		o := r.Outcome(classify.Value(inputs[i]))
		if err := report(h, i, o); err != nil {
			return err
		}
		if o.Err == nil {
			out[i] = o.Value
		}
		return nil
	})
	return out, err
}

// Fill resolves every input into the corresponding element of dst.
//
// Replacements produced by actions are converted to T with the usual range
// checks; one that cannot be is reported as a type failure. dst must have
// the same length as inputs.
func Fill[T extract.Number](ctx context.Context, r resolve.Resolver, dst []T, inputs []any, cfg Config) error {
	if len(dst) != len(inputs) {
		return fmt.Errorf("batch: destination has %d elements, want %d", len(dst), len(inputs))
	}

	return run(ctx, len(inputs), cfg, func(i int, h *reporter.Handler) error {
		v, o := resolve.ToOutcome[T](r, classify.Value(inputs[i]))
		if err := report(h, i, o); err != nil {
			return err
		}
		if o.Err == nil {
			dst[i] = v
		}
		return nil
	})
}

// report hands a failed outcome to h. Returns an error if the batch should
// abort.
func report(h *reporter.Handler, i int, o resolve.Outcome) error {
	switch {
	case o.Category == resolve.None:
		return nil
	case o.Err != nil:
		return h.HandleError(i, o.Err)
	default:
		h.HandleWarning(i, fmt.Errorf("%w: replaced by %v", o.Failure, o.Action))
		return nil
	}
}

// run calls do for every index in [0, n), split into chunks across workers.
func run(ctx context.Context, n int, cfg Config, do func(int, *reporter.Handler) error) error {
	h := reporter.NewHandler(cfg.Reporter)

	workers := cfg.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		task := func() error {
			for i := start; i < end; i++ {
				if err := do(i, h); err != nil {
					return err
				}
			}
			return gctx.Err()
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(task)
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.Error()
}
