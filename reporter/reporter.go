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

// Package reporter collects the failures of a batch conversion.
//
// A [Reporter] decides, per failed element, whether the batch should stop.
// Substitutions made by fallback actions are reported as warnings.
package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. If it returns
// a non-nil error, the batch aborts with that error. If it returns nil, the
// batch continues, so that every invalid element can be reported.
type ErrorReporter func(err ErrorWithIndex) error

// WarningReporter is responsible for reporting a warning: an element that
// did not convert but was replaced by a fallback action.
type WarningReporter func(ErrorWithIndex)

// Reporter receives errors and warnings.
type Reporter interface {
	Error(ErrorWithIndex) error
	Warning(ErrorWithIndex)
}

// NewReporter returns a [Reporter] built from two functions. A nil errs
// aborts on the first error; a nil warnings discards warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithIndex) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithIndex) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler funnels reports from concurrent workers into a [Reporter],
// remembering the first error the reporter chose to abort with.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler returns a handler for rep. A nil rep aborts on the first
// error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports a failure of the element at index i. Returns a
// non-nil error if the batch should abort.
func (h *Handler) HandleError(i int, err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(Error(i, err))
	return h.err
}

// HandleWarning reports a substitution for the element at index i.
func (h *Handler) HandleWarning(i int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reporter.Warning(Error(i, err))
}

// Error returns the error the batch aborted with, or [ErrInvalidInput] if
// errors were reported but none aborted it.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidInput
	}
	return h.err
}

// ReporterError returns the error the reporter aborted with, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
