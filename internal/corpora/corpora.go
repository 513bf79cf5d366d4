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

// Package corpora runs golden tests over files of numeric literals.
//
// A corpus file holds one Go-quoted literal per line. Lines starting with
// "//% " are YAML configuration for the whole file; other lines starting
// with "//" and blank lines are ignored. Each test produces one or more
// outputs, which are compared against sibling files named after the input
// plus an extension.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// configPrefix introduces a line of YAML configuration.
const configPrefix = "//% "

// Corpus describes a directory of test files.
type Corpus struct {
	// Root is the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a glob of tests whose
	// outputs should be rewritten instead of checked.
	Refresh string

	// Extension is the extension, without a dot, of test input files.
	Extension string
	// Outputs are the outputs of each test. A missing output file is treated
	// as empty.
	Outputs []Output

	// Test runs one test case. Returns one string per element of Outputs.
	Test func(t *testing.T, c *Case) []string
}

// Case is a parsed test file.
type Case struct {
	// Path is the path of the file, relative to the test's directory.
	Path string
	// Config is the YAML collected from configuration lines.
	Config string
	// Inputs are the unquoted literals, in file order.
	Inputs []string
}

// Decode decodes the case's configuration into v. Unknown keys are an
// error. An empty configuration leaves v untouched.
func (c *Case) Decode(v any) error {
	if strings.TrimSpace(c.Config) == "" {
		return nil
	}
	dec := yaml.NewDecoder(strings.NewReader(c.Config))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("corpora: %s: bad config: %w", c.Path, err)
	}
	return nil
}

// Parse parses the contents of a test file.
func Parse(path, text string) (*Case, error) {
	c := &Case{Path: path}
	var config strings.Builder
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, configPrefix):
			config.WriteString(strings.TrimPrefix(line, configPrefix))
			config.WriteByte('\n')
		case strings.HasPrefix(line, "//"), strings.TrimSpace(line) == "":
			continue
		default:
			input, err := strconv.Unquote(line)
			if err != nil {
				return nil, fmt.Errorf("corpora: %s:%d: expected a quoted literal: %w", path, i+1, err)
			}
			c.Inputs = append(c.Inputs, input)
		}
	}
	c.Config = config.String()
	return c, nil
}

// Run runs every test in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			tc, err := Parse(name, string(bytes))
			if err != nil {
				t.Fatal(err)
			}
			results := c.Test(t, tc)

			refresh, _ := doublestar.Match(refresh, filepath.ToSlash(name))
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					write(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", path, err)
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write rewrites an output file, deleting it if the output is empty.
func write(t *testing.T, path, output string) {
	t.Helper()
	if output == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

// Output is one output of a test case.
type Output struct {
	// Extension is appended to the input file's name to find the expected
	// output, so a test "foo.txt" with extension "tsv" is checked against
	// "foo.txt.tsv".
	Extension string

	// Compare compares outputs. If nil, they are compared byte-for-byte.
	Compare Compare
}

// Compare compares a test's output with the expected output.
//
// Returns the empty string if they match, otherwise a description of the
// difference.
type Compare func(got, want string) string

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
