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

package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML document into an [Options] and validates it.
//
// Unknown keys are an error. An empty document yields the zero Options.
func Load(r io.Reader) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadFile is like [Load], but reads from the named file.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := Load(bytes.NewReader(data))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (b *Base) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseBase(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*b = v
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (b Base) MarshalYAML() (any, error) {
	if b == DefaultBase || b == PrefixBase {
		return b.String(), nil
	}
	return int(b), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (a *Allowance) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseAllowance(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = v
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (a Allowance) MarshalYAML() (any, error) {
	return a.String(), nil
}

// ParseBase parses a base as accepted in configuration: an integer between
// [MinBase] and [MaxBase], or one of "default" and "prefix".
func ParseBase(s string) (Base, error) {
	var base Base
	switch s {
	case "", "default":
		base = DefaultBase
	case "prefix":
		base = PrefixBase
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("options: invalid base %q", s)
		}
		base = Base(n)
	}
	if !base.valid() {
		return 0, fmt.Errorf("options: base must be between %d and %d, got %s", MinBase, MaxBase, s)
	}
	return base, nil
}
