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

package corpora_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numlit/internal/corpora"
)

func TestParse(t *testing.T) {
	t.Parallel()

	text := "//% base: 16\n" +
		"// a comment\n" +
		"\n" +
		"\"ff\"\r\n" +
		"//% allow_underscores: true\n" +
		"\" 1_0 \"\n" +
		"\"\\u0663\"\n"

	c, err := corpora.Parse("x.txt", text)
	require.NoError(t, err)
	assert.Equal(t, []string{"ff", " 1_0 ", "\u0663"}, c.Inputs)
	assert.Equal(t, "base: 16\nallow_underscores: true\n", c.Config)

	var config struct {
		Base       int  `yaml:"base"`
		Underscore bool `yaml:"allow_underscores"`
	}
	require.NoError(t, c.Decode(&config))
	assert.Equal(t, 16, config.Base)
	assert.True(t, config.Underscore)

	var wrong struct {
		Base int `yaml:"base"`
	}
	assert.Error(t, c.Decode(&wrong))

	_, err = corpora.Parse("y.txt", "not quoted\n")
	assert.ErrorContains(t, err, "y.txt:1")
}
