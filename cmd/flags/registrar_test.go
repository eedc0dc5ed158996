// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRegisterGlobalFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{
		Use: "test",
	}

	// WHEN
	RegisterGlobalFlags(cmd)

	// THEN
	configFlag := cmd.PersistentFlags().Lookup(Config)
	assert.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Empty(t, configFlag.DefValue)
	assert.NotEmpty(t, configFlag.Usage)

	envPrefixFlag := cmd.PersistentFlags().Lookup(EnvironmentConfigPrefix)
	assert.NotNil(t, envPrefixFlag)
	assert.Empty(t, envPrefixFlag.Shorthand)
	assert.Equal(t, "BODYPARSERCFG_", envPrefixFlag.DefValue)
	assert.NotEmpty(t, envPrefixFlag.Usage)
}

func TestRegisterDecodeFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{
		Use: "test",
	}

	// WHEN
	RegisterDecodeFlags(cmd)

	// THEN
	for _, tc := range []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: ContentType},
		{name: File, shorthand: "f"},
		{name: Output, shorthand: "o", defValue: "json"},
		{name: MaxSize, defValue: "10MB"},
	} {
		flag := cmd.Flags().Lookup(tc.name)
		if assert.NotNil(t, flag, tc.name) {
			assert.Equal(t, tc.shorthand, flag.Shorthand)
			assert.Equal(t, tc.defValue, flag.DefValue)
			assert.NotEmpty(t, flag.Usage)
		}
	}

	required := cmd.Flags().Lookup(ContentType).Annotations[cobra.BashCompOneRequiredFlag]
	assert.Equal(t, []string{"true"}, required)
}
