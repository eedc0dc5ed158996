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

package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/bodyparser/internal/bodyparser"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
	"github.com/dadrus/bodyparser/internal/x/stringx"
	"github.com/dadrus/bodyparser/schema"
)

// ValidateConfig checks the given config file against the configuration JSON schema.
func ValidateConfig(configPath string) error {
	file, err := os.Open(configPath)
	if err != nil {
		return errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"failed to read config file").CausedBy(err)
	}

	defer file.Close()

	return ValidateConfigSchema(file)
}

func ValidateConfigSchema(src io.Reader) error {
	var conf map[string]any

	if err := yaml.NewDecoder(src).Decode(&conf); err != nil {
		if errors.Is(err, io.EOF) {
			return errorchain.NewWithMessage(bodyparser.ErrConfiguration, "config file is empty")
		}

		return errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"failed to parse config").CausedBy(err)
	}

	compiledSchema, err := compileSchema("config.schema.json", stringx.ToString(schema.ConfigSchema))
	if err != nil {
		return errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"failed to compile JSON schema").CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"failed to validate config").CausedBy(err)
	}

	return nil
}

func compileSchema(url, schemaContent string) (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaContent))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}
