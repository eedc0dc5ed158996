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
	"github.com/dadrus/bodyparser/internal/bodyparser"
	"github.com/dadrus/bodyparser/internal/config/parser"
	"github.com/dadrus/bodyparser/internal/validation"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

type (
	ConfigurationPath string
	EnvVarPrefix      string
)

type Configuration struct {
	Serve   ServeConfig   `koanf:"serve"`
	Decoder DecoderConfig `koanf:"decoder"`
	Metrics MetricsConfig `koanf:"metrics"`
	Log     LoggingConfig `koanf:"log"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithEnvVarsSubstitution(true),
		parser.WithConfigValidator(ValidateConfig),
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"failed to load configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(bodyparser.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
