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
	"fmt"
	"time"
)

type ServeConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"            validate:"gt=0,lte=65535"`
	Timeout Timeout       `koanf:"timeout"`
	CORS    *CORS         `koanf:"cors,omitempty"`
	Respond RespondConfig `koanf:"respond"`
}

func (c ServeConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

type Timeout struct {
	Read  time.Duration `koanf:"read,string"  mapstructure:"read"`
	Write time.Duration `koanf:"write,string" mapstructure:"write"`
	Idle  time.Duration `koanf:"idle,string"  mapstructure:"idle"`
}

type CORS struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"`
	AllowedMethods   []string      `koanf:"allowed_methods"`
	AllowedHeaders   []string      `koanf:"allowed_headers"`
	ExposedHeaders   []string      `koanf:"exposed_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age,string"`
}

type ResponseOverride struct {
	Code int `koanf:"code" validate:"omitempty,gte=100,lt=600"`
}

type RespondConfig struct {
	Verbose bool `koanf:"verbose"`
	With    struct {
		ArgumentError        ResponseOverride `koanf:"argument_error"`
		UnsupportedMediaType ResponseOverride `koanf:"unsupported_media_type"`
		BodyTooLarge         ResponseOverride `koanf:"body_too_large"`
		MethodNotAllowed     ResponseOverride `koanf:"method_not_allowed"`
		InternalError        ResponseOverride `koanf:"internal_error"`
	} `koanf:"with"`
}
