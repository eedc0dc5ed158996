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

package decoding

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/bodyparser/internal/config"
	"github.com/dadrus/bodyparser/internal/handler/fxlcm"
)

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(fx.Annotated{Name: "decoder", Target: newService}),
	fx.Invoke(registerHooks),
)

type hooksArgs struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Configuration
	Logger    zerolog.Logger
	Server    *http.Server `name:"decoder"`
}

func registerHooks(args hooksArgs) {
	lcm := &fxlcm.LifecycleManager{
		ServiceName:    "Decoder",
		ServiceAddress: args.Config.Serve.Address(),
		Server:         args.Server,
		Logger:         args.Logger,
	}

	args.Lifecycle.Append(fx.Hook{OnStart: lcm.Start, OnStop: lcm.Stop})
}
