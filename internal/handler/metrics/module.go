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

package metrics

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/bodyparser/internal/config"
	"github.com/dadrus/bodyparser/internal/handler/fxlcm"
)

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(fx.Annotated{Name: "metrics", Target: newService}),
	fx.Invoke(registerHooks),
)

type lifecycleManager interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type noopManager struct{}

func (noopManager) Start(context.Context) error { return nil }
func (noopManager) Stop(context.Context) error  { return nil }

type hooksArgs struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Configuration
	Logger    zerolog.Logger
	Server    *http.Server `name:"metrics"`
}

func registerHooks(args hooksArgs) {
	lcm := newLifecycleManager(args.Config, args.Server, args.Logger)

	args.Lifecycle.Append(fx.Hook{OnStart: lcm.Start, OnStop: lcm.Stop})
}

func newLifecycleManager(conf *config.Configuration, srv *http.Server, logger zerolog.Logger) lifecycleManager {
	if !conf.Metrics.Enabled {
		logger.Info().Msg("Metrics service disabled")

		return noopManager{}
	}

	return &fxlcm.LifecycleManager{
		ServiceName:    "Metrics",
		ServiceAddress: conf.Metrics.Address(),
		Server:         srv,
		Logger:         logger,
	}
}
