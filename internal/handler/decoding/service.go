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
	"log"
	"math"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/dadrus/bodyparser/internal/config"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/logger"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/methodfilter"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/passthrough"
	prometheus2 "github.com/dadrus/bodyparser/internal/handler/middleware/http/prometheus"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/recovery"
)

func newService(conf *config.Configuration, reg prometheus.Registerer, logr zerolog.Logger) *http.Server {
	cfg := conf.Serve
	respond := cfg.Respond
	eh := errorhandler.New(
		errorhandler.WithVerboseErrors(respond.Verbose),
		errorhandler.WithArgumentErrorCode(respond.With.ArgumentError.Code),
		errorhandler.WithUnsupportedMediaTypeCode(respond.With.UnsupportedMediaType.Code),
		errorhandler.WithBodyTooLargeCode(respond.With.BodyTooLarge.Code),
		errorhandler.WithMethodNotAllowedCode(respond.With.MethodNotAllowed.Code),
		errorhandler.WithInternalServerErrorCode(respond.With.InternalError.Code),
	)

	hc := alice.New(
		accesslog.New(logr),
		logger.New(logr),
		recovery.New(eh),
		metricsMiddleware(conf.Metrics.Enabled, reg),
		corsMiddleware(cfg.CORS),
	).Then(newMux(eh, bodyLimit(conf.Decoder)))

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     log.New(logr.Level(zerolog.ErrorLevel), "", 0),
	}
}

func newMux(eh errorhandler.ErrorHandler, limit int64) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(EndpointDecode, methodfilter.New(http.MethodPost, eh)(newHandler(eh, limit)))

	return mux
}

// bodyLimit keeps the limit below math.MaxInt64, since http.MaxBytesReader reads one byte beyond it.
func bodyLimit(conf config.DecoderConfig) int64 {
	if uint64(conf.BodyLimit) >= math.MaxInt64 {
		return math.MaxInt64 - 1
	}

	return int64(conf.BodyLimit)
}

func metricsMiddleware(enabled bool, reg prometheus.Registerer) func(http.Handler) http.Handler {
	if !enabled {
		return passthrough.New
	}

	return prometheus2.New(
		prometheus2.WithServiceName("decoder"),
		prometheus2.WithRegisterer(reg),
	)
}

func corsMiddleware(conf *config.CORS) func(http.Handler) http.Handler {
	if conf == nil {
		return passthrough.New
	}

	return cors.New(
		cors.Options{
			AllowedOrigins:   conf.AllowedOrigins,
			AllowedMethods:   conf.AllowedMethods,
			AllowedHeaders:   conf.AllowedHeaders,
			AllowCredentials: conf.AllowCredentials,
			ExposedHeaders:   conf.ExposedHeaders,
			MaxAge:           int(conf.MaxAge.Seconds()),
		},
	).Handler
}
