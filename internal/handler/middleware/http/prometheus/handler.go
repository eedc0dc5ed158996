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

package prometheus

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dadrus/bodyparser/internal/accesscontext"
)

const unknownKind = "none"

type metricsHandler struct {
	reqCounter      *prometheus.CounterVec
	reqHistogram    *prometheus.HistogramVec
	reqInFlight     *prometheus.GaugeVec
	filterOperation OperationFilter
	next            http.Handler
}

func New(opts ...Option) func(http.Handler) http.Handler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	counter := promauto.With(options.registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "requests_total"),
			Help:        "Count all http requests by status code, method, path and decoded payload kind.",
			ConstLabels: options.labels,
		},
		[]string{"status_code", "method", "path", "payload_kind"},
	)

	histogram := promauto.With(options.registerer).NewHistogramVec(prometheus.HistogramOpts{
		Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "request_duration_seconds"),
		Help:        "Duration of all http requests by status code, method and path.",
		ConstLabels: options.labels,
		Buckets: []float64{
			0.00001, // 10µs
			0.00005,
			0.0001, // 100µs
			0.0005,
			0.001, // 1ms
			0.005,
			0.01, // 10ms
			0.05,
			0.1, // 100ms
			0.5,
			1.0, // 1s
			5.0,
			10.0,
		},
	},
		[]string{"status_code", "method", "path"},
	)

	gauge := promauto.With(options.registerer).NewGaugeVec(prometheus.GaugeOpts{
		Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "requests_in_progress_total"),
		Help:        "All the requests in progress",
		ConstLabels: options.labels,
	}, []string{"method"})

	return func(next http.Handler) http.Handler {
		return &metricsHandler{
			reqCounter:      counter,
			reqHistogram:    histogram,
			reqInFlight:     gauge,
			filterOperation: options.filterOperation,
			next:            next,
		}
	}
}

func (h *metricsHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	if h.filterOperation(req) {
		h.next.ServeHTTP(rw, req)

		return
	}

	method := req.Method

	h.reqInFlight.WithLabelValues(method).Inc()
	defer h.reqInFlight.WithLabelValues(method).Dec()

	metrics := httpsnoop.CaptureMetrics(h.next, rw, req)

	kind := string(accesscontext.PayloadKind(req.Context()))
	if len(kind) == 0 {
		kind = unknownKind
	}

	statusCode := strconv.Itoa(metrics.Code)
	path := req.URL.Path

	h.reqCounter.WithLabelValues(statusCode, method, path, kind).Inc()
	h.reqHistogram.WithLabelValues(statusCode, method, path).Observe(metrics.Duration.Seconds())
}
