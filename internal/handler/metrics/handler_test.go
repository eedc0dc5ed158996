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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bodyparser/internal/config"
	"github.com/dadrus/bodyparser/internal/handler/fxlcm"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	// GIVEN
	conf := &config.Configuration{}
	conf.Metrics.Enabled = true
	conf.Metrics.Port = 9000
	conf.Metrics.MetricsPath = "/metrics"

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := newService(conf, reg, reg, zerolog.Nop())

	testSrv := httptest.NewServer(srv.Handler)
	defer testSrv.Close()

	// WHEN
	resp, err := http.Get(testSrv.URL + "/metrics")
	require.NoError(t, err)

	defer resp.Body.Close()

	// THEN
	assert.Equal(t, ":9000", srv.Addr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_counter_total 1")
	assert.Contains(t, string(body), "promhttp_metric_handler_requests_total")
}

func TestNewLifecycleManager(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		enabled bool
		assert  func(t *testing.T, lcm lifecycleManager)
	}{
		{
			uc: "metrics disabled",
			assert: func(t *testing.T, lcm lifecycleManager) {
				t.Helper()

				assert.IsType(t, noopManager{}, lcm)
				require.NoError(t, lcm.Start(t.Context()))
				require.NoError(t, lcm.Stop(t.Context()))
			},
		},
		{
			uc:      "metrics enabled",
			enabled: true,
			assert: func(t *testing.T, lcm lifecycleManager) {
				t.Helper()

				require.IsType(t, &fxlcm.LifecycleManager{}, lcm)

				manager := lcm.(*fxlcm.LifecycleManager)
				assert.Equal(t, "Metrics", manager.ServiceName)
				assert.Equal(t, "127.0.0.1:9001", manager.ServiceAddress)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			conf := &config.Configuration{}
			conf.Metrics.Enabled = tc.enabled
			conf.Metrics.Host = "127.0.0.1"
			conf.Metrics.Port = 9001

			// WHEN
			lcm := newLifecycleManager(conf, &http.Server{}, zerolog.Nop())

			// THEN
			tc.assert(t, lcm)
		})
	}
}
