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

package methodfilter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dadrus/bodyparser/internal/handler/middleware/http/errorhandler"
)

func TestMethodFilter(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc        string
		method    string
		expCode   int
		expCalled bool
	}{
		{uc: "allowed method", method: http.MethodPost, expCode: http.StatusOK, expCalled: true},
		{uc: "GET is not allowed", method: http.MethodGet, expCode: http.StatusMethodNotAllowed},
		{uc: "PUT is not allowed", method: http.MethodPut, expCode: http.StatusMethodNotAllowed},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			called := false
			handler := New(http.MethodPost, errorhandler.New())(
				http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
					called = true

					rw.WriteHeader(http.StatusOK)
				}))

			recorder := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(recorder, httptest.NewRequest(tc.method, "/decode", nil))

			// THEN
			assert.Equal(t, tc.expCode, recorder.Code)
			assert.Equal(t, tc.expCalled, called)

			if !tc.expCalled {
				assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
			}
		})
	}
}
