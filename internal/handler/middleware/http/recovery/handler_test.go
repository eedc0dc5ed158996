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

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bodyparser/internal/accesscontext"
	"github.com/dadrus/bodyparser/internal/bodyparser"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/errorhandler"
)

func TestRecoveryHandler(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		handler http.HandlerFunc
		expCode int
		assert  func(t *testing.T, err error)
	}{
		{
			uc: "no panic",
			handler: func(rw http.ResponseWriter, _ *http.Request) {
				rw.WriteHeader(http.StatusOK)
			},
			expCode: http.StatusOK,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:      "panic with error",
			handler: func(http.ResponseWriter, *http.Request) { panic(errors.New("test error")) },
			expCode: http.StatusInternalServerError,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, bodyparser.ErrInternal)
				assert.Contains(t, err.Error(), "test error")
			},
		},
		{
			uc:      "panic with string",
			handler: func(http.ResponseWriter, *http.Request) { panic("oops") },
			expCode: http.StatusInternalServerError,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, bodyparser.ErrInternal)
				assert.Contains(t, err.Error(), "oops")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/decode", nil)
			req = req.WithContext(accesscontext.New(req.Context()))

			// WHEN
			New(errorhandler.New())(tc.handler).ServeHTTP(recorder, req)

			// THEN
			assert.Equal(t, tc.expCode, recorder.Code)
			tc.assert(t, accesscontext.Error(req.Context()))
		})
	}
}
