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

package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerIsAvailableToDownstreamHandlers(t *testing.T) {
	t.Parallel()

	// GIVEN
	buf := &bytes.Buffer{}
	handler := New(zerolog.New(buf))(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		zerolog.Ctx(req.Context()).Info().Msg("from handler")
		rw.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()

	// WHEN
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/decode", nil))

	// THEN
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Contains(t, buf.String(), `"message":"from handler"`)
}
