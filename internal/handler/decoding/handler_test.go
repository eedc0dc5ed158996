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
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bodyparser/internal/accesscontext"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/bodyparser/internal/payload"
)

func multipartBody(t *testing.T) (string, []byte) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.SetBoundary("----WebKitFormBoundaryQ3bX9kLm2Rz8YtWp"))

	require.NoError(t, writer.WriteField("name", "Ann"))

	part, err := writer.CreateFormFile("doc", "a.txt")
	require.NoError(t, err)

	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return writer.FormDataContentType(), buf.Bytes()
}

func TestDecodeHandler(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc          string
		method      string
		contentType func(t *testing.T) (string, []byte)
		assert      func(t *testing.T, rec *httptest.ResponseRecorder, kind payload.Kind)
	}{
		{
			uc:     "url encoded form",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "application/x-www-form-urlencoded", []byte("name=Ann&eid=e1")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, kind payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.Equal(t, "form", rec.Header().Get("X-Payload-Kind"))
				assert.JSONEq(t, `{"name":"Ann","eid":"e1"}`, rec.Body.String())
				assert.Equal(t, payload.KindForm, kind)
			},
		},
		{
			uc:     "json document",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "application/json", []byte(`{"a":[1,true,null]}`)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, kind payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "document", rec.Header().Get("X-Payload-Kind"))
				assert.JSONEq(t, `{"a":[1,true,null]}`, rec.Body.String())
				assert.Equal(t, payload.KindDocument, kind)
			},
		},
		{
			uc:     "plain text",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "text/plain", []byte("name=Ann")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, _ payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "text", rec.Header().Get("X-Payload-Kind"))
				assert.JSONEq(t, `"name=Ann"`, rec.Body.String())
			},
		},
		{
			uc:          "multipart form with file",
			method:      http.MethodPost,
			contentType: multipartBody,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, _ payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "form", rec.Header().Get("X-Payload-Kind"))
				assert.JSONEq(t,
					`{"name":"Ann","doc":{"filename":"a.txt","content_type":"application/octet-stream","size":5,"data":"aGVsbG8="}}`,
					rec.Body.String())
			},
		},
		{
			uc:     "unsupported content type",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "application/xml", []byte("<a/>")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, kind payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
				assert.Empty(t, rec.Header().Get("X-Payload-Kind"))
				assert.Empty(t, kind)
			},
		},
		{
			uc:     "truncated multipart body",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "multipart/form-data; boundary=b",
					[]byte("--b\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\nfoo\r\n")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, _ payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			uc:     "body too large",
			method: http.MethodPost,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "text/plain", []byte(strings.Repeat("x", 1025))
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, _ payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			},
		},
		{
			uc:     "wrong method",
			method: http.MethodGet,
			contentType: func(t *testing.T) (string, []byte) {
				t.Helper()

				return "text/plain", nil
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, _ payload.Kind) {
				t.Helper()

				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			contentType, body := tc.contentType(t)

			req := httptest.NewRequest(tc.method, EndpointDecode, bytes.NewReader(body))
			req.Header.Set("Content-Type", contentType)
			req = req.WithContext(accesscontext.New(req.Context()))

			rec := httptest.NewRecorder()

			// WHEN
			newMux(errorhandler.New(), 1024).ServeHTTP(rec, req)

			// THEN
			tc.assert(t, rec, accesscontext.PayloadKind(req.Context()))
		})
	}
}
