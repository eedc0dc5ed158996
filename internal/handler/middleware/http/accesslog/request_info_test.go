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

package accesslog

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		remoteAddr string
		expected   string
	}{
		{remoteAddr: "127.0.0.1:8080", expected: "127.0.0.1"},
		{remoteAddr: "[::1]:8080", expected: "::1"},
		{remoteAddr: "[fe80::1%eth0]:443", expected: "fe80::1%eth0"},
		{remoteAddr: "localhost:80", expected: "localhost"},
		{remoteAddr: "no-port"},
		{remoteAddr: ""},
	} {
		t.Run(tc.remoteAddr, func(t *testing.T) {
			assert.Equal(t, tc.expected, clientIP(tc.remoteAddr))
		})
	}
}

func TestScheme(t *testing.T) {
	t.Parallel()

	// GIVEN
	plain := httptest.NewRequest("POST", "/decode", nil)
	secure := httptest.NewRequest("POST", "/decode", nil)
	secure.TLS = &tls.ConnectionState{}

	// WHEN & THEN
	assert.Equal(t, "http", scheme(plain))
	assert.Equal(t, "https", scheme(secure))
}
