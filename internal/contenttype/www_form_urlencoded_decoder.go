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

package contenttype

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dadrus/bodyparser/internal/payload"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

type WWWFormUrlencodedDecoder struct{}

func (WWWFormUrlencodedDecoder) Decode(rawData []byte) (payload.Payload, error) {
	if !utf8.Valid(rawData) {
		return nil, errorchain.NewWithMessage(ErrEncoding, "form data is not valid UTF-8")
	}

	// url.ParseQuery does not trim and would produce keys consisting of white spaces only
	values, err := url.ParseQuery(strings.TrimSpace(string(rawData)))
	if err != nil {
		return nil, errorchain.NewWithMessage(ErrEncoding, "invalid form data").CausedBy(err)
	}

	form := make(payload.Form, len(values))

	for key, vals := range values {
		// the last occurrence of a repeated key wins, as with multipart forms
		val := vals[len(vals)-1]

		if !utf8.ValidString(key) || !utf8.ValidString(val) {
			return nil, errorchain.NewWithMessagef(ErrEncoding,
				"form field %q does not decode to valid UTF-8", key)
		}

		form.Set(key, payload.Text(val))
	}

	return form, nil
}
