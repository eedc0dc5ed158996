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
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/dadrus/bodyparser/internal/payload"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

type JSONDecoder struct{}

func (JSONDecoder) Decode(rawData []byte) (payload.Payload, error) {
	if !utf8.Valid(rawData) {
		return nil, errorchain.NewWithMessage(ErrEncoding, "json document is not valid UTF-8")
	}

	var doc any
	if err := json.Unmarshal(rawData, &doc); err != nil {
		return nil, errorchain.NewWithMessage(ErrEncoding, "invalid json document").CausedBy(err)
	}

	return payload.Document{Value: doc}, nil
}
