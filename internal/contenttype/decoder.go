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
	"strings"

	"github.com/dadrus/bodyparser/internal/payload"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

const (
	MultipartFormData    = "multipart/form-data"
	WWWFormURLEncoded    = "application/x-www-form-urlencoded"
	ApplicationJSON      = "application/json"
	TextPlain            = "text/plain"
	boundaryParameterKey = "boundary"
)

// RawBody is a completely received request body together with its declared content type.
// Decoders only read Data and never keep references to it.
type RawBody struct {
	ContentType string
	Data        []byte
}

type Decoder interface {
	Decode(data []byte) (payload.Payload, error)
}

// NewDecoder selects the decoder for the primary token of the given content type.
func NewDecoder(contentType string) (Decoder, error) {
	switch primaryToken(contentType) {
	case MultipartFormData:
		boundary, err := boundaryToken(contentType)
		if err != nil {
			return nil, err
		}

		return MultipartDecoder{boundary: boundary}, nil
	case WWWFormURLEncoded:
		return WWWFormUrlencodedDecoder{}, nil
	case ApplicationJSON:
		return JSONDecoder{}, nil
	case TextPlain:
		return TextDecoder{}, nil
	default:
		return nil, errorchain.NewWithMessagef(ErrUnsupportedContentType,
			"%q is not supported", contentType)
	}
}

// Decode decodes the given body according to its declared content type. Either a
// complete payload or an error is returned, never both.
func Decode(body RawBody) (payload.Payload, error) {
	decoder, err := NewDecoder(body.ContentType)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(body.Data)
}

func primaryToken(contentType string) string {
	token, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(token))
}

func boundaryToken(contentType string) (string, error) {
	// boundaries are compared byte by byte, so the value must keep its case
	boundary := headerParameters(contentType)[boundaryParameterKey]
	if len(boundary) == 0 {
		return "", errorchain.NewWithMessagef(ErrMissingBoundaryToken,
			"no boundary parameter in %q", contentType)
	}

	return boundary, nil
}
