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
	"bytes"
	"unicode/utf8"

	"github.com/dadrus/bodyparser/internal/payload"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

var (
	dashes              = []byte("--")
	lineBreak           = []byte("\r\n")
	headerBodySeparator = []byte("\r\n\r\n")
)

// MultipartDecoder decodes multipart/form-data bodies (RFC 7578). All matching is done on
// bytes, so file contents may contain arbitrary data as long as it does not contain the
// delimiter itself.
//
// A body must be terminated by the closing delimiter (--boundary--). Everything before
// the first delimiter (preamble) and after the closing one (epilogue) is ignored.
type MultipartDecoder struct {
	boundary string
}

func (d MultipartDecoder) Decode(rawData []byte) (payload.Payload, error) {
	sections, err := d.split(rawData)
	if err != nil {
		return nil, err
	}

	form := make(payload.Form, len(sections))

	for _, section := range sections {
		name, value, err := decodeSection(section)
		if err != nil {
			return nil, err
		}

		form.Set(name, value)
	}

	return form, nil
}

func (d MultipartDecoder) split(rawData []byte) ([][]byte, error) {
	opening := append([]byte("--"), d.boundary...)

	start := bytes.Index(rawData, opening)
	if start == -1 {
		return nil, errorchain.NewWithMessage(ErrTruncatedBody, "opening delimiter not found")
	}

	pos := start + len(opening)
	if bytes.HasPrefix(rawData[pos:], dashes) {
		return nil, nil
	}

	pos += lineEnd(rawData[pos:])

	delimiter := append([]byte("\r\n--"), d.boundary...)

	var sections [][]byte

	for {
		idx := bytes.Index(rawData[pos:], delimiter)
		if idx == -1 {
			return nil, errorchain.NewWithMessage(ErrTruncatedBody, "closing delimiter not found")
		}

		sections = append(sections, rawData[pos:pos+idx])
		pos += idx + len(delimiter)

		if bytes.HasPrefix(rawData[pos:], dashes) {
			return sections, nil
		}

		pos += lineEnd(rawData[pos:])
	}
}

// lineEnd returns the length of the optional transport padding and line break terminating
// a delimiter line.
func lineEnd(data []byte) int {
	padding := 0
	for padding < len(data) && (data[padding] == ' ' || data[padding] == '\t') {
		padding++
	}

	if bytes.HasPrefix(data[padding:], lineBreak) {
		return padding + len(lineBreak)
	}

	return 0
}

func decodeSection(section []byte) (string, payload.Value, error) {
	idx := bytes.Index(section, headerBodySeparator)
	if idx == -1 {
		return "", nil, errorchain.NewWithMessage(ErrMalformedSectionHeader,
			"no separator between section header and body")
	}

	rawHeader := section[:idx]
	body := section[idx+len(headerBodySeparator):]

	if !utf8.Valid(rawHeader) {
		return "", nil, errorchain.NewWithMessage(ErrEncoding, "section header is not valid UTF-8")
	}

	header := parseSectionHeader(string(rawHeader))
	if !header.hasName {
		return "", nil, errorchain.NewWithMessage(ErrMalformedSectionHeader,
			"section header has no name attribute")
	}

	if len(header.name) == 0 {
		return "", nil, errorchain.NewWithMessage(ErrMalformedSectionHeader,
			"section header has an empty name attribute")
	}

	if header.hasFilename {
		return header.name, payload.File{
			Filename:    header.filename,
			ContentType: header.contentType,
			Data:        bytes.Clone(body),
		}, nil
	}

	if !utf8.Valid(body) {
		return "", nil, errorchain.NewWithMessagef(ErrEncoding,
			"value of field %q is not valid UTF-8", header.name)
	}

	return header.name, payload.Text(body), nil
}
