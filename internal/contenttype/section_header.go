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
)

const (
	headerContentDisposition = "content-disposition"
	headerContentType        = "content-type"
	parameterName            = "name"
	parameterFilename        = "filename"
)

type sectionHeader struct {
	name        string
	hasName     bool
	filename    string
	hasFilename bool
	contentType string
}

// parseSectionHeader extracts the field name, the optional filename and the content type
// from the header block of a multipart section. Unknown header lines are ignored.
func parseSectionHeader(block string) sectionHeader {
	var (
		header          sectionHeader
		dispositionSeen bool
	)

	for _, line := range strings.Split(block, "\r\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case headerContentDisposition:
			if dispositionSeen {
				continue
			}

			dispositionSeen = true
			params := headerParameters(value)
			header.name, header.hasName = params[parameterName]
			header.filename, header.hasFilename = params[parameterFilename]
		case headerContentType:
			header.contentType = strings.TrimSpace(value)
		}
	}

	return header
}

// headerParameters parses the parameters of a header value like
// `form-data; name="field"; filename="a.txt"`. Keys are lower cased, values may be
// quoted or plain and keep their case. For repeated keys the first one is kept.
func headerParameters(value string) map[string]string {
	params := make(map[string]string)

	_, rest, found := strings.Cut(value, ";")
	if !found {
		return params
	}

	for {
		rest = strings.TrimLeft(rest, " \t")
		if len(rest) == 0 {
			return params
		}

		if rest[0] == ';' {
			rest = rest[1:]

			continue
		}

		end := strings.IndexAny(rest, "=;")
		if end == -1 {
			return params
		}

		if rest[end] == ';' {
			// parameter without a value
			rest = rest[end:]

			continue
		}

		key := strings.ToLower(strings.TrimSpace(rest[:end]))

		var val string

		val, rest = parameterValue(rest[end+1:])

		if _, present := params[key]; !present {
			params[key] = val
		}
	}
}

func parameterValue(value string) (string, string) {
	value = strings.TrimLeft(value, " \t")

	if !strings.HasPrefix(value, `"`) {
		end := strings.IndexByte(value, ';')
		if end == -1 {
			return strings.TrimSpace(value), ""
		}

		return strings.TrimSpace(value[:end]), value[end:]
	}

	var sb strings.Builder

	for idx := 1; idx < len(value); idx++ {
		switch chr := value[idx]; chr {
		case '\\':
			if idx+1 < len(value) && (value[idx+1] == '"' || value[idx+1] == '\\') {
				idx++
				sb.WriteByte(value[idx])
			} else {
				sb.WriteByte(chr)
			}
		case '"':
			return sb.String(), value[idx+1:]
		default:
			sb.WriteByte(chr)
		}
	}

	// unterminated quoted string, take everything
	return sb.String(), ""
}
