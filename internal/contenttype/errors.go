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
	"errors"
)

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrMissingBoundaryToken   = errors.New("missing boundary token")
	ErrTruncatedBody          = errors.New("truncated body")
	ErrMalformedSectionHeader = errors.New("malformed section header")
	ErrEncoding               = errors.New("encoding error")
)

// IsDecodingError reports whether err is caused by a malformed or unsupported request
// body, which is something the client has to correct.
func IsDecodingError(err error) bool {
	return errors.Is(err, ErrUnsupportedContentType) ||
		errors.Is(err, ErrMissingBoundaryToken) ||
		errors.Is(err, ErrTruncatedBody) ||
		errors.Is(err, ErrMalformedSectionHeader) ||
		errors.Is(err, ErrEncoding)
}
