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
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/bodyparser/internal/accesscontext"
	"github.com/dadrus/bodyparser/internal/bodyparser"
	"github.com/dadrus/bodyparser/internal/contenttype"
	"github.com/dadrus/bodyparser/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

const (
	EndpointDecode = "/decode"

	headerPayloadKind = "X-Payload-Kind"
)

type handler struct {
	eh    errorhandler.ErrorHandler
	limit int64
}

func newHandler(eh errorhandler.ErrorHandler, limit int64) http.Handler {
	return &handler{eh: eh, limit: limit}
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(rw, req.Body, h.limit))
	if err != nil {
		var mbe *http.MaxBytesError

		if errors.As(err, &mbe) {
			err = errorchain.NewWithMessagef(bodyparser.ErrBodyTooLarge,
				"request body exceeds %d bytes", mbe.Limit)
		} else {
			err = errorchain.NewWithMessage(bodyparser.ErrArgument,
				"failed reading request body").CausedBy(err)
		}

		h.eh.HandleError(rw, req, err)

		return
	}

	result, err := contenttype.Decode(contenttype.RawBody{
		ContentType: req.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	rendered, err := json.Marshal(result)
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.NewWithMessage(bodyparser.ErrInternal,
			"failed rendering decoded payload").CausedBy(err))

		return
	}

	accesscontext.SetPayloadKind(req.Context(), result.Kind())

	zerolog.Ctx(req.Context()).Debug().
		Str("_payload_kind", string(result.Kind())).
		Int("_body_size", len(data)).
		Msg("Request body decoded")

	rw.Header().Set("Content-Type", contenttype.ApplicationJSON)
	rw.Header().Set(headerPayloadKind, string(result.Kind()))
	rw.WriteHeader(http.StatusOK)
	rw.Write(rendered) //nolint:errcheck
}
