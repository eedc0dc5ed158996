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

package decode

import (
	"errors"
	"io"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/inhies/go-bytesize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/bodyparser/cmd/flags"
	"github.com/dadrus/bodyparser/internal/bodyparser"
	"github.com/dadrus/bodyparser/internal/contenttype"
	"github.com/dadrus/bodyparser/internal/payload"
	"github.com/dadrus/bodyparser/internal/x/errorchain"
)

var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

type encoder func(w io.Writer, res payload.Payload) error

// NewDecodeCommand represents the "decode" command.
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode",
		Short:   "Decodes a request body and prints the resulting payload",
		Example: "bodyparser decode --content-type 'multipart/form-data; boundary=xyz' -f body.bin -o yaml",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runDecode(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	flags.RegisterDecodeFlags(cmd)

	return cmd
}

func runDecode(cmd *cobra.Command) error {
	contentType, _ := cmd.Flags().GetString(flags.ContentType)
	file, _ := cmd.Flags().GetString(flags.File)
	output, _ := cmd.Flags().GetString(flags.Output)
	maxSize, _ := cmd.Flags().GetString(flags.MaxSize)

	enc, err := encoderFor(output)
	if err != nil {
		return err
	}

	limit, err := bytesize.Parse(strings.ReplaceAll(maxSize, " ", ""))
	if err != nil {
		return errorchain.NewWithMessagef(bodyparser.ErrArgument, "invalid max size %q", maxSize).CausedBy(err)
	}

	data, err := readBody(cmd, file, readLimit(limit))
	if err != nil {
		return err
	}

	res, err := contenttype.Decode(contenttype.RawBody{ContentType: contentType, Data: data})
	if err != nil {
		return err
	}

	return enc(cmd.OutOrStdout(), res)
}

// readLimit converts the configured size to a byte count readBody can add one to
// without overflowing.
func readLimit(size bytesize.ByteSize) int64 {
	if uint64(size) >= math.MaxInt64 {
		return math.MaxInt64 - 1
	}

	return int64(size)
}

func readBody(cmd *cobra.Command, file string, limit int64) ([]byte, error) {
	src := cmd.InOrStdin()

	if len(file) != 0 {
		fh, err := os.Open(file)
		if err != nil {
			return nil, errorchain.NewWithMessage(bodyparser.ErrArgument, "failed to open body file").CausedBy(err)
		}

		defer fh.Close()

		src = fh
	}

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, errorchain.NewWithMessage(bodyparser.ErrArgument, "failed to read body").CausedBy(err)
	}

	if int64(len(data)) > limit {
		return nil, errorchain.NewWithMessagef(bodyparser.ErrBodyTooLarge,
			"body exceeds the configured maximum of %s", bytesize.New(float64(limit)))
	}

	return data, nil
}

func encoderFor(format string) (encoder, error) {
	switch strings.ToLower(format) {
	case "json":
		return encodeJSON, nil
	case "yaml", "yml":
		return encodeYAML, nil
	default:
		return nil, errorchain.NewWithMessagef(ErrUnsupportedOutputFormat, "%q", format)
	}
}

func encodeJSON(w io.Writer, res payload.Payload) error {
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errorchain.NewWithMessage(bodyparser.ErrInternal, "failed to render payload").CausedBy(err)
	}

	_, err = w.Write(append(raw, '\n'))

	return err
}

func encodeYAML(w io.Writer, res payload.Payload) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(res); err != nil {
		return errorchain.NewWithMessage(bodyparser.ErrInternal, "failed to render payload").CausedBy(err)
	}

	return enc.Close()
}
