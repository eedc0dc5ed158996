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

package payload

import (
	"encoding/base64"

	"github.com/goccy/go-json"
)

// Value is a single decoded form field. It is either a Text or a File.
type Value interface {
	value()
}

// Text is a form field carrying a UTF-8 string.
type Text string

func (Text) value() {}

// File is a form field carrying an uploaded file. Data holds the raw, undecoded bytes.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (File) value() {}

func (f File) Size() int { return len(f.Data) }

// fileView is the rendered form of a File. Data is base64 encoded.
type fileView struct {
	Filename    string `json:"filename"               yaml:"filename"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Size        int    `json:"size"                   yaml:"size"`
	Data        string `json:"data"                   yaml:"data"`
}

func (f File) view() fileView {
	return fileView{
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size(),
		Data:        base64.StdEncoding.EncodeToString(f.Data),
	}
}

func (f File) MarshalJSON() ([]byte, error) { return json.Marshal(f.view()) }

func (f File) MarshalYAML() (any, error) { return f.view(), nil }
