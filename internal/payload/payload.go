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

// Package payload contains the values produced by the content type decoders.
package payload

import (
	"github.com/goccy/go-json"
)

type Kind string

const (
	KindForm     Kind = "form"
	KindDocument Kind = "document"
	KindText     Kind = "text"
)

// Payload is the result of decoding a request body. Depending on the declared
// content type it is a Form, a Document or a PlainText.
type Payload interface {
	Kind() Kind
}

// Form maps field names to their values. Field names are unique.
type Form map[string]Value

func (Form) Kind() Kind { return KindForm }

// Set stores the value under the given name. An already present value is replaced.
func (f Form) Set(name string, val Value) { f[name] = val }

func (f Form) Text(name string) (string, bool) {
	val, ok := f[name].(Text)

	return string(val), ok
}

func (f Form) File(name string) (File, bool) {
	val, ok := f[name].(File)

	return val, ok
}

// Document wraps a whole parsed JSON document.
type Document struct {
	Value any
}

func (Document) Kind() Kind { return KindDocument }

func (d Document) MarshalJSON() ([]byte, error) { return json.Marshal(d.Value) }

func (d Document) MarshalYAML() (any, error) { return d.Value, nil }

// PlainText is an undecoded text/plain body.
type PlainText string

func (PlainText) Kind() Kind { return KindText }
