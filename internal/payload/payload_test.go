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
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormAccessors(t *testing.T) {
	t.Parallel()

	// GIVEN
	form := Form{}
	form.Set("name", Text("Ann"))
	form.Set("name", Text("Bob"))
	form.Set("doc", File{Filename: "a.txt", Data: []byte("hello")})

	// WHEN
	name, nameIsText := form.Text("name")
	_, nameIsFile := form.File("name")
	doc, docIsFile := form.File("doc")
	_, docIsText := form.Text("doc")
	_, missingIsText := form.Text("missing")

	// THEN
	assert.Len(t, form, 2)
	assert.True(t, nameIsText)
	assert.Equal(t, "Bob", name)
	assert.False(t, nameIsFile)
	assert.True(t, docIsFile)
	assert.Equal(t, 5, doc.Size())
	assert.False(t, docIsText)
	assert.False(t, missingIsText)
}

func TestPayloadKind(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		payload  Payload
		expected Kind
	}{
		{payload: Form{}, expected: KindForm},
		{payload: Document{}, expected: KindDocument},
		{payload: PlainText("foo"), expected: KindText},
	} {
		t.Run(string(tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.payload.Kind())
		})
	}
}

func TestPayloadRendering(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		payload Payload
		expJSON string
		expYAML string
	}{
		{
			uc: "form with text and file",
			payload: Form{
				"name": Text("Ann"),
				"doc":  File{Filename: "a.bin", ContentType: "application/octet-stream", Data: []byte{0x00, 0xff}},
			},
			expJSON: `{"name":"Ann","doc":{"filename":"a.bin","content_type":"application/octet-stream","size":2,"data":"AP8="}}`,
			expYAML: "doc:\n    filename: a.bin\n    content_type: application/octet-stream\n    size: 2\n    data: AP8=\nname: Ann\n",
		},
		{
			uc:      "file without content type",
			payload: Form{"f": File{Filename: "x"}},
			expJSON: `{"f":{"filename":"x","size":0,"data":""}}`,
			expYAML: "f:\n    filename: x\n    size: 0\n    data: \"\"\n",
		},
		{
			uc:      "document",
			payload: Document{Value: map[string]any{"a": true}},
			expJSON: `{"a":true}`,
			expYAML: "a: true\n",
		},
		{
			uc:      "plain text",
			payload: PlainText("hello"),
			expJSON: `"hello"`,
			expYAML: "hello\n",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			rawJSON, errJSON := json.Marshal(tc.payload)
			rawYAML, errYAML := yaml.Marshal(tc.payload)

			// THEN
			require.NoError(t, errJSON)
			require.NoError(t, errYAML)
			assert.JSONEq(t, tc.expJSON, string(rawJSON))
			assert.Equal(t, tc.expYAML, string(rawYAML))
		})
	}
}
