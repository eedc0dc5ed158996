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

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGELFSeverities(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		level    zerolog.Level
		severity int8
	}{
		{level: zerolog.TraceLevel, severity: 7},
		{level: zerolog.DebugLevel, severity: 7},
		{level: zerolog.InfoLevel, severity: 6},
		{level: zerolog.WarnLevel, severity: 4},
		{level: zerolog.ErrorLevel, severity: 3},
		{level: zerolog.FatalLevel, severity: 2},
		{level: zerolog.PanicLevel, severity: 1},
		{level: zerolog.Disabled, severity: 0},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			assert.Equal(t, tc.severity, gelfSeverities[tc.level])
		})
	}
}
