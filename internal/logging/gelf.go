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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const gelfVersion = "1.1"

// syslog severities (RFC 5424) for the GELF level field. Levels without an entry,
// like zerolog.Disabled, end up as 0 (emergency).
// nolint: gochecknoglobals
var gelfSeverities = map[zerolog.Level]int8{
	zerolog.TraceLevel: 7,
	zerolog.DebugLevel: 7,
	zerolog.InfoLevel:  6,
	zerolog.WarnLevel:  4,
	zerolog.ErrorLevel: 3,
	zerolog.FatalLevel: 2,
	zerolog.PanicLevel: 1,
}

type gelfLevelHook struct{}

func (gelfLevelHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		e.Int8("level", gelfSeverities[level])
	}
}

// newGELFLogger reconfigures the global zerolog field names, since GELF fixes them.
func newGELFLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "_level_name"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string { return strings.ToUpper(l.String()) }
	zerolog.MessageFieldName = "short_message"
	zerolog.ErrorFieldName = "_error" // nolint: reassign
	zerolog.CallerFieldName = "_caller"

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return zerolog.New(out).Level(level).With().
		Str("version", gelfVersion).
		Str("host", host).
		Timestamp().
		Logger().
		Hook(gelfLevelHook{})
}
