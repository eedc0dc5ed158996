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
	"bytes"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"
)

func TestEventLoggerLogEvent(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		evt    fxevent.Event
		expMsg string
	}{
		"OnStartExecuting": {
			evt:    &fxevent.OnStartExecuting{FunctionName: "start", CallerName: "Caller"},
			expMsg: `{"level":"trace", "_functionName":"start", "_caller":"Caller", "message":"OnStart hook executing"}`,
		},
		"OnStartExecuted with error": {
			evt: &fxevent.OnStartExecuted{
				FunctionName: "start",
				CallerName:   "Caller",
				Err:          errors.New("test error"),
			},
			expMsg: `{"level":"error", "error":"test error", "_functionName":"start", "_caller":"Caller", "message":"OnStart hook failed"}`,
		},
		"OnStartExecuted without error": {
			evt: &fxevent.OnStartExecuted{FunctionName: "start", CallerName: "Caller", Runtime: time.Second},
			expMsg: `{"level":"trace", "_functionName":"start", "_caller":"Caller", "_runtime":"1s", ` +
				`"message":"OnStart hook executed"}`,
		},
		"OnStopExecuted with error": {
			evt: &fxevent.OnStopExecuted{
				FunctionName: "stop",
				CallerName:   "Caller",
				Err:          errors.New("test error"),
			},
			expMsg: `{"level":"error", "error":"test error", "_functionName":"stop", "_caller":"Caller", "message":"OnStop hook failed"}`,
		},
		"Provided": {
			evt:    &fxevent.Provided{ConstructorName: "NewFoo", OutputTypeNames: []string{"Foo", "Bar"}},
			expMsg: `{"level":"trace", "_constructor":"NewFoo", "_types":"Foo,Bar", "message":"Provided"}`,
		},
		"Stopping": {
			evt:    &fxevent.Stopping{Signal: syscall.SIGTERM},
			expMsg: `{"level":"trace", "_signal":"TERMINATED", "message":"Received signal"}`,
		},
		"Started": {
			evt:    &fxevent.Started{},
			expMsg: `{"level":"trace", "message":"Started"}`,
		},
		"RollingBack": {
			evt:    &fxevent.RollingBack{StartErr: errors.New("test error")},
			expMsg: `{"level":"error", "error":"test error", "message":"Start failed, rolling back"}`,
		},
		"LoggerInitialized with error": {
			evt:    &fxevent.LoggerInitialized{Err: errors.New("test error"), ConstructorName: "NewLogger"},
			expMsg: `{"level":"error", "error":"test error", "message":"Custom logger initialization failed"}`,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			buf := &bytes.Buffer{}
			evtLogger := &eventLogger{l: zerolog.New(buf).Level(zerolog.TraceLevel)}

			// WHEN
			evtLogger.LogEvent(tc.evt)

			// THEN
			assert.JSONEq(t, tc.expMsg, buf.String())
		})
	}
}
