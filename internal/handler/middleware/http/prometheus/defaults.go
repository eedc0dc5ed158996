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

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

func defaultOptions() opts {
	return opts{
		registerer:      prometheus.DefaultRegisterer,
		namespace:       "http",
		labels:          make(prometheus.Labels),
		filterOperation: func(*http.Request) bool { return false },
	}
}
