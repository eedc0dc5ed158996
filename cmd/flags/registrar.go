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

package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to bodyparser's configuration file.\n"+
			"If not provided, the built-in defaults are used.")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "BODYPARSERCFG_",
		"Prefix for the environment variables to consider for\nloading configuration from")
}

func RegisterDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().String(ContentType, "",
		"Value of the Content-Type header the body has been sent with")
	cmd.Flags().StringP(File, "f", "",
		"Path to the file holding the body. If not provided, the body is read from stdin")
	cmd.Flags().StringP(Output, "o", "json",
		"Output format. One of json or yaml")
	cmd.Flags().String(MaxSize, "10MB",
		"Maximum accepted body size, e.g. 512KB or 10MB")

	_ = cmd.MarkFlagRequired(ContentType)
}
