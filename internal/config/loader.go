// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadConfig populates the given config struct from the hierarchical TOML
// files. The base `.env.toml` is decoded first, then the runtime overlay
// `.env.<runtime>.toml` is decoded on top of it, so runtime values win.
//
// The file directory comes from the CAMERA_PROMPT_CONFIG_PREFIX environment
// variable and the runtime name from CAMERA_PROMPT_RUNTIME. Both must be
// set; missing variables or files are fatal because the service cannot run
// half-configured.
func LoadConfig(baseConfig interface{}) {
	prefix := os.Getenv(EnvConfigFilePrefix)
	runtime := os.Getenv(EnvConfigRuntime)

	if len(prefix) == 0 || len(runtime) == 0 {
		log.Fatalf("environment variables %s and %s must be set", EnvConfigFilePrefix, EnvConfigRuntime)
	}

	baseFile := fmt.Sprintf("%s%s%s%s%s",
		prefix, string(os.PathSeparator), ConfigFileBaseName, ConfigFileSeparator, ConfigFileExtension)
	runtimeFile := fmt.Sprintf("%s%s%s%s%s%s%s",
		prefix, string(os.PathSeparator), ConfigFileBaseName, ConfigFileSeparator,
		strings.ToLower(runtime), ConfigFileSeparator, ConfigFileExtension)

	for _, fileName := range []string{baseFile, runtimeFile} {
		if _, err := os.Stat(fileName); err != nil {
			log.Fatalf("config file not found: %s", fileName)
		}
		if _, err := toml.DecodeFile(fileName, baseConfig); err != nil {
			log.Fatalf("failed to decode config file %s: %v", fileName, err)
		}
		slog.Info("loaded config file", "file", fileName)
	}
}
