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

// This file implements the hierarchical configuration loader. A base TOML
// file is read first, then an environment-specific file overwrites its
// values, and finally individual environment variables override both. The
// layering means a deployment only has to set the values that differ from
// the defaults.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Constants for configuration loading and the environment variables that
// override file-based settings.
const (
	ConfigFileBaseName  = ".env"          // The base name for configuration files (e.g., ".env.toml").
	ConfigFileExtension = ".toml"         // The file extension for configuration files.
	ConfigSeparator     = "."             // The separator used in config file names (e.g., ".env.test.toml").
	EnvConfigFilePrefix = "CONFIG_PREFIX" // The environment variable for specifying the config directory.

	EnvAppEnv        = "APP_ENV"         // Selects the environment-specific config file and labels the runtime.
	EnvPort          = "PORT"            // Overrides the HTTP listen port.
	EnvGeminiAPIKey  = "GEMINI_API_KEY"  // Enables the hosted summarization backend.
	EnvUseLocalModel = "USE_LOCAL_MODEL" // Forces the local summarization backend.
	EnvLocalModelURL = "LOCAL_MODEL_URL" // Overrides the local backend's base URL.
	EnvDatabaseURL   = "DATABASE_URL"    // Reported as configured/absent; the value is never used.
)

// fileExists checks if a file exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig populates cfg from the base configuration file, then the
// environment-specific file, then individual environment variables. Missing
// files are skipped silently; a file that exists but fails to parse is
// fatal, since running with half a configuration is worse than not running.
func LoadConfig(cfg *Config) {
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	runtimeEnvironment := os.Getenv(EnvAppEnv)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "development"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension

	if fileExists(baseConfigFileName) {
		if _, err := toml.DecodeFile(baseConfigFileName, cfg); err != nil {
			log.Fatalf("failed to decode base configuration file %s with error: %s", baseConfigFileName, err)
		}
	}

	if fileExists(envConfigFileName) {
		if _, err := toml.DecodeFile(envConfigFileName, cfg); err != nil {
			log.Fatalf("failed to decode environment configuration file %s with error: %s", envConfigFileName, err)
		}
	}

	applyEnvOverrides(cfg, runtimeEnvironment)
}

// applyEnvOverrides layers individual environment variables on top of the
// file-based configuration. These always win.
func applyEnvOverrides(cfg *Config, runtimeEnvironment string) {
	cfg.Application.Environment = runtimeEnvironment

	if port := os.Getenv(EnvPort); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Application.Port = p
		} else {
			log.Printf("ignoring non-numeric %s value %q", EnvPort, port)
		}
	}

	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		cfg.Summarizer.APIKey = key
	}

	if useLocal := os.Getenv(EnvUseLocalModel); useLocal != "" {
		if b, err := strconv.ParseBool(useLocal); err == nil {
			cfg.Summarizer.ForceLocal = b
		}
	}

	if url := os.Getenv(EnvLocalModelURL); url != "" {
		cfg.Summarizer.LocalEndpoint = url
	}

	cfg.Application.DatabaseURL = os.Getenv(EnvDatabaseURL)
}
