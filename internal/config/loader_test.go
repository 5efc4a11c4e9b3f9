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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const baseTOML = `
[application]
name = "video-summary"
port = 8000
temp_root = "/tmp/ytprod"

[summarizer]
hosted_model = "gemini-2.0-flash"
rate_limit = 1
`

const stagingTOML = `
[application]
port = 9000
`

// writeConfigs lays out a base file and a staging override in a temp dir
// and points the loader at it.
func writeConfigs(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env.toml"), []byte(baseTOML), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging.toml"), []byte(stagingTOML), 0o644))
	t.Setenv(EnvConfigFilePrefix, dir)
}

func TestLoadConfigBaseOnly(t *testing.T) {
	writeConfigs(t)
	t.Setenv(EnvAppEnv, "")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvGeminiAPIKey, "")
	t.Setenv(EnvDatabaseURL, "")

	cfg := NewConfig()
	LoadConfig(cfg)

	assert.Equal(t, "video-summary", cfg.Application.Name)
	assert.Equal(t, 8000, cfg.Application.Port)
	assert.Equal(t, "development", cfg.Application.Environment)
	assert.Equal(t, "gemini-2.0-flash", cfg.Summarizer.HostedModel)
}

func TestLoadConfigEnvironmentOverrideFile(t *testing.T) {
	writeConfigs(t)
	t.Setenv(EnvAppEnv, "staging")
	t.Setenv(EnvPort, "")

	cfg := NewConfig()
	LoadConfig(cfg)

	// The staging file overrides the port but inherits everything else.
	assert.Equal(t, 9000, cfg.Application.Port)
	assert.Equal(t, "video-summary", cfg.Application.Name)
	assert.Equal(t, "staging", cfg.Application.Environment)
}

func TestLoadConfigEnvVarsWinLast(t *testing.T) {
	writeConfigs(t)
	t.Setenv(EnvAppEnv, "staging")
	t.Setenv(EnvPort, "7777")
	t.Setenv(EnvGeminiAPIKey, "test-key")
	t.Setenv(EnvUseLocalModel, "true")
	t.Setenv(EnvLocalModelURL, "http://localhost:11434/v1")
	t.Setenv(EnvDatabaseURL, "postgres://elsewhere/db")

	cfg := NewConfig()
	LoadConfig(cfg)

	assert.Equal(t, 7777, cfg.Application.Port)
	assert.Equal(t, "test-key", cfg.Summarizer.APIKey)
	assert.True(t, cfg.Summarizer.ForceLocal)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Summarizer.LocalEndpoint)
	assert.Equal(t, "postgres://elsewhere/db", cfg.Application.DatabaseURL)
}

func TestLoadConfigMissingFilesKeepsDefaults(t *testing.T) {
	t.Setenv(EnvConfigFilePrefix, t.TempDir())
	t.Setenv(EnvAppEnv, "")
	t.Setenv(EnvPort, "")

	cfg := NewConfig()
	LoadConfig(cfg)

	assert.Equal(t, "video-summary", cfg.Application.Name)
	assert.Equal(t, 8000, cfg.Application.Port)
}

func TestLoadConfigIgnoresBadPort(t *testing.T) {
	writeConfigs(t)
	t.Setenv(EnvAppEnv, "")
	t.Setenv(EnvPort, "not-a-number")

	cfg := NewConfig()
	LoadConfig(cfg)

	assert.Equal(t, 8000, cfg.Application.Port)
}
