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

// Package config defines the data structures for application configuration,
// loaded from TOML files and overridden by environment variables. It
// provides a structured way to manage settings for the HTTP server, the
// yt-dlp wrapper, and the summarization backends.
package config

// Application holds general application settings.
type Application struct {
	Name        string `toml:"name"`        // The service name, used in telemetry and the info endpoint.
	Environment string `toml:"environment"` // The runtime environment label (e.g., "development", "production").
	Port        int    `toml:"port"`        // The HTTP listen port.
	TempRoot    string `toml:"temp_root"`   // The root directory for job workspaces.
	DatabaseURL string `toml:"-"`           // Set only from the environment; its presence is reported, never its value.
}

// YtDlp holds settings for the yt-dlp wrapper.
type YtDlp struct {
	Binary string `toml:"binary"` // The yt-dlp executable; resolved via PATH when not absolute.
}

// Summarizer holds settings for the summarization engine and its backends.
type Summarizer struct {
	HostedModel   string `toml:"hosted_model"`   // The Gemini model to use for the hosted backend.
	LocalModel    string `toml:"local_model"`    // The model name to request from the local endpoint.
	LocalEndpoint string `toml:"local_endpoint"` // The base URL of the OpenAI-compatible local server.
	ForceLocal    bool   `toml:"force_local"`    // When true, skip the hosted backend even if a key is set.
	RateLimit     int    `toml:"rate_limit"`     // Hosted backend requests per second; zero means unlimited.
	ChunkTokens   int    `toml:"chunk_tokens"`   // Approximate token budget per transcript chunk.
	TopKeywords   int    `toml:"top_keywords"`   // How many keywords to extract per document.
	APIKey        string `toml:"-"`              // Set only from the environment, never from a file.
}

// Config is the top-level struct that aggregates all other configuration
// structs.
type Config struct {
	Application Application `toml:"application"`
	YtDlp       YtDlp       `toml:"ytdlp"`
	Summarizer  Summarizer  `toml:"summarizer"`
}

// NewConfig creates a new Config instance with the defaults that apply when
// no configuration file is present at all.
func NewConfig() *Config {
	out := &Config{}
	out.Application.Name = "video-summary"
	out.Application.Environment = "development"
	out.Application.Port = 8000
	return out
}
