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

// Package summarize produces hierarchical text summaries and keyword sets.
// This file defines the Backend abstraction, the single execution path for
// model inference, and the capability-based selection that picks exactly
// one backend at construction time.
//
// Selection priority: hosted API (credential configured and local-only mode
// not forced) → local model (endpoint configured) → no backend, which is a
// construction error. This is a capability decision made once, not a
// fallback-on-error policy: a backend that fails during use surfaces its
// error, it is never silently swapped for the other one.
package summarize

import (
	"context"

	"github.com/ytprod/video-summary/internal/core/model"
)

// LengthWindow bounds a requested summary, expressed in summary units
// (model tokens). The maximum is enforced via the backend's output-token
// cap; the minimum travels in the prompt since neither backend API has a
// hard lower-bound parameter.
type LengthWindow struct {
	MinTokens int
	MaxTokens int
}

// The three windows of the multi-pass pipeline.
var (
	// ChunkWindow bounds each per-chunk summary.
	ChunkWindow = LengthWindow{MinTokens: 30, MaxTokens: 150}
	// LongWindow bounds the wide reduction over all chunk summaries.
	LongWindow = LengthWindow{MinTokens: 100, MaxTokens: 300}
	// ShortWindow bounds the final narrow reduction of the long summary.
	ShortWindow = LengthWindow{MinTokens: 20, MaxTokens: 60}
)

// Backend is one summarization execution path. Implementations block until
// the underlying service returns or its own timeout fires.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Summarize returns a summary of text bounded by the window.
	Summarize(ctx context.Context, text string, window LengthWindow) (string, error)
}

// BackendConfig carries everything SelectBackend needs to decide which
// execution path to construct. It is populated by the composition root from
// configuration and injected, never probed from the environment here.
type BackendConfig struct {
	APIKey        string // Hosted-service credential; empty disables the hosted path.
	ForceLocal    bool   // When true the hosted path is skipped even with a credential.
	HostedModel   string // Hosted model name, e.g. "gemini-2.0-flash".
	LocalEndpoint string // Base URL of an OpenAI-compatible local server; empty disables the local path.
	LocalModel    string // Model name the local server should load.
	RateLimit     int    // Hosted requests per second; <=0 means unlimited.
}

// SelectBackend resolves the configuration to exactly one Backend, or fails
// with ErrNoBackendAvailable when neither path is configured.
func SelectBackend(ctx context.Context, cfg BackendConfig) (Backend, error) {
	if cfg.APIKey != "" && !cfg.ForceLocal {
		return NewGeminiBackend(ctx, cfg.APIKey, cfg.HostedModel, cfg.RateLimit)
	}
	if cfg.LocalEndpoint != "" {
		return NewLocalBackend(cfg.LocalEndpoint, cfg.LocalModel), nil
	}
	return nil, model.Errorf(model.ErrNoBackendAvailable,
		"no summarization backend available: configure an API key or a local model endpoint")
}
