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

// Package main contains the setup and initialization logic for the
// application's state. This file creates the centralized state manager
// that holds all shared dependencies: the configuration, the yt-dlp
// client, the workspace manager, the processing workflow, and the
// summarization engine.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ytprod/video-summary/internal/config"
	"github.com/ytprod/video-summary/internal/core/workflow"
	"github.com/ytprod/video-summary/internal/summarize"
	"github.com/ytprod/video-summary/internal/workspace"
	"github.com/ytprod/video-summary/internal/ytdlp"
)

// StateManager holds all the shared dependencies for the application,
// acting as a centralized container so handlers receive their
// collaborators explicitly instead of reaching for globals.
type StateManager struct {
	config     *config.Config
	ytdlp      *ytdlp.Client
	workspaces *workspace.Manager
	workflow   *workflow.ProcessWorkflow
	summarizer *summarize.Summarizer
}

// state is the single instance of StateManager for the server process.
var state = &StateManager{}

// SetupOS sets the environment variables the configuration loader uses to
// find the TOML files when they are not already set by the deployment.
func SetupOS() (err error) {
	if os.Getenv(config.EnvConfigFilePrefix) == "" {
		err = os.Setenv(config.EnvConfigFilePrefix, "configs")
	}
	return err
}

// GetConfig provides a singleton instance of the application
// configuration. The first call loads it from the TOML files and the
// environment; subsequent calls return the cached instance.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup os environment: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// InitState initializes the entire application state: the yt-dlp client,
// the workspace manager, the processing workflow, and the summarization
// engine. A missing summarization backend is not fatal: the server still
// serves metadata and transcript processing, and the summarize endpoint
// reports the condition per request.
func InitState(ctx context.Context) {
	cfg := GetConfig()

	state.ytdlp = ytdlp.NewClient(cfg.YtDlp.Binary, ytdlp.ExecRunner{})
	state.workspaces = workspace.NewManager(cfg.Application.TempRoot)

	backend, err := summarize.SelectBackend(ctx, summarize.BackendConfig{
		APIKey:        cfg.Summarizer.APIKey,
		ForceLocal:    cfg.Summarizer.ForceLocal,
		HostedModel:   cfg.Summarizer.HostedModel,
		LocalEndpoint: cfg.Summarizer.LocalEndpoint,
		LocalModel:    cfg.Summarizer.LocalModel,
		RateLimit:     cfg.Summarizer.RateLimit,
	})
	if err != nil {
		slog.Warn("no summarization backend configured, summarization disabled", "error", err)
	} else {
		opts := make([]summarize.Option, 0, 2)
		if cfg.Summarizer.ChunkTokens > 0 {
			opts = append(opts, summarize.WithChunkTokens(cfg.Summarizer.ChunkTokens))
		}
		if cfg.Summarizer.TopKeywords > 0 {
			opts = append(opts, summarize.WithTopK(cfg.Summarizer.TopKeywords))
		}
		state.summarizer = summarize.New(backend, opts...)
		slog.Info("summarization backend ready", "backend", backend.Name())
	}

	state.workflow = workflow.NewProcessWorkflow(state.ytdlp, state.workspaces, state.summarizer)
}
