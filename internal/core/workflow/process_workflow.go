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

// Package workflow defines the high-level business logic orchestrations,
// combining pipeline commands into coherent chains. This file implements
// the full video processing workflow: metadata, transcript acquisition,
// subtitle normalization, optional summarization, and result assembly.
package workflow

import (
	"context"
	"errors"

	"github.com/ytprod/video-summary/internal/core/commands"
	"github.com/ytprod/video-summary/internal/core/cor"
	"github.com/ytprod/video-summary/internal/core/model"
	"github.com/ytprod/video-summary/internal/summarize"
	"github.com/ytprod/video-summary/internal/workspace"
	"github.com/ytprod/video-summary/internal/ytdlp"
)

// ProcessWorkflow orchestrates a full video processing run. It prepares a
// job-scoped workspace, then executes a chain of commands that fetch
// metadata, acquire a transcript artifact (subtitles or the audio
// fallback), normalize subtitles to prose, and assemble the final result.
type ProcessWorkflow struct {
	cor.BaseCommand
	client     *ytdlp.Client
	workspaces *workspace.Manager
	summarizer *summarize.Summarizer
	chain      cor.Chain
}

// Execute runs the processing chain. The caller is expected to have seeded
// the context with the video URL, job ID, and workspace directory.
func (w *ProcessWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// initializeChain constructs the command sequence that defines the
// processing pipeline.
func (w *ProcessWorkflow) initializeChain() {
	out := cor.NewBaseChain(w.GetName())

	// Step 1: Resolve the URL and fetch the video's metadata.
	out.AddCommand(commands.NewMetadataFetch("metadata-fetch", w.client))

	// Step 2: Download English subtitles, falling back to the audio track.
	out.AddCommand(commands.NewTranscriptFetch("transcript-fetch", w.client))

	// Step 3: Strip WebVTT structure from subtitle artifacts.
	out.AddCommand(commands.NewSubtitleToText("subtitle-to-text"))

	// Step 4: Summarize the transcript when the caller opted in.
	out.AddCommand(commands.NewTranscriptSummarize("transcript-summarize", w.summarizer))

	// Step 5: Gather everything into the process result.
	out.AddCommand(commands.NewResultAssembly("result-assembly"))

	w.chain = out
}

// Run executes the workflow for a single video under the given job ID and
// returns the assembled result. When withSummary is set the transcript is
// additionally run through the summarization pipeline. The job's workspace
// directory is created here; it is left in place afterwards so callers can
// retrieve artifacts, and must be cleaned up through the workspace manager
// when no longer needed.
func (w *ProcessWorkflow) Run(ctx context.Context, url string, jobID string, withSummary bool) (*model.ProcessResult, error) {
	workDir, err := w.workspaces.Ensure(jobID)
	if err != nil {
		return nil, err
	}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(commands.ParamURL, url)
	chainCtx.Add(commands.ParamJobID, jobID)
	chainCtx.Add(commands.ParamWorkDir, workDir)
	chainCtx.Add(commands.ParamSummarize, withSummary)
	defer chainCtx.Close()

	w.Execute(chainCtx)

	if chainCtx.HasErrors() {
		for _, cmdErr := range chainCtx.GetErrors() {
			return nil, cmdErr
		}
	}

	result, ok := chainCtx.Get(commands.ParamResult).(*model.ProcessResult)
	if !ok {
		return nil, errors.New("processing chain completed without producing a result")
	}
	return result, nil
}

// NewProcessWorkflow is the constructor for the ProcessWorkflow. It wires
// the shared yt-dlp client, workspace manager, and summarizer, then builds
// the command chain. A nil summarizer is allowed; summary-requesting runs
// then fail with the no-backend error.
func NewProcessWorkflow(client *ytdlp.Client, workspaces *workspace.Manager, summarizer *summarize.Summarizer) *ProcessWorkflow {
	out := &ProcessWorkflow{
		BaseCommand: *cor.NewBaseCommand("video-process-workflow"),
		client:      client,
		workspaces:  workspaces,
		summarizer:  summarizer,
	}
	out.initializeChain()
	return out
}
