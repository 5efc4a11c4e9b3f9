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

// Package commands provides the concrete pipeline steps of the video
// processing workflow. This file defines the command that acquires a
// transcript artifact for the job.
//
// Logic Flow:
//  1. Ask yt-dlp for auto-generated English subtitles, written into the
//     job's workspace directory.
//  2. If a subtitle file appeared, the artifact is tagged "subtitle" and
//     the normalizer step will turn it into prose.
//  3. If not, download the best available audio track instead and tag the
//     artifact "audio" as the ASR fallback. Transcribing that audio is an
//     external collaborator's job, not this service's.
//  4. If neither can be obtained, record a processing error.
package commands

import (
	"path/filepath"

	"github.com/ytprod/video-summary/internal/core/cor"
	"github.com/ytprod/video-summary/internal/core/model"
	"github.com/ytprod/video-summary/internal/ytdlp"
)

// TranscriptFetch wraps the subtitle-then-audio acquisition as a pipeline step.
type TranscriptFetch struct {
	cor.BaseCommand
	client *ytdlp.Client
}

// NewTranscriptFetch builds the command around a shared yt-dlp client.
func NewTranscriptFetch(name string, client *ytdlp.Client) *TranscriptFetch {
	cmd := &TranscriptFetch{BaseCommand: *cor.NewBaseCommand(name), client: client}
	cmd.InputParamName = ParamURL
	cmd.OutputParamName = ParamArtifact
	return cmd
}

// Execute downloads subtitles or, failing that, audio, and stores the
// tagged artifact.
func (c *TranscriptFetch) Execute(context cor.Context) {
	url := context.Get(c.GetInputParam()).(string)
	workDir := context.Get(ParamWorkDir).(string)
	jobID := context.Get(ParamJobID).(string)

	vttPath, err := c.client.DownloadSubtitles(context.GetContext(), url, workDir)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	if vttPath != "" {
		// yt-dlp can emit several subtitle variants (en, en-orig, ...).
		// Only the chosen artifact survives until job cleanup; the rest are
		// transient and removed when the execution closes.
		if extras, globErr := filepath.Glob(filepath.Join(workDir, "*.vtt")); globErr == nil {
			for _, extra := range extras {
				if extra != vttPath {
					context.AddTempFile(extra)
				}
			}
		}
		c.GetSuccessCounter().Add(context.GetContext(), 1)
		context.Add(c.GetOutputParam(), &model.TranscriptArtifact{Path: vttPath, Kind: model.KindSubtitle})
		return
	}

	audioPath, err := c.client.DownloadAudio(context.GetContext(), url, workDir, jobID)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), &model.TranscriptArtifact{Path: audioPath, Kind: model.KindAudio})
}
