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

package commands

import (
	"log/slog"

	"github.com/ytprod/video-summary/internal/core/cor"
	"github.com/ytprod/video-summary/internal/core/model"
	"github.com/ytprod/video-summary/internal/subtitle"
)

// SubtitleToText normalizes a WebVTT artifact into plain prose. Audio
// artifacts pass through untouched: there is no caption text to clean, and
// transcription of audio happens outside this pipeline.
type SubtitleToText struct {
	cor.BaseCommand
}

func NewSubtitleToText(name string) *SubtitleToText {
	cmd := &SubtitleToText{BaseCommand: *cor.NewBaseCommand(name)}
	cmd.InputParamName = ParamArtifact
	cmd.OutputParamName = ParamTranscriptText
	return cmd
}

// Execute reads the subtitle file and strips WebVTT structure, leaving a
// single line of prose for the summarizer.
func (c *SubtitleToText) Execute(context cor.Context) {
	artifact := context.Get(c.GetInputParam()).(*model.TranscriptArtifact)

	if !artifact.IsSubtitle() {
		slog.Info("transcript artifact is audio, skipping subtitle normalization",
			slog.String("path", artifact.Path))
		c.GetSuccessCounter().Add(context.GetContext(), 1)
		return
	}

	text, err := subtitle.ToText(artifact.Path)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), text)
}
