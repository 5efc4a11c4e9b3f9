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
	"github.com/ytprod/video-summary/internal/summarize"
)

// TranscriptSummarize runs the summarization pipeline over the normalized
// transcript when the caller opted in. The step is a no-op unless the
// summarize flag is set, and it skips audio-only runs where no transcript
// text exists to summarize.
type TranscriptSummarize struct {
	cor.BaseCommand
	summarizer *summarize.Summarizer
}

func NewTranscriptSummarize(name string, summarizer *summarize.Summarizer) *TranscriptSummarize {
	cmd := &TranscriptSummarize{
		BaseCommand: *cor.NewBaseCommand(name),
		summarizer:  summarizer,
	}
	cmd.InputParamName = ParamTranscriptText
	cmd.OutputParamName = ParamSummary
	return cmd
}

// Execute summarizes the transcript text if it was requested and is
// available. A request with no configured backend is an error: the caller
// explicitly asked for a summary the service cannot produce.
func (c *TranscriptSummarize) Execute(context cor.Context) {
	if requested, ok := context.Get(ParamSummarize).(bool); !ok || !requested {
		c.GetSuccessCounter().Add(context.GetContext(), 1)
		return
	}

	if c.summarizer == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), model.Errorf(model.ErrNoBackendAvailable,
			"summary requested but no summarization backend is configured"))
		return
	}

	text, ok := context.Get(c.GetInputParam()).(string)
	if !ok {
		slog.Info("no transcript text available, skipping summarization")
		c.GetSuccessCounter().Add(context.GetContext(), 1)
		return
	}

	result, err := c.summarizer.ProcessText(context.GetContext(), text)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), result)
}
