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
	"github.com/ytprod/video-summary/internal/core/cor"
	"github.com/ytprod/video-summary/internal/core/model"
)

// ResultAssembly is the terminal pipeline step. It gathers the outputs of
// the earlier commands into a single ProcessResult for the API layer.
type ResultAssembly struct {
	cor.BaseCommand
}

func NewResultAssembly(name string) *ResultAssembly {
	cmd := &ResultAssembly{BaseCommand: *cor.NewBaseCommand(name)}
	cmd.InputParamName = ParamMetadata
	cmd.OutputParamName = ParamResult
	return cmd
}

// Execute assembles the process result. Transcript text is optional: an
// audio fallback run has an artifact path but no prose.
func (c *ResultAssembly) Execute(context cor.Context) {
	metadata := context.Get(c.GetInputParam()).(*model.VideoMetadata)
	artifact := context.Get(ParamArtifact).(*model.TranscriptArtifact)
	jobID := context.Get(ParamJobID).(string)

	result := &model.ProcessResult{
		VideoMetadata:  metadata,
		TranscriptPath: artifact.Path,
		JobID:          jobID,
	}

	if text, ok := context.Get(ParamTranscriptText).(string); ok {
		result.TranscriptText = &text
	}
	if summary, ok := context.Get(ParamSummary).(*model.SummarizationResult); ok {
		result.Summary = summary
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), result)
}
