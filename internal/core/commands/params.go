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
// processing workflow, each implemented as a cor.Command. This file defines
// the context parameter keys the commands use to exchange data, avoiding
// magic strings at every call site.
package commands

const (
	// ParamURL is the submitted video URL, seeded by the orchestrator.
	ParamURL = "__video_url__"
	// ParamJobID is the opaque job identifier scoping the workspace.
	ParamJobID = "__job_id__"
	// ParamWorkDir is the job's workspace directory.
	ParamWorkDir = "__work_dir__"
	// ParamMetadata holds the *model.VideoMetadata once fetched.
	ParamMetadata = "__video_metadata__"
	// ParamArtifact holds the *model.TranscriptArtifact once acquired.
	ParamArtifact = "__transcript_artifact__"
	// ParamTranscriptText holds the normalized transcript prose. Absent
	// when only an audio artifact was obtained.
	ParamTranscriptText = "__transcript_text__"
	// ParamSummarize is the caller's opt-in flag for summarizing the
	// transcript as part of the processing run.
	ParamSummarize = "__summarize__"
	// ParamSummary holds the *model.SummarizationResult when summarization
	// was requested and a transcript text was available.
	ParamSummary = "__summary_result__"
	// ParamResult holds the assembled *model.ProcessResult.
	ParamResult = "__process_result__"
)
