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

// Package model defines the core data structures for the application.
// This file contains the video-side structures: the metadata record produced
// by the extraction tool, the transcript artifact it downloads, and the
// combined result a processing job returns. All of these objects are
// transient: they live for the duration of one request and are never
// persisted.
package model

// DescriptionPreviewLength bounds the description carried on a
// VideoMetadata record. Longer descriptions are truncated and suffixed
// with an ellipsis marker.
const DescriptionPreviewLength = 500

// VideoMetadata is the fixed, fully-populated shape the metadata fetcher
// maps the extraction tool's info dictionary into. Fields the tool does not
// report default to their zero values so the shape is always complete.
type VideoMetadata struct {
	VideoID     string `json:"youtube_id"`  // The canonical 11-character video identifier.
	Title       string `json:"title"`       // The video title, "Unknown Title" when absent.
	Duration    int64  `json:"duration"`    // Duration in seconds, >= 0.
	Thumbnail   string `json:"thumbnail"`   // URL of the thumbnail image.
	Uploader    string `json:"uploader"`    // The channel or uploader name, "Unknown" when absent.
	UploadDate  string `json:"upload_date"` // Provider-defined date string (e.g. "20240131").
	ViewCount   int64  `json:"view_count"`  // View count, >= 0.
	Description string `json:"description"` // Description preview, truncated to DescriptionPreviewLength.
}

// ArtifactKind tags what kind of file the transcript acquirer produced.
type ArtifactKind string

const (
	// KindSubtitle marks a structured subtitle file (VTT) ready for
	// normalization into flat prose.
	KindSubtitle ArtifactKind = "subtitle"
	// KindAudio marks a raw audio download left for an external
	// transcription step. Speech-to-text itself happens outside this service.
	KindAudio ArtifactKind = "audio"
)

// TranscriptArtifact is the product of the transcript acquirer: either a
// subtitle file or, when no subtitles exist, the best available audio track.
// The file lives under the job's workspace directory and is removed only by
// an explicit cleanup call keyed by the job ID.
type TranscriptArtifact struct {
	Path string       // Absolute path of the downloaded file.
	Kind ArtifactKind // What the file is; decides whether normalization runs.
}

// IsSubtitle reports whether the artifact can be normalized into text.
func (a *TranscriptArtifact) IsSubtitle() bool {
	return a != nil && a.Kind == KindSubtitle
}

// ProcessResult is the single record a processing job returns: the metadata,
// the transcript artifact location, the normalized transcript text when a
// subtitle was found (nil for the audio-fallback case), the summary when
// the caller opted in, and the job ID that scopes the temporary files on
// disk. The metadata is embedded so its fields appear at the top level of
// the JSON response alongside the transcript fields.
type ProcessResult struct {
	*VideoMetadata
	TranscriptPath string               `json:"transcript_path"`
	TranscriptText *string              `json:"transcript_text"` // nil when only audio was obtained
	Summary        *SummarizationResult `json:"summary,omitempty"`
	JobID          string               `json:"job_id"`
}
