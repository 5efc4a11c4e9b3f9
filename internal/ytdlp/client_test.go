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

package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytprod/video-summary/internal/core/model"
)

// stubRunner replaces the real executable in tests. It records every
// invocation and replays a canned response.
type stubRunner struct {
	out   []byte
	err   error
	calls int
	args  []string
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	s.calls++
	s.args = args
	return s.out, s.err
}

func TestFetchMetadataUnresolvableURL(t *testing.T) {
	runner := &stubRunner{}
	client := NewClient("", runner)

	_, err := client.FetchMetadata(context.Background(), "https://example.com/not-a-video")

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrUnresolvableURL, pe.Kind)
	// The resolver must decide without contacting any external system.
	assert.Equal(t, 0, runner.calls)
}

func TestFetchMetadataMapsInfoJSON(t *testing.T) {
	runner := &stubRunner{out: []byte(`{
		"title": "A Video",
		"duration": 212,
		"thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg",
		"uploader": "Some Channel",
		"upload_date": "20240131",
		"view_count": 12345,
		"description": "short description"
	}`)}
	client := NewClient("", runner)

	meta, err := client.FetchMetadata(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", meta.VideoID)
	assert.Equal(t, "A Video", meta.Title)
	assert.Equal(t, int64(212), meta.Duration)
	assert.Equal(t, "Some Channel", meta.Uploader)
	assert.Equal(t, "20240131", meta.UploadDate)
	assert.Equal(t, int64(12345), meta.ViewCount)
	assert.Equal(t, "short description", meta.Description)
	assert.Contains(t, runner.args, "--dump-single-json")
	assert.Contains(t, runner.args, "--skip-download")
}

func TestFetchMetadataDefaultsAndPreview(t *testing.T) {
	longDescription := strings.Repeat("x", 600)
	runner := &stubRunner{out: []byte(`{"description": "` + longDescription + `"}`)}
	client := NewClient("", runner)

	meta, err := client.FetchMetadata(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.NoError(t, err)
	// Absent fields still produce a fully populated shape.
	assert.Equal(t, "Unknown Title", meta.Title)
	assert.Equal(t, "Unknown", meta.Uploader)
	assert.Equal(t, int64(0), meta.Duration)
	assert.Equal(t, model.DescriptionPreviewLength+3, len(meta.Description))
	assert.True(t, strings.HasSuffix(meta.Description, "..."))
}

func TestFetchMetadataToolFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("ERROR: Video unavailable")}
	client := NewClient("", runner)

	_, err := client.FetchMetadata(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrExternalToolFailure, pe.Kind)
	assert.Contains(t, pe.Error(), "Video unavailable")
}

func TestDownloadSubtitlesFindsVTT(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{}
	client := NewClient("", runner)

	// Simulate the tool having written a subtitle file into the job dir.
	vtt := filepath.Join(dir, "A Video.en.vtt")
	assert.NoError(t, os.WriteFile(vtt, []byte("WEBVTT\n"), 0o644))

	path, err := client.DownloadSubtitles(context.Background(), "https://youtu.be/dQw4w9WgXcQ", dir)
	assert.NoError(t, err)
	assert.Equal(t, vtt, path)
}

func TestDownloadSubtitlesNoneProduced(t *testing.T) {
	runner := &stubRunner{}
	client := NewClient("", runner)

	// Empty path with nil error is the signal to fall through to audio.
	path, err := client.DownloadSubtitles(context.Background(), "https://youtu.be/dQw4w9WgXcQ", t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestDownloadAudioFindsFile(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{}
	client := NewClient("", runner)

	audio := filepath.Join(dir, "job-1_audio.mp3")
	assert.NoError(t, os.WriteFile(audio, []byte("not really audio"), 0o644))

	path, err := client.DownloadAudio(context.Background(), "https://youtu.be/dQw4w9WgXcQ", dir, "job-1")
	assert.NoError(t, err)
	assert.Equal(t, audio, path)
}

func TestDownloadAudioRejectsNonMediaFile(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{}
	client := NewClient("", runner)

	// A PNG header where audio should be: the download got something else
	// entirely, likely an error page or a thumbnail.
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	audio := filepath.Join(dir, "job-1_audio.mp3")
	assert.NoError(t, os.WriteFile(audio, png, 0o644))

	_, err := client.DownloadAudio(context.Background(), "https://youtu.be/dQw4w9WgXcQ", dir, "job-1")

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrExternalToolFailure, pe.Kind)
	assert.Contains(t, pe.Error(), "image/png")
}

func TestDownloadAudioMissingFile(t *testing.T) {
	runner := &stubRunner{}
	client := NewClient("", runner)

	_, err := client.DownloadAudio(context.Background(), "https://youtu.be/dQw4w9WgXcQ", t.TempDir(), "job-1")

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrExternalToolFailure, pe.Kind)
}
