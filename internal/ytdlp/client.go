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

// Package ytdlp wraps the external yt-dlp executable. This file defines the
// Client, which knows the three invocations the service needs:
//
//  1. Metadata-only extraction (--dump-single-json, nothing downloaded).
//  2. Auto-generated English subtitle download into a job directory.
//  3. Best-available audio download as the ASR fallback when no subtitles
//     exist. Actual speech-to-text is out of scope and left to an external
//     collaborator.
//
// Every tool-level failure is surfaced as a model.ProcessingError with kind
// ErrExternalToolFailure carrying the underlying message; callers cannot
// distinguish a removed video from a network timeout beyond that message.
package ytdlp

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/ytprod/video-summary/internal/core/model"
)

// DefaultBinary is the yt-dlp executable name resolved via PATH when the
// configuration does not provide an absolute path.
const DefaultBinary = "yt-dlp"

// Client issues yt-dlp invocations through a Runner.
type Client struct {
	binary string
	runner Runner
}

// NewClient builds a Client. An empty binary falls back to DefaultBinary; a
// nil runner falls back to the production ExecRunner.
func NewClient(binary string, runner Runner) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{binary: binary, runner: runner}
}

// infoJSON mirrors the subset of yt-dlp's info dictionary the service maps
// into VideoMetadata. Absent fields decode to zero values.
type infoJSON struct {
	Title       string `json:"title"`
	Duration    int64  `json:"duration"`
	Thumbnail   string `json:"thumbnail"`
	Uploader    string `json:"uploader"`
	UploadDate  string `json:"upload_date"`
	ViewCount   int64  `json:"view_count"`
	Description string `json:"description"`
}

// FetchMetadata resolves the video ID and, when resolution succeeds, runs
// yt-dlp in metadata-only mode and maps the result into the fixed
// VideoMetadata shape. An unresolvable URL fails before any external call.
func (c *Client) FetchMetadata(ctx context.Context, url string) (*model.VideoMetadata, error) {
	videoID, ok := ExtractVideoID(url)
	if !ok {
		return nil, model.Errorf(model.ErrUnresolvableURL, "could not extract video ID from URL: %s", url)
	}

	out, err := c.runner.Run(ctx, c.binary,
		"--dump-single-json",
		"--skip-download",
		"--no-warnings",
		"--quiet",
		url,
	)
	if err != nil {
		return nil, model.Errorf(model.ErrExternalToolFailure, "failed to fetch metadata: %v", err)
	}

	var info infoJSON
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, model.Errorf(model.ErrExternalToolFailure, "failed to decode metadata: %v", err)
	}

	return &model.VideoMetadata{
		VideoID:     videoID,
		Title:       defaultString(info.Title, "Unknown Title"),
		Duration:    max(info.Duration, 0),
		Thumbnail:   info.Thumbnail,
		Uploader:    defaultString(info.Uploader, "Unknown"),
		UploadDate:  info.UploadDate,
		ViewCount:   max(info.ViewCount, 0),
		Description: previewDescription(info.Description),
	}, nil
}

// DownloadSubtitles asks yt-dlp for auto-generated English subtitles,
// writing into dir, and returns the path of the first VTT file found there.
// An empty path with a nil error means the tool ran but produced no
// subtitle file, which is the cue to fall through to the audio download.
// When more than one VTT matches, the first in enumeration order is taken;
// that selection is a documented nondeterminism, not a "best" pick.
func (c *Client) DownloadSubtitles(ctx context.Context, url, dir string) (string, error) {
	_, err := c.runner.Run(ctx, c.binary,
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", "en",
		"--skip-download",
		"--no-warnings",
		"--quiet",
		"-o", filepath.Join(dir, "%(title)s.%(ext)s"),
		url,
	)
	if err != nil {
		return "", model.Errorf(model.ErrExternalToolFailure, "failed to download subtitles: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return "", model.Errorf(model.ErrExternalToolFailure, "failed to scan for subtitle files: %v", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}

// DownloadAudio fetches the best available audio track for the ASR fallback,
// naming the file after the job ID so the workspace stays collision-free.
func (c *Client) DownloadAudio(ctx context.Context, url, dir, jobID string) (string, error) {
	_, err := c.runner.Run(ctx, c.binary,
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--no-warnings",
		"--quiet",
		"-o", filepath.Join(dir, jobID+"_audio.%(ext)s"),
		url,
	)
	if err != nil {
		return "", model.Errorf(model.ErrExternalToolFailure, "failed to download audio: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, jobID+"_audio.*"))
	if err != nil || len(matches) == 0 {
		return "", model.Errorf(model.ErrExternalToolFailure, "audio file not found after download")
	}

	audioPath := matches[0]
	kind := sniffKind(audioPath)
	switch {
	case kind == "" || strings.HasPrefix(kind, "audio/"):
		// Unknown headers are accepted; the sniffer does not know every
		// audio codec yt-dlp can produce.
	case strings.HasPrefix(kind, "video/"):
		// Some "bestaudio" formats arrive in video containers; the external
		// transcription step handles those.
		slog.Warn("audio fallback produced a video container", "path", audioPath, "type", kind)
	default:
		// A recognized non-media header means the tool downloaded something
		// else entirely (an error page, an image). Do not hand that to the
		// transcription step as audio.
		return "", model.Errorf(model.ErrExternalToolFailure,
			"audio fallback produced a non-media file (%s)", kind)
	}
	return audioPath, nil
}

// sniffKind reads the file header and returns its detected MIME type, or ""
// when detection fails.
func sniffKind(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil || n == 0 {
		return ""
	}
	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

func previewDescription(desc string) string {
	if len(desc) > model.DescriptionPreviewLength {
		return desc[:model.DescriptionPreviewLength] + "..."
	}
	return desc
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
