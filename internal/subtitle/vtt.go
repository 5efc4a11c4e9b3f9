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

// Package subtitle turns structured subtitle files into flat prose suitable
// as summarization input. The normalization is pure pattern substitution,
// applied in a fixed order; later steps assume the earlier cleanup has
// already happened:
//
//  1. Strip the WEBVTT header line.
//  2. Strip timestamp-range lines ("00:00:01.000 --> 00:00:03.000").
//  3. Strip lines that contain only a cue sequence number.
//  4. Strip inline markup tags ("<c>", "<00:00:01.320>", ...).
//  5. Collapse blank-line runs and trim line-edge whitespace.
//  6. Drop now-empty lines and join the rest with single spaces.
//
// The output carries no timing information at all.
package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	headerPattern    = regexp.MustCompile(`(?m)^WEBVTT.*\n`)
	timestampPattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}\.\d{3}.*`)
	cueNumberPattern = regexp.MustCompile(`(?m)^\d+\s*$`)
	inlineTagPattern = regexp.MustCompile(`<[^>]+>`)
	blankRunPattern  = regexp.MustCompile(`\n\s*\n`)
)

// ToText reads a VTT file and normalizes it into one flat string of prose.
// A missing file is an error; everything else degrades to however much text
// survives the cleanup.
func ToText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("subtitle file not found: %s: %w", path, err)
	}
	return Normalize(string(raw)), nil
}

// Normalize applies the cleanup steps to subtitle content already in memory.
func Normalize(content string) string {
	content = headerPattern.ReplaceAllString(content, "")
	content = timestampPattern.ReplaceAllString(content, "")
	content = cueNumberPattern.ReplaceAllString(content, "")
	content = inlineTagPattern.ReplaceAllString(content, "")
	content = blankRunPattern.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
