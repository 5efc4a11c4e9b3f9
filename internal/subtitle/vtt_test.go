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

package subtitle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeMinimalFixture runs the canonical minimal fixture: a header
// line, a cue number, a timestamp line, and a tagged text line. The output
// must be exactly the tag-stripped text with no residual digits-only or
// timestamp lines.
func TestNormalizeMinimalFixture(t *testing.T) {
	fixture := "WEBVTT\n" +
		"\n" +
		"1\n" +
		"00:00:01.000 --> 00:00:03.000\n" +
		"<c>hello</c> world\n"

	assert.Equal(t, "hello world", Normalize(fixture))
}

func TestNormalizeMultiCue(t *testing.T) {
	fixture := "WEBVTT Kind: captions; Language: en\n" +
		"\n" +
		"1\n" +
		"00:00:01.000 --> 00:00:03.000 align:start position:0%\n" +
		"first<00:00:01.320> cue\n" +
		"\n" +
		"2\n" +
		"00:00:03.000 --> 00:00:05.000\n" +
		"  second cue  \n"

	assert.Equal(t, "first cue second cue", Normalize(fixture))
}

func TestToTextReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caption.en.vtt")
	content := "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nplain text line\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := ToText(path)
	assert.NoError(t, err)
	assert.Equal(t, "plain text line", text)
}

func TestToTextMissingFile(t *testing.T) {
	_, err := ToText(filepath.Join(t.TempDir(), "does-not-exist.vtt"))
	assert.Error(t, err)
}
