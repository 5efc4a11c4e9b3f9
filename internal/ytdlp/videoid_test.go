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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractVideoID verifies that every accepted URL shape carrying the
// same 11-character identifier resolves to that identical ID.
func TestExtractVideoID(t *testing.T) {
	const want = "dQw4w9WgXcQ"

	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
	}

	for _, url := range urls {
		id, ok := ExtractVideoID(url)
		assert.True(t, ok, "expected a match for %s", url)
		assert.Equal(t, want, id, "wrong ID for %s", url)
	}
}

// TestExtractVideoIDNoMatch verifies that URLs without a recognizable
// identifier signal failure instead of returning garbage.
func TestExtractVideoIDNoMatch(t *testing.T) {
	urls := []string{
		"",
		"not a url at all",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=tooshort",
	}

	for _, url := range urls {
		id, ok := ExtractVideoID(url)
		assert.False(t, ok, "unexpected match for %q", url)
		assert.Empty(t, id)
	}
}
