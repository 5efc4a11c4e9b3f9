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

package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerDefaultRoot(t *testing.T) {
	m := NewManager("")
	assert.Equal(t, DefaultRoot, m.Root())
}

func TestEnsureCreatesJobDir(t *testing.T) {
	m := NewManager(t.TempDir())

	dir, err := m.Ensure("job-42")
	assert.NoError(t, err)
	assert.Equal(t, m.Dir("job-42"), dir)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Ensure is idempotent.
	again, err := m.Ensure("job-42")
	assert.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestCleanupRemovesEverything(t *testing.T) {
	m := NewManager(t.TempDir())

	dir, err := m.Ensure("job-43")
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "artifact.vtt"), []byte("WEBVTT\n"), 0o644))

	assert.NoError(t, m.Cleanup("job-43"))
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCleanupMissingIsNotAnError(t *testing.T) {
	m := NewManager(t.TempDir())
	assert.NoError(t, m.Cleanup("never-existed"))
}
