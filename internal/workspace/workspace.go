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

// Package workspace manages the job-scoped temporary directories that hold
// downloaded subtitle and audio files. Each job gets its own subdirectory
// under a common root, keyed by the opaque job ID. That namespacing is the
// only mechanism preventing cross-job collisions. Cleanup is an explicit,
// separately invoked operation, never automatic on completion or failure;
// a job whose workspace is never cleaned up leaks disk space indefinitely.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is the root directory for all job workspaces when the
// configuration does not override it.
const DefaultRoot = "/tmp/ytprod"

// Manager creates and removes per-job directories under a single root.
type Manager struct {
	root string
}

// NewManager returns a Manager rooted at root, falling back to DefaultRoot
// when root is empty.
func NewManager(root string) *Manager {
	if root == "" {
		root = DefaultRoot
	}
	return &Manager{root: root}
}

// Root returns the workspace root directory.
func (m *Manager) Root() string {
	return m.root
}

// Dir returns the directory path for a job without creating it.
func (m *Manager) Dir(jobID string) string {
	return filepath.Join(m.root, jobID)
}

// Ensure creates the job's directory (and any missing parents) and returns
// its path.
func (m *Manager) Ensure(jobID string) (string, error) {
	dir := m.Dir(jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create workspace for job %s: %w", jobID, err)
	}
	return dir, nil
}

// Cleanup removes the job's directory and everything in it. Removing a
// workspace that does not exist is not an error.
func (m *Manager) Cleanup(jobID string) error {
	dir := m.Dir(jobID)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clean up workspace for job %s: %w", jobID, err)
	}
	return nil
}
