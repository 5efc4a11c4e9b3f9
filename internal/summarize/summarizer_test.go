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

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytprod/video-summary/internal/core/model"
)

// fakeBackend is a scriptable Backend for pipeline tests. It can fail
// selected chunk calls or selected windows to exercise the partial-failure
// rules.
type fakeBackend struct {
	calls          int
	failChunkCalls map[int]bool // 1-based call index within the chunk window
	failWindows    map[LengthWindow]bool
	chunkCalls     int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		failChunkCalls: map[int]bool{},
		failWindows:    map[LengthWindow]bool{},
	}
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Summarize(_ context.Context, text string, window LengthWindow) (string, error) {
	f.calls++
	if f.failWindows[window] {
		return "", errors.New("scripted window failure")
	}
	if window == ChunkWindow {
		f.chunkCalls++
		if f.failChunkCalls[f.chunkCalls] {
			return "", errors.New("scripted chunk failure")
		}
		return fmt.Sprintf("chunk summary %d", f.chunkCalls), nil
	}
	if window == LongWindow {
		return "a long summary of the text", nil
	}
	return "a short summary", nil
}

// articleText builds a ~1200-character input whose sentences force multiple
// chunks under a small budget.
func articleText() string {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("This observability platform collects traces from every running service and stores them durably. ")
	}
	return strings.TrimSpace(b.String())
}

func TestProcessTextEmptyInput(t *testing.T) {
	s := New(newFakeBackend())

	_, err := s.ProcessText(context.Background(), "   \n ")

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrEmptyInput, pe.Kind)
}

// TestProcessTextEndToEnd feeds a ~1200-character article through the full
// pipeline with a budget small enough to force at least two chunks.
func TestProcessTextEndToEnd(t *testing.T) {
	backend := newFakeBackend()
	text := articleText()
	s := New(backend, WithChunkTokens(100)) // 400-char budget

	result, err := s.ProcessText(context.Background(), text)
	assert.NoError(t, err)

	assert.True(t, result.NumChunks >= 2)
	assert.Equal(t, result.NumChunks, len(result.ChunkSummaries))
	assert.NotEmpty(t, result.ShortSummary)
	assert.NotEmpty(t, result.LongSummary)
	assert.Equal(t, len(text)/4, result.TotalTokens)
	assert.NotEmpty(t, result.Keywords)
}

// TestProcessTextChunkFailureAbsorbed verifies the one absorbed partial
// failure: a failed chunk call degrades to a raw excerpt instead of
// aborting the pipeline.
func TestProcessTextChunkFailureAbsorbed(t *testing.T) {
	backend := newFakeBackend()
	backend.failChunkCalls[1] = true
	s := New(backend, WithChunkTokens(100))

	result, err := s.ProcessText(context.Background(), articleText())
	assert.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.ChunkSummaries[0], "..."))
	assert.True(t, len(result.ChunkSummaries[0]) <= excerptLength+3)
	// The remaining chunks summarized normally.
	assert.Equal(t, "chunk summary 2", result.ChunkSummaries[1])
}

func TestProcessTextLongReductionFatal(t *testing.T) {
	backend := newFakeBackend()
	backend.failWindows[LongWindow] = true
	s := New(backend, WithChunkTokens(100))

	_, err := s.ProcessText(context.Background(), articleText())

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrBackendCallFailure, pe.Kind)
}

func TestProcessTextShortReductionFatal(t *testing.T) {
	backend := newFakeBackend()
	backend.failWindows[ShortWindow] = true
	s := New(backend, WithChunkTokens(100))

	_, err := s.ProcessText(context.Background(), articleText())

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrBackendCallFailure, pe.Kind)
}

func TestSelectBackendNoneConfigured(t *testing.T) {
	_, err := SelectBackend(context.Background(), BackendConfig{})

	pe, ok := model.AsProcessingError(err)
	assert.True(t, ok)
	assert.Equal(t, model.ErrNoBackendAvailable, pe.Kind)
}

func TestSelectBackendPrefersLocalWhenForced(t *testing.T) {
	backend, err := SelectBackend(context.Background(), BackendConfig{
		APIKey:        "key-present",
		ForceLocal:    true,
		LocalEndpoint: "http://localhost:11434/v1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "local", backend.Name())
}
