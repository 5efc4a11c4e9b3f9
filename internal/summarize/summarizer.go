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

// Package summarize produces hierarchical text summaries and keyword sets.
// This file implements the multi-pass pipeline:
//
//  1. Reject empty input.
//  2. Chunk the text by the sentence-aligned token budget.
//  3. Summarize each chunk independently (30–150 units). A failed chunk
//     call substitutes a truncated raw excerpt instead of aborting, the
//     only place partial failure is absorbed.
//  4. Concatenate the chunk summaries in order.
//  5. Reduce once with a wide window (100–300) into the long summary.
//  6. Reduce the long summary with a narrow window (20–60) into the short
//     summary. Failures in 5 or 6 are fatal: those passes operate on
//     already-lossy text, and degrading them silently would compound the
//     loss undetectably.
//  7. Attach keywords and the chars/4 token estimate.
package summarize

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ytprod/video-summary/internal/core/model"
)

// excerptLength is how much of a chunk stands in for its summary when the
// backend call for that chunk fails.
const excerptLength = 200

// Summarizer runs the multi-pass pipeline on a single injected backend.
// Construct one at the composition root and share it; it holds no mutable
// state beyond the backend client.
type Summarizer struct {
	backend     Backend
	chunkTokens int
	topK        int
}

// Option customizes a Summarizer.
type Option func(*Summarizer)

// WithChunkTokens overrides the default chunk budget.
func WithChunkTokens(tokens int) Option {
	return func(s *Summarizer) { s.chunkTokens = tokens }
}

// WithTopK overrides the default keyword count.
func WithTopK(topK int) Option {
	return func(s *Summarizer) { s.topK = topK }
}

// New builds a Summarizer around an explicitly chosen backend.
func New(backend Backend, opts ...Option) *Summarizer {
	s := &Summarizer{
		backend:     backend,
		chunkTokens: DefaultChunkTokens,
		topK:        DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend exposes which execution path was selected, for the capability
// report on the info endpoint.
func (s *Summarizer) Backend() Backend {
	return s.backend
}

// ProcessText runs the full pipeline and returns a complete result, or an
// error and no result at all.
func (s *Summarizer) ProcessText(ctx context.Context, text string) (*model.SummarizationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.Errorf(model.ErrEmptyInput, "input text is empty")
	}

	chunks := ChunkText(text, s.chunkTokens)
	if len(chunks) == 0 {
		return nil, model.Errorf(model.ErrEmptyInput, "no chunks created from input text")
	}
	slog.Info("summarizing text", "backend", s.backend.Name(), "chunks", len(chunks))

	chunkSummaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := s.backend.Summarize(ctx, chunk, ChunkWindow)
		if err != nil {
			// Per-chunk failure is non-fatal: degrade to a raw excerpt and
			// keep going.
			slog.Warn("chunk summarization failed, using excerpt",
				"chunk", i+1, "of", len(chunks), "error", err)
			summary = excerpt(chunk)
		}
		chunkSummaries = append(chunkSummaries, summary)
	}

	intermediate := strings.Join(chunkSummaries, " ")

	longSummary, err := s.backend.Summarize(ctx, intermediate, LongWindow)
	if err != nil {
		return nil, model.Errorf(model.ErrBackendCallFailure, "long summary failed: %v", err)
	}

	shortSummary, err := s.backend.Summarize(ctx, longSummary, ShortWindow)
	if err != nil {
		return nil, model.Errorf(model.ErrBackendCallFailure, "short summary failed: %v", err)
	}

	return &model.SummarizationResult{
		ShortSummary:   shortSummary,
		LongSummary:    longSummary,
		ChunkSummaries: chunkSummaries,
		Keywords:       ExtractKeywords(text, s.topK),
		NumChunks:      len(chunks),
		TotalTokens:    model.ApproxTokens(text),
	}, nil
}

func excerpt(chunk string) string {
	if len(chunk) > excerptLength {
		chunk = chunk[:excerptLength]
	}
	return chunk + "..."
}
