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
// This file implements the hosted backend on the Gemini API. The raw model
// handle is wrapped with a rate limiter and a bounded retry loop so quota
// errors and transient failures do not bubble up as request failures, and
// token usage is recorded on OpenTelemetry counters.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	// DefaultHostedModel is used when the configuration does not name one.
	DefaultHostedModel = "gemini-2.0-flash"
	// geminiMaxRetries bounds the retry loop around a single generation call.
	geminiMaxRetries = 3
)

// GeminiBackend is the hosted summarization path.
type GeminiBackend struct {
	models             *genai.Models
	modelName          string
	limiter            *rate.Limiter
	inputTokenCounter  metric.Int64Counter
	outputTokenCounter metric.Int64Counter
	retryCounter       metric.Int64Counter
}

// NewGeminiBackend dials the Gemini API with an API key. The rate limit is
// requests per second; zero or negative means unlimited.
func NewGeminiBackend(ctx context.Context, apiKey, modelName string, requestsPerSecond int) (*GeminiBackend, error) {
	if modelName == "" {
		modelName = DefaultHostedModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	meter := otel.Meter("github.com/ytprod/video-summary/summarize")
	b := &GeminiBackend{
		models:    client.Models,
		modelName: modelName,
		limiter:   rate.NewLimiter(limit, 1),
	}
	b.inputTokenCounter, _ = meter.Int64Counter("gemini.token.input")
	b.outputTokenCounter, _ = meter.Int64Counter("gemini.token.output")
	b.retryCounter, _ = meter.Int64Counter("gemini.retry")
	return b, nil
}

func (b *GeminiBackend) Name() string { return "gemini" }

// Summarize sends one generation request bounded by the window. The maximum
// is enforced via MaxOutputTokens; the minimum rides in the prompt.
func (b *GeminiBackend) Summarize(ctx context.Context, text string, window LengthWindow) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2),
		MaxOutputTokens: int32(window.MaxTokens),
	}
	contents := genai.Text(summaryPrompt(text, window))

	var lastErr error
	for attempt := 0; attempt <= geminiMaxRetries; attempt++ {
		if attempt > 0 {
			b.retryCounter.Add(ctx, 1)
		}
		if err := b.limiter.Wait(ctx); err != nil {
			return "", err
		}

		resp, err := b.models.GenerateContent(ctx, b.modelName, contents, config)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.UsageMetadata != nil {
			b.inputTokenCounter.Add(ctx, int64(resp.UsageMetadata.PromptTokenCount))
			b.outputTokenCounter.Add(ctx, int64(resp.UsageMetadata.CandidatesTokenCount))
		}

		out := collectText(resp)
		if out == "" {
			lastErr = fmt.Errorf("empty response from model %s", b.modelName)
			continue
		}
		return out, nil
	}
	return "", fmt.Errorf("generation failed after %d retries: %w", geminiMaxRetries, lastErr)
}

// collectText concatenates the text parts of every candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// summaryPrompt is shared by both backends so swapping them does not change
// the instruction the model sees.
func summaryPrompt(text string, window LengthWindow) string {
	return fmt.Sprintf(
		"Summarize the following text in %d to %d words. Respond with the summary only, no preamble.\n\n%s",
		window.MinTokens, window.MaxTokens, text)
}
