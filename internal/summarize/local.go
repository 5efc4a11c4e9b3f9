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
// This file implements the local backend: an OpenAI-compatible chat
// completion endpoint served by a locally running inference server
// (llama.cpp, Ollama, vLLM and the like all speak this protocol).
package summarize

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultLocalModel is requested from the local server when the
// configuration does not name a model.
const DefaultLocalModel = "llama3"

const localSystemPrompt = "You are a summarization engine. " +
	"Produce only the requested summary with no introductory phrases."

// LocalBackend talks to an OpenAI-compatible server at a configurable base
// URL. No credential is required; local servers ignore the bearer token.
type LocalBackend struct {
	client    *openai.Client
	modelName string
}

// NewLocalBackend points the OpenAI client at the local server.
func NewLocalBackend(endpoint, modelName string) *LocalBackend {
	if modelName == "" {
		modelName = DefaultLocalModel
	}
	cfg := openai.DefaultConfig("local")
	cfg.BaseURL = strings.TrimSuffix(endpoint, "/")
	return &LocalBackend{
		client:    openai.NewClientWithConfig(cfg),
		modelName: modelName,
	}
}

func (b *LocalBackend) Name() string { return "local" }

// Summarize issues one chat completion bounded by the window's maximum.
func (b *LocalBackend) Summarize(ctx context.Context, text string, window LengthWindow) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     b.modelName,
		MaxTokens: window.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: localSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: summaryPrompt(text, window),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("local completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from local model %s", b.modelName)
	}
	out := strings.TrimSpace(resp.Choices[len(resp.Choices)-1].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty response from local model %s", b.modelName)
	}
	return out, nil
}
