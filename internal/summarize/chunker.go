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
	"regexp"
	"strings"
)

// DefaultChunkTokens is the chunk budget when the caller does not supply
// one, in approximate tokens (one token per four characters).
const DefaultChunkTokens = 1000

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on sentence terminators, consuming the
// terminators and dropping empty fragments.
func SplitSentences(text string) []string {
	parts := sentenceTerminators.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// ChunkText greedily packs sentences into chunks of at most maxTokens*4
// characters. A chunk is never split mid-sentence: a single sentence longer
// than the whole budget becomes its own over-budget chunk. Empty input
// yields an empty slice, which callers must reject upstream; zero chunks
// is never valid summarization input.
func ChunkText(text string, maxTokens int) []string {
	if maxTokens <= 0 {
		maxTokens = DefaultChunkTokens
	}
	maxChars := maxTokens * 4

	var chunks []string
	var current string
	for _, sentence := range SplitSentences(text) {
		if len(current)+len(sentence) > maxChars && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
			current = sentence
			continue
		}
		if current == "" {
			current = sentence
		} else {
			current += " " + sentence
		}
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return chunks
}
