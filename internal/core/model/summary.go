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

package model

// SummarizationResult is the complete output of the multi-pass summarization
// pipeline. All fields are populated together; a fatal reduction failure
// means no result at all, never a partial one.
type SummarizationResult struct {
	ShortSummary   string   `json:"short_summary"`   // Final narrow-window reduction of the long summary.
	LongSummary    string   `json:"long_summary"`    // Wide-window reduction of the concatenated chunk summaries.
	ChunkSummaries []string `json:"chunk_summaries"` // Per-chunk summaries, in original chunk order.
	Keywords       []string `json:"keywords"`        // Ranked best-first, possibly empty.
	NumChunks      int      `json:"num_chunks"`      // Number of chunks the input was split into.
	TotalTokens    int      `json:"total_tokens"`    // Approximate token count of the input, len/4.
}

// ApproxTokens is the crude token estimate used throughout the pipeline:
// one token per four characters. It is deliberately not a real tokenizer;
// the chunk budget and the reported totals both depend on this exact
// approximation.
func ApproxTokens(text string) int {
	return len(text) / 4
}
