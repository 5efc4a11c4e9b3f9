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
// This file implements keyword extraction. Two ranking paths exist:
//
//   - TF-IDF over sentence-level documents (unigrams and bigrams, with a
//     document-frequency cutoff excluding terms present in over 80% of
//     sentences), used when enough filtered tokens and sentences exist.
//   - Raw frequency ranking requiring at least two occurrences, used as the
//     small-input path and as the fallback when fewer than two usable
//     sentences exist.
//
// Extraction is always best-effort: it returns an empty list rather than an
// error, and both paths break ties lexicographically so identical input
// always yields identical ordered output.
package summarize

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultTopK is the keyword count when the caller does not ask for one.
const DefaultTopK = 8

// tfidfMinTokens is the filtered-token threshold below which the frequency
// path is used directly.
const tfidfMinTokens = 10

// maxDocFrequency excludes terms appearing in more than this share of
// sentence documents from TF-IDF ranking.
const maxDocFrequency = 0.8

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "his": {}, "its": {}, "our": {}, "their": {},
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords ranks the topK most significant terms of text, best
// first. Empty or whitespace-only input returns an empty list; fewer than
// topK results are returned when not enough terms qualify.
func ExtractKeywords(text string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	filtered := filterTokens(strings.Fields(cleaned))

	if len(filtered) > tfidfMinTokens {
		if keywords := tfidfKeywords(text, topK); keywords != nil {
			return keywords
		}
	}
	return frequencyKeywords(filtered, topK)
}

// filterTokens drops stop words and tokens of length <= 2.
func filterTokens(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopWords[w]; stop || len(w) <= 2 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// frequencyKeywords ranks terms by descending occurrence count, requiring a
// minimum count of 2. Ties break lexicographically for stable output.
func frequencyKeywords(words []string, topK int) []string {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	terms := make([]string, 0, len(counts))
	for term, n := range counts {
		if n > 1 {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > topK {
		terms = terms[:topK]
	}
	return terms
}

// tfidfKeywords ranks unigrams and bigrams by their mean TF-IDF score over
// sentence-level documents. It returns nil when fewer than two usable
// sentences exist, signalling the caller to use the frequency path.
func tfidfKeywords(text string, topK int) []string {
	var docs [][]string
	for _, sentence := range SplitSentences(text) {
		if len(sentence) <= 10 {
			continue
		}
		cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(sentence), " ")
		if tokens := filterTokens(strings.Fields(cleaned)); len(tokens) > 0 {
			docs = append(docs, tokens)
		}
	}
	if len(docs) < 2 {
		return nil
	}

	// Document frequency per term, counting each term once per sentence.
	df := make(map[string]int)
	for _, tokens := range docs {
		for term := range termSet(tokens) {
			df[term]++
		}
	}

	// Vocabulary with the high-document-frequency cutoff applied, sorted so
	// matrix columns (and therefore tie behavior) are deterministic.
	cutoff := maxDocFrequency * float64(len(docs))
	vocab := make([]string, 0, len(df))
	for term, n := range df {
		if float64(n) <= cutoff {
			vocab = append(vocab, term)
		}
	}
	if len(vocab) == 0 {
		return nil
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	// Term-frequency matrix scaled by smoothed IDF, rows L2-normalized.
	tfidf := mat.NewDense(len(docs), len(vocab), nil)
	for row, tokens := range docs {
		for term, count := range termCounts(tokens) {
			col, ok := index[term]
			if !ok {
				continue
			}
			idf := math.Log(float64(1+len(docs))/float64(1+df[term])) + 1
			tfidf.Set(row, col, float64(count)*idf)
		}
		rowData := tfidf.RawRowView(row)
		if norm := floats.Norm(rowData, 2); norm > 0 {
			floats.Scale(1/norm, rowData)
		}
	}

	// Mean score per term across all sentence documents.
	scores := make([]float64, len(vocab))
	col := make([]float64, len(docs))
	for j := range vocab {
		mat.Col(col, j, tfidf)
		scores[j] = floats.Sum(col) / float64(len(docs))
	}

	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return vocab[order[a]] < vocab[order[b]]
	})

	keywords := make([]string, 0, topK)
	for _, j := range order {
		if scores[j] <= 0 || len(keywords) == topK {
			break
		}
		keywords = append(keywords, vocab[j])
	}
	return keywords
}

// termSet returns the distinct unigrams and bigrams of a token sequence.
func termSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens)*2)
	for term := range termCounts(tokens) {
		set[term] = struct{}{}
	}
	return set
}

// termCounts counts unigram and bigram occurrences in a token sequence.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}
