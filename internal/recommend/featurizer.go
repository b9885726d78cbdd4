// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/nextreel/nextreel/internal/catalog"
)

// stopwords is the english stop-word list applied before n-gram
// construction. Matching is done on lowercased tokens.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"could", "did", "do", "does", "doing", "down", "during", "each",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"he", "her", "here", "hers", "herself", "him", "himself", "his",
		"how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "ourselves", "out", "over", "own", "same", "she", "should",
		"so", "some", "such", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "very",
		"was", "we", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "will", "with", "you", "your", "yours",
		"yourself", "yourselves",
	} {
		stopwords[w] = struct{}{}
	}
}

// VectorSpace is the term-weighted feature space built over all ready
// movies and active series. Vectors are TF-IDF weighted and L2
// normalized, so cosine similarity reduces to a dot product.
//
// Construction is fully deterministic for a given catalog snapshot:
// items are ordered by key, and the vocabulary is selected by corpus
// frequency with ties broken alphabetically.
type VectorSpace struct {
	items   []catalog.ItemKey
	index   map[catalog.ItemKey]int
	vocab   []string
	vectors [][]float64
}

// itemText builds the feature text for one item. Genre terms are
// repeated once so they carry double weight relative to free text.
func itemText(genres []string, description, director string, cast []string) string {
	var b strings.Builder
	g := strings.Join(genres, " ")
	b.WriteString(g)
	b.WriteByte(' ')
	b.WriteString(g)
	b.WriteByte(' ')
	b.WriteString(description)
	b.WriteByte(' ')
	b.WriteString(director)
	b.WriteByte(' ')
	b.WriteString(strings.Join(cast, " "))
	return b.String()
}

// tokenize lowercases text and splits it into alphanumeric runs of at
// least two characters, drops stop words, then emits unigrams followed
// by bigrams (adjacent token pairs joined by a space).
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	var words []string
	start := -1
	for i, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			w := lower[start:i]
			if len(w) >= 2 {
				if _, stop := stopwords[w]; !stop {
					words = append(words, w)
				}
			}
			start = -1
		}
	}
	if start >= 0 {
		w := lower[start:]
		if len(w) >= 2 {
			if _, stop := stopwords[w]; !stop {
				words = append(words, w)
			}
		}
	}

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// buildVectorSpace vectorizes every ready movie and active series.
// vocabSize caps the vocabulary at the most frequent terms across the
// corpus. Items whose text yields no in-vocabulary terms get a zero
// vector; their similarity to everything is 0.
func buildVectorSpace(provider DataProvider, vocabSize int) *VectorSpace {
	vs := &VectorSpace{index: make(map[catalog.ItemKey]int)}

	var docs [][]string
	for _, m := range provider.ReadyMovies() {
		vs.items = append(vs.items, m.Key())
		docs = append(docs, tokenize(itemText(m.Genres, m.Description, m.Director, m.Cast)))
	}
	for _, s := range provider.ActiveSeries() {
		vs.items = append(vs.items, s.Key())
		docs = append(docs, tokenize(itemText(s.Genres, s.Description, s.Director, s.Cast)))
	}
	if len(vs.items) == 0 {
		return vs
	}
	for i, key := range vs.items {
		vs.index[key] = i
	}

	// Term counts per document plus corpus totals for vocabulary
	// selection and document frequency for IDF.
	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	docFreq := make(map[string]int)
	for i, terms := range docs {
		tc := make(map[string]int, len(terms))
		for _, t := range terms {
			tc[t]++
		}
		counts[i] = tc
		for t, c := range tc {
			total[t] += c
			docFreq[t]++
		}
	}

	allTerms := make([]string, 0, len(total))
	for t := range total {
		allTerms = append(allTerms, t)
	}
	sort.Slice(allTerms, func(i, j int) bool {
		if total[allTerms[i]] != total[allTerms[j]] {
			return total[allTerms[i]] > total[allTerms[j]]
		}
		return allTerms[i] < allTerms[j]
	})
	if len(allTerms) > vocabSize {
		allTerms = allTerms[:vocabSize]
	}
	vs.vocab = make([]string, len(allTerms))
	copy(vs.vocab, allTerms)
	sort.Strings(vs.vocab)

	n := float64(len(docs))
	idf := make([]float64, len(vs.vocab))
	for j, t := range vs.vocab {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	vs.vectors = make([][]float64, len(docs))
	for i, tc := range counts {
		vec := make([]float64, len(vs.vocab))
		var norm float64
		for j, t := range vs.vocab {
			if c, ok := tc[t]; ok {
				v := float64(c) * idf[j]
				vec[j] = v
				norm += v * v
			}
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vs.vectors[i] = vec
	}

	return vs
}

// Contains reports whether key is present in the vector space.
func (vs *VectorSpace) Contains(key catalog.ItemKey) bool {
	_, ok := vs.index[key]
	return ok
}

// Size returns the number of vectorized items.
func (vs *VectorSpace) Size() int {
	return len(vs.items)
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
