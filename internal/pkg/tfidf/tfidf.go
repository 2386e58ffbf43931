// Package tfidf implements a small TF-IDF vectorizer used by the
// trained recommendation path.
package tfidf

import (
	"math"
	"sort"

	"github.com/luminalib/luminalib/internal/pkg/embedding"
)

// stopwords are excluded from the vocabulary.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "that": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {},
}

// Vectorizer holds the fitted TF-IDF vocabulary and IDF weights.
// 字段导出以便 JSON 持久化.
type Vectorizer struct {
	// Vocabulary maps a term to its column index.
	Vocabulary map[string]int `json:"vocabulary"`

	// IDF holds the inverse document frequency per column.
	IDF []float64 `json:"idf"`

	// Documents is the corpus size the vectorizer was fitted on.
	Documents int `json:"documents"`
}

func tokenize(text string) []string {
	var tokens []string
	for _, tok := range embedding.Tokenize(text) {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Fit builds a vectorizer over the document corpus.
// Terms are assigned columns in sorted order for determinism. IDF uses
// the smoothed formula log((1+N)/(1+df)) + 1.
func Fit(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		Documents:  len(docs),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform produces the L2-normalized TF-IDF vector for text.
// Out-of-vocabulary terms are ignored; a text with no known terms maps
// to the all-zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]float64)
	for _, tok := range tokens {
		if col, ok := v.Vocabulary[tok]; ok {
			counts[col]++
		}
	}

	total := float64(len(tokens))
	for col, count := range counts {
		vec[col] = (count / total) * v.IDF[col]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// TransformAll vectorizes every document in order.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// Cosine returns the cosine similarity of two TF-IDF vectors.
// Transform 已做 L2 归一化, 点积即余弦.
func Cosine(a, b []float64) float64 {
	return embedding.Similarity(a, b)
}
