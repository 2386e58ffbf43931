package tfidf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
	"github.com/luminalib/luminalib/internal/pkg/tfidf"
)

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestFitDeterministicVocabulary(t *testing.T) {
	docs := []string{
		"galaxy empire space opera",
		"space travel adventure",
	}
	a := tfidf.Fit(docs)
	b := tfidf.Fit(docs)

	assert.Equal(t, a.Vocabulary, b.Vocabulary)
	assert.Equal(t, a.IDF, b.IDF)
	assert.Equal(t, 2, a.Documents)
}

func TestFitFiltersStopwords(t *testing.T) {
	v := tfidf.Fit([]string{"the quick fox and the lazy dog"})
	assert.NotContains(t, v.Vocabulary, "the")
	assert.NotContains(t, v.Vocabulary, "and")
	assert.Contains(t, v.Vocabulary, "quick")
}

func TestTransformNormAndSimilarity(t *testing.T) {
	docs := []string{
		"galactic empire rises across distant stars",
		"a detective investigates a murder in the rain",
		"stars collapse as the empire expands its fleet",
	}
	v := tfidf.Fit(docs)
	vectors := v.TransformAll(docs)

	for _, vec := range vectors {
		assert.InDelta(t, 1.0, norm(vec), 1e-9)
	}

	// 主题相近的文档相似度更高
	assert.Greater(t, tfidf.Cosine(vectors[0], vectors[2]), tfidf.Cosine(vectors[0], vectors[1]))
}

func TestTransformUnknownTermsZero(t *testing.T) {
	v := tfidf.Fit([]string{"alpha beta gamma"})
	vec := v.Transform("zeta eta theta")
	assert.InDelta(t, 0.0, norm(vec), 1e-9)
}

func TestVectorizerJSONRoundTrip(t *testing.T) {
	v := tfidf.Fit([]string{"dragons guard ancient gold", "knights seek ancient relics"})

	data, err := jsonutil.Marshal(v)
	assert.NoError(t, err)

	var restored tfidf.Vectorizer
	assert.NoError(t, jsonutil.Unmarshal(data, &restored))

	text := "ancient dragons"
	assert.InDeltaSlice(t, v.Transform(text), restored.Transform(text), 1e-12)
	assert.Equal(t, v.Documents, restored.Documents)
}
