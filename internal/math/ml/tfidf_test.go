package ml

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func english(t *testing.T) StopWords {
	s, ok := LookupStopWords("english")
	assert.True(t, ok)
	return s
}

func TestVectorizer_FitTransform(t *testing.T) {

	docs := []string{
		"the market rises",
		"the market falls",
		"miracle cure found",
		"market miracle",
	}

	v := NewVectorizer(VectorizerConfig{MaxDF: 0.7, StopWords: english(t)})
	x, err := v.FitTransform(docs)
	assert.NoError(t, err)

	// 'market' is in 3 of 4 documents, above the ceiling; 'the' and 'found' are stop words
	assert.Equal(t, []string{"cure", "falls", "miracle", "rises"}, v.Vocabulary())
	assert.Equal(t, 4, x.Rows())
	assert.Equal(t, 4, x.Cols())

	// smoothed idf
	assert.InDelta(t, math.Log(5.0/2.0)+1, v.IDF()[0], 1e-12)
	assert.InDelta(t, math.Log(5.0/3.0)+1, v.IDF()[2], 1e-12)

	// single term rows are unit vectors
	assert.Equal(t, []int{3}, x.Row(0).Indices)
	assert.InDelta(t, 1.0, x.At(0, 3), 1e-12)

	for i := 0; i < x.Rows(); i++ {
		assert.InDelta(t, 1.0, floats.Norm(x.Row(i).Values, 2), 1e-12)
	}

	// the cure/miracle weights follow their idf
	row := x.Row(2)
	assert.Equal(t, []int{0, 2}, row.Indices)
	assert.InDelta(t, v.IDF()[0]/v.IDF()[2], row.Values[0]/row.Values[1], 1e-12)

}

func TestVectorizer_Transform(t *testing.T) {

	v := NewVectorizer(VectorizerConfig{MaxDF: 1, StopWords: english(t)})
	_, err := v.Transform([]string{"market"})
	assert.True(t, errors.Is(err, NotFittedErr))

	err = v.Fit([]string{"stock market", "miracle cure"})
	assert.NoError(t, err)

	x, err := v.Transform([]string{"unknown words only", "market market stock"})
	assert.NoError(t, err)
	assert.Empty(t, x.Row(0).Indices)
	assert.Equal(t, 2, len(x.Row(1).Indices))
	// term counts are kept before normalisation
	assert.InDelta(t, 2.0, x.At(1, 1)/x.At(1, 3), 1e-12)

}

func TestVectorizer_Errors(t *testing.T) {

	type test struct {
		docs  []string
		maxDF float64
		err   error
	}

	tests := map[string]test{
		"only-stop-words": {
			docs:  []string{"the and", "of the"},
			maxDF: 0.7,
			err:   EmptyVocabularyErr,
		},
		"no-documents": {
			docs:  []string{},
			maxDF: 0.7,
			err:   EmptyVocabularyErr,
		},
		"all-pruned": {
			docs:  []string{"market news", "market news"},
			maxDF: 0.7,
			err:   PrunedVocabularyErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := NewVectorizer(VectorizerConfig{MaxDF: tt.maxDF, StopWords: english(t)})
			_, err := v.FitTransform(tt.docs)
			assert.True(t, errors.Is(err, tt.err), "unexpected error: %v", err)
		})
	}
}
