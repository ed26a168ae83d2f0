package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var (
	EmptyVocabularyErr  = errors.New("empty vocabulary; perhaps the documents only contain stop words")
	PrunedVocabularyErr = errors.New("after pruning, no terms remain; try a higher max_df")
	NotFittedErr        = errors.New("vectorizer is not fitted")
)

// VectorizerConfig configures the tf-idf vectorizer.
// MaxDF is the fraction of documents above which a term is dropped.
type VectorizerConfig struct {
	MaxDF     float64
	StopWords StopWords
}

// Vectorizer converts documents to l2 normalised tf-idf rows.
type Vectorizer struct {
	cfg        VectorizerConfig
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

func NewVectorizer(cfg VectorizerConfig) *Vectorizer {
	if cfg.MaxDF <= 0 {
		cfg.MaxDF = 1
	}
	if cfg.StopWords == nil {
		cfg.StopWords = NewStopWords()
	}
	return &Vectorizer{cfg: cfg}
}

func (v *Vectorizer) tokens(doc string) []string {
	all := Tokenize(doc)
	kept := all[:0]
	for _, t := range all {
		if !v.cfg.StopWords.Contains(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Fit learns the vocabulary and the idf weights from the documents.
func (v *Vectorizer) Fit(docs []string) error {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range v.tokens(doc) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	if len(df) == 0 {
		return EmptyVocabularyErr
	}

	n := len(docs)
	maxCount := v.cfg.MaxDF * float64(n)
	terms := make([]string, 0, len(df))
	for t, c := range df {
		if float64(c) <= maxCount {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return fmt.Errorf("%d terms above max_df %v: %w", len(df), v.cfg.MaxDF, PrunedVocabularyErr)
	}
	sort.Strings(terms)

	v.terms = terms
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for j, t := range terms {
		v.vocabulary[t] = j
		v.idf[j] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}
	return nil
}

// Transform converts the documents with the fitted vocabulary.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(docs []string) (*Matrix, error) {
	if v.vocabulary == nil {
		return nil, NotFittedErr
	}
	rows := make([]Vector, len(docs))
	for i, doc := range docs {
		counts := make(map[int]float64)
		for _, t := range v.tokens(doc) {
			if j, ok := v.vocabulary[t]; ok {
				counts[j]++
			}
		}
		indices := make([]int, 0, len(counts))
		for j := range counts {
			indices = append(indices, j)
		}
		sort.Ints(indices)
		values := make([]float64, len(indices))
		for k, j := range indices {
			values[k] = counts[j] * v.idf[j]
		}
		if norm := floats.Norm(values, 2); norm > 0 {
			floats.Scale(1/norm, values)
		}
		rows[i] = Vector{Indices: indices, Values: values}
	}
	return NewMatrix(rows, len(v.terms))
}

// FitTransform fits on the documents and transforms them.
func (v *Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Vocabulary returns the terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return v.terms
}

// IDF returns the idf weight of each column.
func (v *Vectorizer) IDF() []float64 {
	return v.idf
}
