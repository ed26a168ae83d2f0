package ml

import "sort"

// Metadata describes a trained model.
type Metadata struct {
	Samples  int
	Features []float64
	Accuracy float64
}

func NewMetadata() Metadata {
	return Metadata{
		Features: make([]float64, 0),
	}
}

// Feature is a named feature with its importance.
type Feature struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// Top returns the k most important features, named after the given terms.
func (m Metadata) Top(terms []string, k int) []Feature {
	features := make([]Feature, 0, len(m.Features))
	for j, v := range m.Features {
		if v > 0 && j < len(terms) {
			features = append(features, Feature{Name: terms[j], Importance: v})
		}
	}
	sort.SliceStable(features, func(a, b int) bool { return features[a].Importance > features[b].Importance })
	if len(features) > k {
		features = features[:k]
	}
	return features
}
