package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	coinmath "github.com/drakos74/news-forest/internal/math"
	"github.com/drakos74/news-forest/internal/math/ml"
)

var separator = strings.Repeat("-", 30)

// Result is the outcome of a pipeline run.
type Result struct {
	Run         string         `json:"run"`
	Dataset     string         `json:"dataset"`
	Documents   int            `json:"documents"`
	Vocabulary  int            `json:"vocabulary"`
	Train       int            `json:"train"`
	Test        int            `json:"test"`
	Backend     string         `json:"backend"`
	Trees       int            `json:"trees"`
	Correct     int            `json:"correct"`
	Accuracy    float64        `json:"accuracy"`
	Mapping     map[int]string `json:"mapping"`
	TopFeatures []ml.Feature   `json:"top_features"`
	Started     time.Time      `json:"started"`
	Duration    time.Duration  `json:"duration"`
}

// FormatMapping renders the code to label mapping ordered by code, e.g. {0: 'fake', 1: 'real'}.
func FormatMapping(mapping map[int]string) string {
	codes := make([]int, 0, len(mapping))
	for c := range mapping {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%d: '%s'", c, mapping[c])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func printReport(w io.Writer, r *Result) {
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Model Accuracy on Test Set: %s%%\n", coinmath.Percent(r.Accuracy))
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Label mapping (encoded -> original): %s\n", FormatMapping(r.Mapping))
}
