package ml

import (
	"errors"
	"fmt"
	"sort"
)

var UnknownLabelErr = errors.New("unknown label")

// LabelEncoder maps labels to codes in sorted label order.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit collects the distinct labels.
func (e *LabelEncoder) Fit(labels []string) {
	codes := make(map[string]int)
	for _, l := range labels {
		codes[l] = 0
	}
	classes := make([]string, 0, len(codes))
	for l := range codes {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	for i, l := range classes {
		codes[l] = i
	}
	e.classes = classes
	e.codes = codes
}

// Transform encodes the labels.
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		c, ok := e.codes[l]
		if !ok {
			return nil, fmt.Errorf("'%s' at row %d: %w", l, i, UnknownLabelErr)
		}
		out[i] = c
	}
	return out, nil
}

func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	e.Fit(labels)
	return e.Transform(labels)
}

// Inverse returns the label for the given code.
func (e *LabelEncoder) Inverse(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("code %d outside [0,%d): %w", code, len(e.classes), UnknownLabelErr)
	}
	return e.classes[code], nil
}

// Classes returns the labels, indexed by their code.
func (e *LabelEncoder) Classes() []string {
	return e.classes
}

// Mapping returns code to label.
func (e *LabelEncoder) Mapping() map[int]string {
	m := make(map[int]string, len(e.classes))
	for i, l := range e.classes {
		m[i] = l
	}
	return m
}
