package ml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelEncoder(t *testing.T) {

	labels := []string{"REAL", "FAKE", "REAL", "satire", "FAKE"}

	e := NewLabelEncoder()
	codes, err := e.FitTransform(labels)
	assert.NoError(t, err)

	assert.Equal(t, []string{"FAKE", "REAL", "satire"}, e.Classes())
	assert.Equal(t, []int{1, 0, 1, 2, 0}, codes)
	assert.Equal(t, map[int]string{0: "FAKE", 1: "REAL", 2: "satire"}, e.Mapping())

	// encode then decode returns the label
	for i, l := range labels {
		decoded, err := e.Inverse(codes[i])
		assert.NoError(t, err)
		assert.Equal(t, l, decoded)
	}

	// every code maps back to exactly one label
	seen := make(map[string]bool)
	for c := 0; c < len(e.Classes()); c++ {
		l, err := e.Inverse(c)
		assert.NoError(t, err)
		assert.False(t, seen[l])
		seen[l] = true
	}

	_, err = e.Inverse(3)
	assert.True(t, errors.Is(err, UnknownLabelErr))
	_, err = e.Inverse(-1)
	assert.True(t, errors.Is(err, UnknownLabelErr))

	_, err = e.Transform([]string{"REAL", "unknown"})
	assert.True(t, errors.Is(err, UnknownLabelErr))

}
