package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {

	type test struct {
		input  string
		output []string
	}

	tests := map[string]test{
		"punctuation": {
			input:  "Breaking: stock market rises!",
			output: []string{"breaking", "stock", "market", "rises"},
		},
		"single-characters": {
			input:  "a I x2 b",
			output: []string{"x2"},
		},
		"apostrophe": {
			input:  "You won't believe",
			output: []string{"you", "won", "believe"},
		},
		"underscore-and-digits": {
			input:  "snake_case 2024 9",
			output: []string{"snake_case", "2024"},
		},
		"unicode": {
			input:  "Übermäßig café",
			output: []string{"übermäßig", "café"},
		},
		"decomposed-accent": {
			input:  "cafe\u0301 news",
			output: []string{"café", "news"},
		},
		"combining-mark": {
			input:  "aq\u0301b xy",
			output: []string{"aq", "xy"},
		},
		"empty": {
			input:  "",
			output: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Tokenize(tt.input))
		})
	}
}

func TestLookupStopWords(t *testing.T) {

	english, ok := LookupStopWords("english")
	assert.True(t, ok)
	assert.Equal(t, 318, len(english))
	assert.True(t, english.Contains("the"))
	assert.False(t, english.Contains("market"))

	none, ok := LookupStopWords("")
	assert.True(t, ok)
	assert.Empty(t, none)

	_, ok = LookupStopWords("klingon")
	assert.False(t, ok)

}
