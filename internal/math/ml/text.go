package ml

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits the text into lowercase word tokens of at least two runes.
// Words are runs of letters, numbers and underscores, taken after NFC composition,
// so a combining mark that has no precomposed form ends the word.
func Tokenize(text string) []string {
	text = strings.ToLower(norm.NFC.String(text))

	var tokens []string
	var current strings.Builder
	n := 0

	flush := func() {
		if n >= 2 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		n = 0
	}

	for _, r := range text {
		if isWord(r) {
			current.WriteRune(r)
			n++
		} else if n > 0 {
			flush()
		}
	}
	flush()

	return tokens
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// StopWords is a set of tokens excluded from the vocabulary.
type StopWords map[string]struct{}

func (s StopWords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// NewStopWords creates a stop word set from the given words.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// LookupStopWords returns the built-in list for the given name.
// An empty name means no stop words.
func LookupStopWords(name string) (StopWords, bool) {
	switch strings.ToLower(name) {
	case "":
		return NewStopWords(), true
	case "english":
		return NewStopWords(englishStopWords...), true
	}
	return nil, false
}
