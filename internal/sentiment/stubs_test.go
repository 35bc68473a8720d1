package sentiment

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/spacesedan/sentireview/internal/models"
)

// wordTokenizer splits on whitespace and peels punctuation into its own tokens.
type wordTokenizer struct {
	stop map[string]bool
}

func newWordTokenizer(stop ...string) *wordTokenizer {
	t := &wordTokenizer{stop: make(map[string]bool)}
	for _, w := range stop {
		t.stop[w] = true
	}
	return t
}

func (t *wordTokenizer) Tokenize(text string) []models.Token {
	var tokens []models.Token
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		tokens = append(tokens, models.Token{Text: w, IsStop: t.stop[w], IsAlpha: isLetters(w)})
		word.Reset()
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, models.Token{Text: string(r)})
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

type stubScorer struct {
	mu       sync.Mutex
	calls    int
	polarity float64
	byText   map[string]float64
	err      error
}

func (s *stubScorer) Polarity(_ context.Context, text string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if p, ok := s.byText[text]; ok {
		return p, nil
	}
	return s.polarity, nil
}

func (s *stubScorer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
