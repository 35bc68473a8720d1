package sentiment

import (
	"strings"
)

type Normalizer struct {
	tokenizer Tokenizer
}

func NewNormalizer(tokenizer Tokenizer) *Normalizer {
	return &Normalizer{tokenizer: tokenizer}
}

// Normalize lowercases and trims text, tokenizes it, and keeps the alphabetic
// non-stop-word tokens joined by single spaces. Anything that is not a string
// (or a non-nil *string) normalizes to "".
func (n *Normalizer) Normalize(text any) string {
	var s string
	switch v := text.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return ""
		}
		s = *v
	default:
		return ""
	}

	clean := strings.TrimSpace(strings.ToLower(s))
	if clean == "" {
		return ""
	}

	tokens := n.tokenizer.Tokenize(clean)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsStop || !tok.IsAlpha {
			continue
		}
		kept = append(kept, strings.ToLower(tok.Text))
	}

	return strings.Join(kept, " ")
}
