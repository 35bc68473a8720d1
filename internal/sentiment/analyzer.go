// Package sentiment turns review text into sentiment labels. Tokenization and
// polarity scoring are delegated to the capabilities defined here, so every
// NLP backend is an explicit dependency built once and passed in.
package sentiment

import (
	"context"

	"github.com/spacesedan/sentireview/internal/models"
)

// Tokenizer splits text into tokens flagged as stop words and/or alphabetic.
type Tokenizer interface {
	Tokenize(text string) []models.Token
}

// PolarityScorer returns a polarity in [-1.0, 1.0] for text.
type PolarityScorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// Analyzer is the full NLP capability the pipeline needs.
type Analyzer interface {
	Tokenizer
	PolarityScorer
}
