package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spacesedan/sentireview/internal/models"
)

type Classifier struct {
	scorer PolarityScorer
}

func NewClassifier(scorer PolarityScorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify scores normalized text and labels it by the sign of its polarity.
// Empty input is neutral and never reaches the scorer.
func (c *Classifier) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{Label: models.LabelNeutral, Polarity: 0}, nil
	}

	polarity, err := c.scorer.Polarity(ctx, text)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("score text: %w", err)
	}

	polarity = clampPolarity(polarity)
	return models.SentimentResult{
		Label:    models.LabelFor(polarity),
		Polarity: polarity,
	}, nil
}

func clampPolarity(p float64) float64 {
	switch {
	case math.IsNaN(p):
		slog.Warn("[Classifier] Scorer returned NaN, treating as neutral")
		return 0
	case p > 1:
		return 1
	case p < -1:
		return -1
	default:
		return p
	}
}
