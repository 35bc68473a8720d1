package sentiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/spacesedan/sentireview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_EmptyShortCircuits(t *testing.T) {
	scorer := &stubScorer{polarity: 0.9}
	c := NewClassifier(scorer)

	for _, in := range []string{"", "   "} {
		got, err := c.Classify(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, models.SentimentResult{Label: models.LabelNeutral, Polarity: 0}, got)
	}
	assert.Equal(t, 0, scorer.Calls())
}

func TestClassify_SignRule(t *testing.T) {
	tests := []struct {
		polarity float64
		want     models.Label
	}{
		{0.8, models.LabelPositive},
		{1e-9, models.LabelPositive},
		{0, models.LabelNeutral},
		{-1e-9, models.LabelNegative},
		{-0.6, models.LabelNegative},
	}

	for _, tt := range tests {
		scorer := &stubScorer{polarity: tt.polarity}
		got, err := NewClassifier(scorer).Classify(context.Background(), "some text")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Label, "polarity %v", tt.polarity)
		assert.Equal(t, tt.polarity, got.Polarity)
		assert.Equal(t, 1, scorer.Calls())
	}
}

func TestClassify_ClampsOutOfRange(t *testing.T) {
	ctx := context.Background()

	got, err := NewClassifier(&stubScorer{polarity: 3}).Classify(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Polarity)
	assert.Equal(t, models.LabelPositive, got.Label)

	got, err = NewClassifier(&stubScorer{polarity: -7}).Classify(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.Polarity)

	got, err = NewClassifier(&stubScorer{polarity: math.NaN()}).Classify(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentResult{Label: models.LabelNeutral, Polarity: 0}, got)
}

func TestClassify_ScorerError(t *testing.T) {
	boom := errors.New("model offline")
	_, err := NewClassifier(&stubScorer{err: boom}).Classify(context.Background(), "text")
	assert.ErrorIs(t, err, boom)
}

func TestNormalizeThenClassify_EndToEnd(t *testing.T) {
	n := NewNormalizer(newWordTokenizer(testStopWords...))
	scorer := &stubScorer{byText: map[string]float64{
		"product amazing exceeded expectations": 0.6,
	}}

	clean := n.Normalize("This product is amazing, exceeded my expectations!")
	got, err := NewClassifier(scorer).Classify(context.Background(), clean)
	require.NoError(t, err)
	assert.Equal(t, models.LabelPositive, got.Label)
	assert.Equal(t, 0.6, got.Polarity)
}
