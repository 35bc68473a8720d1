package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		polarity float64
		want     Label
	}{
		{1.0, LabelPositive},
		{0.0001, LabelPositive},
		{0, LabelNeutral},
		{math.Copysign(0, -1), LabelNeutral},
		{-0.0001, LabelNegative},
		{-1.0, LabelNegative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.polarity), "polarity %v", tt.polarity)
	}
}

func TestRawRecord_HasText(t *testing.T) {
	s := "hello"
	var nilPtr *string

	assert.True(t, RawRecord{Text: "hello"}.HasText())
	assert.True(t, RawRecord{Text: &s}.HasText())
	assert.True(t, RawRecord{Text: 42}.HasText())
	assert.False(t, RawRecord{}.HasText())
	assert.False(t, RawRecord{Text: nilPtr}.HasText())

	assert.Equal(t, "hello", RawRecord{Text: &s}.TextString())
	assert.Equal(t, "", RawRecord{Text: 42}.TextString())
}

func TestNewSummary(t *testing.T) {
	results := []AnalyzedReview{
		{Result: SentimentResult{Label: LabelPositive, Polarity: 0.5}},
		{Result: SentimentResult{Label: LabelPositive, Polarity: 0.2}},
		{Result: SentimentResult{Label: LabelNegative, Polarity: -0.3}},
		{Result: SentimentResult{Label: LabelNeutral}},
	}

	s := NewSummary(results, 5, 1)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 2, s.Counts[LabelPositive])
	assert.Equal(t, 1, s.Counts[LabelNegative])
	assert.Equal(t, 1, s.Counts[LabelNeutral])
	assert.InDelta(t, 0.5, s.Proportions[LabelPositive], 1e-9)
	assert.InDelta(t, 0.25, s.Proportions[LabelNeutral], 1e-9)
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(nil, 0, 0)
	for _, label := range Labels {
		assert.Equal(t, 0, s.Counts[label])
		assert.Equal(t, 0.0, s.Proportions[label])
	}
}

func TestReport_ByLabel(t *testing.T) {
	r := &Report{Results: []AnalyzedReview{
		{Record: RawRecord{ID: "1"}, Result: SentimentResult{Label: LabelPositive}},
		{Record: RawRecord{ID: "2"}, Result: SentimentResult{Label: LabelNegative}},
		{Record: RawRecord{ID: "3"}, Result: SentimentResult{Label: LabelPositive}},
		{Record: RawRecord{ID: "4"}, Result: SentimentResult{Label: LabelPositive}},
	}}

	got := r.ByLabel(LabelPositive, 2)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].Record.ID)
		assert.Equal(t, "3", got[1].Record.ID)
	}
	assert.Empty(t, r.ByLabel(LabelNeutral, 3))
}
