package models

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Labels lists every label in report order.
var Labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

// LabelFor maps a polarity to a label by its sign.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > 0:
		return LabelPositive
	case polarity < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

type SentimentResult struct {
	Label    Label   `json:"sentiment" yaml:"sentiment" dynamodbav:"sentiment_label"`
	Polarity float64 `json:"polarity" yaml:"polarity" dynamodbav:"polarity"`
}

type AnalyzedReview struct {
	Record         RawRecord       `json:"record" yaml:"record"`
	NormalizedText string          `json:"clean_text" yaml:"clean_text"`
	Result         SentimentResult `json:"result" yaml:"result"`
}

type RecordFailure struct {
	Record RawRecord `json:"record" yaml:"record"`
	Error  string    `json:"error" yaml:"error"`
}
