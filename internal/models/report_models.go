package models

type Summary struct {
	Total       int               `json:"total" yaml:"total"`
	Failed      int               `json:"failed" yaml:"failed"`
	Counts      map[Label]int     `json:"counts" yaml:"counts"`
	Proportions map[Label]float64 `json:"proportions" yaml:"proportions"`
}

// NewSummary tallies labels over the analyzed reviews. total is the number of
// records that entered processing, failed is how many of those were dropped.
func NewSummary(results []AnalyzedReview, total, failed int) Summary {
	s := Summary{
		Total:       total,
		Failed:      failed,
		Counts:      make(map[Label]int, len(Labels)),
		Proportions: make(map[Label]float64, len(Labels)),
	}
	for _, label := range Labels {
		s.Counts[label] = 0
		s.Proportions[label] = 0
	}
	for _, r := range results {
		s.Counts[r.Result.Label]++
	}
	if len(results) == 0 {
		return s
	}
	for label, n := range s.Counts {
		s.Proportions[label] = float64(n) / float64(len(results))
	}
	return s
}

type SimilarityExample struct {
	TextA string  `json:"text_a" yaml:"text_a"`
	TextB string  `json:"text_b" yaml:"text_b"`
	Score float64 `json:"score" yaml:"score"`
}

type Report struct {
	RunID      string             `json:"run_id" yaml:"run_id"`
	Backend    string             `json:"backend" yaml:"backend"`
	Results    []AnalyzedReview   `json:"results" yaml:"results"`
	Failures   []RecordFailure    `json:"failures,omitempty" yaml:"failures,omitempty"`
	Summary    Summary            `json:"summary" yaml:"summary"`
	Similarity *SimilarityExample `json:"similarity,omitempty" yaml:"similarity,omitempty"`
}

// ByLabel returns up to limit results carrying the given label, in input order.
func (r *Report) ByLabel(label Label, limit int) []AnalyzedReview {
	var out []AnalyzedReview
	for _, res := range r.Results {
		if limit > 0 && len(out) >= limit {
			break
		}
		if res.Result.Label == label {
			out = append(out, res)
		}
	}
	return out
}
