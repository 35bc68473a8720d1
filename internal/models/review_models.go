package models

// RawRecord is a single row of the review dataset. Text is nil when the
// source cell was empty.
type RawRecord struct {
	ID   string `json:"id" yaml:"id"`
	Row  int    `json:"row" yaml:"row"`
	Text any    `json:"text" yaml:"text"`
}

// HasText reports whether the record carries a text field at all.
func (r RawRecord) HasText() bool {
	if r.Text == nil {
		return false
	}
	if p, ok := r.Text.(*string); ok {
		return p != nil
	}
	return true
}

// TextString returns the record text for display, or "" when it is not textual.
func (r RawRecord) TextString() string {
	switch v := r.Text.(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}

type Token struct {
	Text    string `json:"text"`
	IsStop  bool   `json:"is_stop"`
	IsAlpha bool   `json:"is_alpha"`
}
