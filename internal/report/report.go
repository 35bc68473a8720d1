// Package report renders analysis results for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spacesedan/sentireview/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	previewRunes = 200
)

type TextOptions struct {
	// Examples is how many reviews to show per label.
	Examples int
	// Similarity prints the similarity section even when no example exists.
	Similarity bool
}

// Write renders r in the requested format.
func Write(w io.Writer, r *models.Report, format string, opts TextOptions) error {
	switch format {
	case "", FormatText:
		return WriteText(w, r, opts)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func WriteText(w io.Writer, r *models.Report, opts TextOptions) error {
	p := &printer{w: w}

	p.section("Sentiment distribution (counts)")
	p.table(func(tw io.Writer) {
		for _, label := range models.Labels {
			fmt.Fprintf(tw, "%s\t%d\n", label, r.Summary.Counts[label])
		}
		if r.Summary.Failed > 0 {
			fmt.Fprintf(tw, "failed\t%d\n", r.Summary.Failed)
		}
	})

	p.section("Sentiment distribution (proportions)")
	p.table(func(tw io.Writer) {
		for _, label := range models.Labels {
			fmt.Fprintf(tw, "%s\t%.3f\n", label, r.Summary.Proportions[label])
		}
	})

	for _, label := range models.Labels {
		p.section(fmt.Sprintf("Example %s reviews", label))
		examples := r.ByLabel(label, opts.Examples)
		if len(examples) == 0 {
			p.printf("No %s reviews found.\n", label)
			continue
		}
		for _, ex := range examples {
			p.printf("- Review: %q\n", Truncate(ex.Record.TextString(), previewRunes))
			p.printf("  Polarity: %.3f\n", ex.Result.Polarity)
		}
	}

	switch {
	case r.Similarity != nil:
		p.section("Similarity example")
		p.printf("Clean review 0: %q\n", Truncate(r.Similarity.TextA, previewRunes))
		p.printf("Clean review 1: %q\n", Truncate(r.Similarity.TextB, previewRunes))
		p.printf("Similarity score: %.3f\n", r.Similarity.Score)
	case opts.Similarity && len(r.Results) < 2:
		p.printf("\nNot enough reviews to compute similarity (need at least 2).\n")
	case opts.Similarity:
		p.printf("\nSimilarity example unavailable.\n")
	}

	return p.err
}

// ManualExample is one row of the classify command's output.
type ManualExample struct {
	Original string                 `json:"original" yaml:"original"`
	Cleaned  string                 `json:"cleaned" yaml:"cleaned"`
	Result   models.SentimentResult `json:"result" yaml:"result"`
}

func WriteManualExamples(w io.Writer, examples []ManualExample) error {
	p := &printer{w: w}
	p.section("Manual test examples")
	for _, ex := range examples {
		p.printf("\nOriginal: %q\n", ex.Original)
		p.printf("Cleaned : %q\n", ex.Cleaned)
		p.printf("Result  : %s (polarity %.3f)\n", ex.Result.Label, ex.Result.Polarity)
	}
	return p.err
}

// Truncate cuts s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:n]), isSpace) + "..."
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

// printer remembers the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	p.printf("\n=== %s ===\n", title)
}

func (p *printer) table(rows func(io.Writer)) {
	if p.err != nil {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	rows(tw)
	p.err = tw.Flush()
}
