// Package pipeline drives a batch of raw reviews through normalization and
// classification and aggregates the outcome.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/sentireview/internal/embedding"
	"github.com/spacesedan/sentireview/internal/models"
	"github.com/spacesedan/sentireview/internal/sentiment"
	"golang.org/x/sync/errgroup"
)

// ErrNoData is returned when no record carries review text.
var ErrNoData = errors.New("no review text to analyze")

const (
	PolicyFail    = "fail"
	PolicyIsolate = "isolate"
)

type Options struct {
	Workers       int
	FailurePolicy string
	// Embedder enables the similarity example when set.
	Embedder embedding.Embedder
}

type Driver struct {
	normalizer *sentiment.Normalizer
	classifier *sentiment.Classifier
	backend    string
	opts       Options
}

func NewDriver(tokenizer sentiment.Tokenizer, scorer sentiment.PolarityScorer, backend string, opts Options) *Driver {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.FailurePolicy == "" {
		opts.FailurePolicy = PolicyFail
	}
	return &Driver{
		normalizer: sentiment.NewNormalizer(tokenizer),
		classifier: sentiment.NewClassifier(scorer),
		backend:    backend,
		opts:       opts,
	}
}

// NewDriverFromEngine builds a driver around a configured engine.
func NewDriverFromEngine(e *sentiment.Engine, opts Options) *Driver {
	return NewDriver(e.Tokenizer, e.PolarityScorer, e.Backend, opts)
}

type outcome struct {
	review models.AnalyzedReview
	err    error
}

// Run analyzes every record that has text. Results keep input order. Under
// the fail policy the first scoring error aborts the batch; under isolate the
// record is reported as a failure and the batch continues.
func (d *Driver) Run(ctx context.Context, records []models.RawRecord) (*models.Report, error) {
	start := time.Now()

	kept := make([]models.RawRecord, 0, len(records))
	for _, r := range records {
		if r.HasText() {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoData
	}
	if dropped := len(records) - len(kept); dropped > 0 {
		slog.Info("[Driver] Skipping records without text", slog.Int("dropped", dropped))
	}

	runID := uuid.NewString()
	slog.Info("[Driver] Starting run",
		slog.String("run_id", runID),
		slog.Int("records", len(kept)),
		slog.Int("workers", d.opts.Workers),
		slog.String("failure_policy", d.opts.FailurePolicy))

	outcomes := make([]outcome, len(kept))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)

	for i, rec := range kept {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			review, err := d.analyze(gctx, rec)
			if err != nil && d.opts.FailurePolicy == PolicyFail {
				return fmt.Errorf("record %s (row %d): %w", rec.ID, rec.Row, err)
			}
			outcomes[i] = outcome{review: review, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &models.Report{RunID: runID, Backend: d.backend}
	for i, o := range outcomes {
		if o.err != nil {
			slog.Warn("[Driver] Record failed",
				slog.String("id", kept[i].ID),
				slog.String("error", o.err.Error()))
			report.Failures = append(report.Failures, models.RecordFailure{Record: kept[i], Error: o.err.Error()})
			continue
		}
		report.Results = append(report.Results, o.review)
	}
	report.Summary = models.NewSummary(report.Results, len(kept), len(report.Failures))

	if d.opts.Embedder != nil {
		report.Similarity = d.similarity(ctx, report.Results)
	}

	slog.Info("[Driver] Run complete",
		slog.String("run_id", runID),
		slog.Int("analyzed", len(report.Results)),
		slog.Int("failed", len(report.Failures)),
		slog.Duration("duration", time.Since(start)))
	return report, nil
}

func (d *Driver) analyze(ctx context.Context, rec models.RawRecord) (models.AnalyzedReview, error) {
	clean := d.normalizer.Normalize(rec.Text)
	result, err := d.classifier.Classify(ctx, clean)
	if err != nil {
		return models.AnalyzedReview{}, err
	}
	return models.AnalyzedReview{Record: rec, NormalizedText: clean, Result: result}, nil
}

// similarity compares the first two normalized reviews. A failure here only
// costs the example, never the run.
func (d *Driver) similarity(ctx context.Context, results []models.AnalyzedReview) *models.SimilarityExample {
	if len(results) < 2 {
		return nil
	}
	a, b := results[0].NormalizedText, results[1].NormalizedText
	score, err := embedding.Similarity(ctx, d.opts.Embedder, a, b)
	if err != nil {
		slog.Warn("[Driver] Similarity example failed", slog.String("error", err.Error()))
		return nil
	}
	return &models.SimilarityExample{TextA: a, TextB: b, Score: score}
}
