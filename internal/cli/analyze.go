package cli

import (
	"context"
	"fmt"

	"github.com/spacesedan/sentireview/internal/dataset"
	"github.com/spacesedan/sentireview/internal/embedding"
	"github.com/spacesedan/sentireview/internal/monitoring"
	"github.com/spacesedan/sentireview/internal/pipeline"
	"github.com/spacesedan/sentireview/internal/report"
	"github.com/spacesedan/sentireview/internal/sentiment"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze [csv]",
		Short: "Classify every review in a CSV export and print a report",
		Long: `Analyze loads the review CSV, drops rows without review text, normalizes
and classifies each review, then prints the label distribution with a few
examples per label.

Example:
  sentireview analyze Datafiniti_Amazon_Consumer_Reviews_of_Amazon_Products_May19.csv
  sentireview analyze reviews.csv --workers 8 --output json
  sentireview analyze reviews.csv --backend hugot --similarity`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Dataset.Path = args[0]
			}
			return a.runAnalyze(cmd.Context(), cmd, output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", report.FormatText, "output format (text, json, yaml)")
	f.Int("workers", 1, "concurrent classification workers")
	f.String("failure-policy", pipeline.PolicyFail, "on a scoring error: fail the run or isolate the record")
	f.Int("examples", 3, "example reviews shown per label")
	f.Bool("similarity", false, "compare the first two reviews with a sentence embedding model")
	f.String("text-column", "reviews.text", "CSV column holding the review text")

	_ = a.v.BindPFlag("pipeline.workers", f.Lookup("workers"))
	_ = a.v.BindPFlag("pipeline.failure_policy", f.Lookup("failure-policy"))
	_ = a.v.BindPFlag("pipeline.examples", f.Lookup("examples"))
	_ = a.v.BindPFlag("similarity.enabled", f.Lookup("similarity"))
	_ = a.v.BindPFlag("dataset.text_column", f.Lookup("text-column"))

	return cmd
}

func (a *app) runAnalyze(ctx context.Context, cmd *cobra.Command, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := a.cfg

	records, err := dataset.Load(cfg.Dataset.Path, dataset.Options{
		TextColumn: cfg.Dataset.TextColumn,
		IDColumn:   cfg.Dataset.IDColumn,
	})
	if err != nil {
		return err
	}

	engine, err := sentiment.NewEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	if cfg.Scorer.Backend == "remote" {
		if err := monitoring.WaitUntilHealthy(ctx, cfg.Scorer.Backend, engine, monitoring.HEALTHCHECK_INTERVAL, monitoring.HEALTHCHECK_ATTEMPTS); err != nil {
			return err
		}
	}

	opts := pipeline.Options{
		Workers:       cfg.Pipeline.Workers,
		FailurePolicy: cfg.Pipeline.FailurePolicy,
	}
	if cfg.Similarity.Enabled {
		embedder, err := newEmbedder(engine, cfg.Similarity.Model, cfg.Similarity.ModelDir)
		if err != nil {
			return err
		}
		opts.Embedder = embedder
	}

	result, err := pipeline.NewDriverFromEngine(engine, opts).Run(ctx, records)
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), result, output, report.TextOptions{
		Examples:   cfg.Pipeline.Examples,
		Similarity: cfg.Similarity.Enabled,
	}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return publish(ctx, a, result)
}

func newEmbedder(engine *sentiment.Engine, model, dir string) (embedding.Embedder, error) {
	client, err := engine.HugotClient()
	if err != nil {
		return nil, err
	}
	return embedding.NewHugotEmbedder(client, model, dir)
}
