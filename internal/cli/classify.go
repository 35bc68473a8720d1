package cli

import (
	"context"

	"github.com/spacesedan/sentireview/internal/report"
	"github.com/spacesedan/sentireview/internal/sentiment"
	"github.com/spf13/cobra"
)

var sampleReviews = []string{
	"This product is amazing, exceeded my expectations!",
	"Terrible quality. It broke after one use and I want a refund.",
	"It works fine, nothing special but does the job.",
}

func newClassifyCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Normalize and classify individual reviews",
		Long: `Classify prints the original text, its normalized form and the sentiment
result for each argument. Without arguments it runs three sample reviews.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			texts := args
			if len(texts) == 0 {
				texts = sampleReviews
			}

			engine, err := sentiment.NewEngine(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer engine.Close()

			examples, err := classifyAll(ctx, engine, texts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case report.FormatJSON:
				return report.WriteJSON(w, examples)
			case report.FormatYAML:
				return report.WriteYAML(w, examples)
			default:
				return report.WriteManualExamples(w, examples)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "output format (text, json, yaml)")
	return cmd
}

func classifyAll(ctx context.Context, engine *sentiment.Engine, texts []string) ([]report.ManualExample, error) {
	normalizer := engine.Normalizer()
	classifier := engine.Classifier()

	examples := make([]report.ManualExample, 0, len(texts))
	for _, text := range texts {
		clean := normalizer.Normalize(text)
		result, err := classifier.Classify(ctx, clean)
		if err != nil {
			return nil, err
		}
		examples = append(examples, report.ManualExample{Original: text, Cleaned: clean, Result: result})
	}
	return examples, nil
}
