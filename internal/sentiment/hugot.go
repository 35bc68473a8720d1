package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/sentireview/internal/clients"
)

const hugotPipelineName = "sentireviewSentimentPipeline"

// HugotScorer runs a local transformer text-classification model.
type HugotScorer struct {
	pipeline *pipelines.TextClassificationPipeline
	mu       sync.Mutex
}

func NewHugotScorer(client *clients.HugotClient, modelName, modelDir string) (*HugotScorer, error) {
	modelPath, err := client.EnsureModel(modelName, modelDir)
	if err != nil {
		return nil, err
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      hugotPipelineName,
	}
	pipeline, err := hugot.NewPipeline(client.Session, config)
	if err != nil {
		return nil, fmt.Errorf("[HugotScorer] Failed to initialize pipeline: %w", err)
	}

	return &HugotScorer{pipeline: pipeline}, nil
}

func (h *HugotScorer) Polarity(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	h.mu.Lock()
	output, err := h.pipeline.RunPipeline([]string{text})
	h.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("[HugotScorer] pipeline failed: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return 0, errors.New("[HugotScorer] pipeline returned no classification")
	}

	best := output.ClassificationOutputs[0][0]
	for _, c := range output.ClassificationOutputs[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return polarityFromLabel(best.Label, float64(best.Score)), nil
}

// polarityFromLabel signs a classifier confidence by its label.
func polarityFromLabel(label string, score float64) float64 {
	switch strings.ToUpper(label) {
	case "POSITIVE", "POS", "LABEL_1":
		return score
	case "NEGATIVE", "NEG", "LABEL_0":
		return -score
	default:
		return 0
	}
}
