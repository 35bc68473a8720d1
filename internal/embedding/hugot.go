package embedding

import (
	"context"
	"fmt"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/sentireview/internal/clients"
)

const hugotPipelineName = "sentireviewEmbeddingPipeline"

// HugotEmbedder runs a sentence-transformer feature extraction model locally.
type HugotEmbedder struct {
	pipeline *pipelines.FeatureExtractionPipeline
	mu       sync.Mutex
}

func NewHugotEmbedder(client *clients.HugotClient, modelName, modelDir string) (*HugotEmbedder, error) {
	modelPath, err := client.EnsureModel(modelName, modelDir)
	if err != nil {
		return nil, err
	}

	config := hugot.FeatureExtractionConfig{
		ModelPath: modelPath,
		Name:      hugotPipelineName,
		Options: []hugot.FeatureExtractionOption{
			pipelines.WithNormalization(),
		},
	}
	pipeline, err := hugot.NewPipeline(client.Session, config)
	if err != nil {
		return nil, fmt.Errorf("[HugotEmbedder] Failed to initialize pipeline: %w", err)
	}
	return &HugotEmbedder{pipeline: pipeline}, nil
}

func (h *HugotEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	output, err := h.pipeline.RunPipeline(texts)
	h.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("[HugotEmbedder] pipeline failed: %w", err)
	}

	vecs := make([][]float64, len(output.Embeddings))
	for i, emb := range output.Embeddings {
		vecs[i] = toFloat64(emb)
	}
	return vecs, nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
