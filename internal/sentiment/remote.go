package sentiment

import (
	"context"

	"github.com/spacesedan/sentireview/internal/clients"
)

// RemoteScorer delegates to an HTTP polarity service.
type RemoteScorer struct {
	client *clients.InferenceClient
}

func NewRemoteScorer(client *clients.InferenceClient) *RemoteScorer {
	return &RemoteScorer{client: client}
}

func (r *RemoteScorer) Polarity(ctx context.Context, text string) (float64, error) {
	return r.client.GetPolarity(ctx, text)
}

func (r *RemoteScorer) HealthCheck(ctx context.Context) bool {
	return r.client.HealthCheck(ctx)
}
