package sinks

import (
	"context"
	"log/slog"

	"github.com/spacesedan/sentireview/internal/clients/kafka_client"
	"github.com/spacesedan/sentireview/internal/models"
	"github.com/spacesedan/sentireview/internal/utils"
)

// Publisher is satisfied by kafka_client.Producer.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close()
}

// ResultBatch is one Kafka message worth of analyzed reviews.
type ResultBatch struct {
	RunID   string                  `json:"run_id"`
	Backend string                  `json:"backend"`
	Seq     int                     `json:"seq"`
	Reviews []models.AnalyzedReview `json:"reviews"`
}

// RunSummary closes a run on the topic.
type RunSummary struct {
	RunID    string                 `json:"run_id"`
	Backend  string                 `json:"backend"`
	Batches  int                    `json:"batches"`
	Summary  models.Summary         `json:"summary"`
	Failures []models.RecordFailure `json:"failures,omitempty"`
}

type KafkaSink struct {
	publisher Publisher
	batchSize int
}

// NewKafkaSink batches reviews batchSize per message, falling back to
// kafka_client.BATCH_SIZE when batchSize is not positive.
func NewKafkaSink(p Publisher, batchSize int) *KafkaSink {
	if batchSize < 1 {
		batchSize = kafka_client.BATCH_SIZE
	}
	return &KafkaSink{publisher: p, batchSize: batchSize}
}

func (k *KafkaSink) Name() string { return "kafka" }

// Publish sends the results in batches keyed by run ID, then the summary.
func (k *KafkaSink) Publish(ctx context.Context, report *models.Report) error {
	seq := 0
	err := utils.Chunk(report.Results, k.batchSize, "kafka_results", func(batch []models.AnalyzedReview) error {
		msg := ResultBatch{RunID: report.RunID, Backend: report.Backend, Seq: seq, Reviews: batch}
		seq++
		return k.publisher.Publish(ctx, report.RunID, msg)
	})
	if err != nil {
		return err
	}

	summary := RunSummary{
		RunID:    report.RunID,
		Backend:  report.Backend,
		Batches:  seq,
		Summary:  report.Summary,
		Failures: report.Failures,
	}
	if err := k.publisher.Publish(ctx, report.RunID, summary); err != nil {
		return err
	}

	slog.Info("[KafkaSink] Published run",
		slog.String("run_id", report.RunID),
		slog.Int("batches", seq))
	return nil
}

func (k *KafkaSink) Close() error {
	k.publisher.Close()
	return nil
}
