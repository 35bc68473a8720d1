package sinks

import (
	"context"

	"github.com/spacesedan/sentireview/internal/db"
	"github.com/spacesedan/sentireview/internal/models"
	"github.com/spacesedan/sentireview/internal/utils"
)

type DynamoDBSink struct {
	store *db.SentimentStore
}

func NewDynamoDBSink(store *db.SentimentStore) *DynamoDBSink {
	return &DynamoDBSink{store: store}
}

func (d *DynamoDBSink) Name() string { return "dynamodb" }

func (d *DynamoDBSink) Publish(ctx context.Context, report *models.Report) error {
	return utils.Chunk(report.Results, db.MAX_BATCH_WRITE_ITEMS, "dynamodb_results", func(batch []models.AnalyzedReview) error {
		return d.store.BatchInsertSentimentResults(ctx, report.RunID, report.Backend, batch)
	})
}

func (d *DynamoDBSink) Close() error { return nil }
