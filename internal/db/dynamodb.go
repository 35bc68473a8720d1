package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/sentireview/internal/models"
)

const (
	SENTIMENT_RESULTS_TABLE_NAME = "SentimentResults"
	MAX_BATCH_WRITE_ITEMS        = 25
	MAX_UNPROCESSED_RETRIES      = 3
	RESULT_TTL                   = 24 * time.Hour
)

// BatchWriter is the slice of the DynamoDB API the store needs.
type BatchWriter interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type SentimentStore struct {
	client  BatchWriter
	table   string
	backoff time.Duration
	now     func() time.Time
}

func NewSentimentStore(client BatchWriter, table string) *SentimentStore {
	if table == "" {
		table = SENTIMENT_RESULTS_TABLE_NAME
	}
	return &SentimentStore{
		client:  client,
		table:   table,
		backoff: 500 * time.Millisecond,
		now:     time.Now,
	}
}

type sentimentItem struct {
	RunID     string  `dynamodbav:"run_id"`
	ReviewID  string  `dynamodbav:"review_id"`
	Row       int     `dynamodbav:"row"`
	Text      string  `dynamodbav:"text,omitempty"`
	CleanText string  `dynamodbav:"clean_text,omitempty"`
	Label     string  `dynamodbav:"sentiment_label"`
	Polarity  float64 `dynamodbav:"polarity"`
	Backend   string  `dynamodbav:"backend"`
	CreatedAt int64   `dynamodbav:"created_at"`
	TTL       int64   `dynamodbav:"ttl"`
}

// ResultToDynamoDBItem flattens one analyzed review into a table item keyed
// by run_id and review_id.
func ResultToDynamoDBItem(runID, backend string, review models.AnalyzedReview, now time.Time) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(sentimentItem{
		RunID:     runID,
		ReviewID:  review.Record.ID,
		Row:       review.Record.Row,
		Text:      review.Record.TextString(),
		CleanText: review.NormalizedText,
		Label:     string(review.Result.Label),
		Polarity:  review.Result.Polarity,
		Backend:   backend,
		CreatedAt: now.Unix(),
		TTL:       now.Add(RESULT_TTL).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] Failed to marshal review %s: %w", review.Record.ID, err)
	}
	return item, nil
}

// BatchInsertSentimentResults writes at most MAX_BATCH_WRITE_ITEMS reviews in
// one request, retrying unprocessed items with backoff.
func (s *SentimentStore) BatchInsertSentimentResults(ctx context.Context, runID, backend string, reviews []models.AnalyzedReview) error {
	if len(reviews) == 0 {
		return nil
	}
	if len(reviews) > MAX_BATCH_WRITE_ITEMS {
		return fmt.Errorf("[DynamoDB] batch of %d exceeds the %d item limit", len(reviews), MAX_BATCH_WRITE_ITEMS)
	}

	now := s.now()
	writeRequests := make([]types.WriteRequest, 0, len(reviews))
	for _, review := range reviews {
		item, err := ResultToDynamoDBItem(runID, backend, review, now)
		if err != nil {
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{s.table: writeRequests},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write sentiment results: %w", err)
	}

	retryCount := 0
	backoff := s.backoff
	for len(out.UnprocessedItems) > 0 && retryCount < MAX_UNPROCESSED_RETRIES {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed sentiment items...",
			slog.Int("attempt", retryCount+1),
			slog.Int("remaining", len(out.UnprocessedItems[s.table])))

		out, err = s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Retry error %w", err)
		}
		retryCount++
	}

	if remaining := len(out.UnprocessedItems[s.table]); remaining > 0 {
		return fmt.Errorf("[DynamoDB] %d sentiment items not written after %d retries", remaining, MAX_UNPROCESSED_RETRIES)
	}

	slog.Info("[DynamoDB] Stored sentiment results",
		slog.String("table", s.table),
		slog.Int("count", len(reviews)))
	return nil
}
