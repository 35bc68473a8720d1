package kafka_client

import "time"

const (
	KAFKA_TOPIC_SENTIMENT_RESULTS = "sentiment-results" // analyzed reviews, one JSON batch per message
)

const (
	BATCH_SIZE       = 50
	MAX_RETRIES      = 3
	RETRY_DELAY      = 2 * time.Second
	FLUSH_TIMEOUT_MS = 5000
)
