package kafka_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKafkaConfig(t *testing.T) {
	cfg := NewKafkaConfig("", "")
	assert.Equal(t, "localhost:29092", cfg.Broker)
	assert.Equal(t, KAFKA_TOPIC_SENTIMENT_RESULTS, cfg.Topic)

	cfg = NewKafkaConfig("kafka:9092", "reviews")
	assert.Equal(t, "kafka:9092", cfg.Broker)
	assert.Equal(t, "reviews", cfg.Topic)
}
