package kafka_client

type KafkaConfig struct {
	Broker string
	Topic  string
}

func NewKafkaConfig(broker, topic string) KafkaConfig {
	if broker == "" {
		broker = "localhost:29092"
	}
	if topic == "" {
		topic = KAFKA_TOPIC_SENTIMENT_RESULTS
	}
	return KafkaConfig{Broker: broker, Topic: topic}
}
