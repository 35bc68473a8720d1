// Package sinks publishes finished reports to external systems. The console
// report is always printed; sinks are extra destinations enabled by config.
package sinks

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacesedan/sentireview/config"
	"github.com/spacesedan/sentireview/internal/clients"
	"github.com/spacesedan/sentireview/internal/clients/kafka_client"
	"github.com/spacesedan/sentireview/internal/db"
	"github.com/spacesedan/sentireview/internal/models"
)

type ResultSink interface {
	Name() string
	Publish(ctx context.Context, report *models.Report) error
	Close() error
}

// New opens every enabled sink. On error the sinks opened so far are closed.
func New(ctx context.Context, cfg config.SinksConfig) ([]ResultSink, error) {
	var out []ResultSink

	if cfg.Kafka.Enabled {
		producer, err := kafka_client.NewProducer(kafka_client.NewKafkaConfig(cfg.Kafka.Broker, cfg.Kafka.Topic))
		if err != nil {
			return nil, err
		}
		out = append(out, NewKafkaSink(producer, cfg.Kafka.BatchSize))
	}

	if cfg.DynamoDB.Enabled {
		awsCfg, err := clients.GetAWSConfig(ctx, cfg.DynamoDB.Region)
		if err != nil {
			_ = CloseAll(out)
			return nil, err
		}
		client := clients.GetDynamoDBClient(awsCfg, cfg.DynamoDB.Endpoint)
		out = append(out, NewDynamoDBSink(db.NewSentimentStore(client, cfg.DynamoDB.Table)))
	}

	return out, nil
}

// PublishAll sends the report to every sink and joins their errors.
func PublishAll(ctx context.Context, sinks []ResultSink, report *models.Report) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Publish(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("%s sink: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func CloseAll(sinks []ResultSink) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
