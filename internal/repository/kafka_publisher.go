package repository

import (
	"context"
	"fmt"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	pkgkafka "RiskFolio/pkg/kafka"
)

// KafkaPublisher implements repository.EventPublisher on a Kafka topic.
// Events for the same portfolio share a key so they stay ordered.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka event publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.EventPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishSnapshotComputed(ctx context.Context, ev models.SnapshotEvent) error {
	key := []byte(fmt.Sprintf("portfolio-%d", ev.PortfolioID))
	if err := p.producer.Publish(ctx, p.topic, key, ev); err != nil {
		return fmt.Errorf("publish snapshot event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
