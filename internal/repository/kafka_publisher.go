package repository

import (
	"context"

	"SolarAPI/internal/domain/models"
	domrepo "SolarAPI/internal/domain/repository"
	pkgkafka "SolarAPI/pkg/kafka"
)

// KafkaEventPublisher publishes analysis events to Kafka.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string) domrepo.EventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

func (p *KafkaEventPublisher) PublishAnalysis(ctx context.Context, event models.AnalysisEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(event.Operation), event)
}

func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
