package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sa-pphire/qr-code-gen/internal/dto"
	"github.com/Sa-pphire/qr-code-gen/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

type EventProducer struct {
	*producer.Producer
	topic string
}

func NewEventProducer(producer *producer.Producer, topic string) *EventProducer {
	return &EventProducer{
		producer,
		topic,
	}
}

func (ep *EventProducer) PublishGenerated(ctx context.Context, event dto.LandingPageGeneratedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("EventProducer - PublishGenerated - json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Topic: ep.topic,
		Key:   []byte(event.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("landing_page.generated")},
		},
	}

	err = ep.Writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("EventProducer - PublishGenerated - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}

// NopPublisher is used when event publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishGenerated(context.Context, dto.LandingPageGeneratedEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
