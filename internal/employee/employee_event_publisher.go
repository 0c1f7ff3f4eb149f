package employee

import (
	"context"
	"encoding/json"

	"go-employee-api/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=employee_event_publisher.go -destination=mock/employee_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishEmployeeLifecycle(ctx context.Context, event events.EmployeeLifecycleEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishEmployeeLifecycle(context.Context, events.EmployeeLifecycleEvent) error {
	return nil
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeLifecycle(
	ctx context.Context,
	event events.EmployeeLifecycleEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.EmployeeLifecycleTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
