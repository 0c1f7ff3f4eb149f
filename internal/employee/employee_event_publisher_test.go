package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-employee-api/internal/employee"
	"go-employee-api/internal/events"

	employeeMock "go-employee-api/internal/employee/mock"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestKafkaEventPublisher(t *testing.T) {
	event := events.EmployeeLifecycleEvent{
		EventType:  events.EventEmployeeCreated,
		RequestID:  "req-9",
		EmployeeID: "e-1",
		ActorID:    "a-1",
		Role:       "Manager",
		OccurredAt: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("keys by employee and tags the event type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := employeeMock.NewMockMessageWriter(ctrl)

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				msg := msgs[0]
				assert.Equal(t, events.EmployeeLifecycleTopic, msg.Topic)
				assert.Equal(t, "e-1", string(msg.Key))
				assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte(events.EventEmployeeCreated)}}, msg.Headers)

				var decoded events.EmployeeLifecycleEvent
				assert.NoError(t, json.Unmarshal(msg.Value, &decoded))
				assert.Equal(t, event, decoded)
				return nil
			})

		err := employee.NewKafkaEventPublisher(writer).PublishEmployeeLifecycle(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("writer error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := employeeMock.NewMockMessageWriter(ctrl)
		boom := errors.New("leader not available")

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(boom)

		err := employee.NewKafkaEventPublisher(writer).PublishEmployeeLifecycle(context.Background(), event)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("noop publisher", func(t *testing.T) {
		assert.NoError(t, employee.NewNoopEventPublisher().PublishEmployeeLifecycle(context.Background(), event))
	})
}
