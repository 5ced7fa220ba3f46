package eventqueue

import (
	"context"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type eventQueueService struct {
	ch        *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewEventQueueService opens a channel and declares the durable schedule
// events queue. Publishing is fire-and-forget from the caller's point of
// view; a failed publish surfaces as an error but never rolls back the
// commit it follows.
func NewEventQueueService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.EventQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &eventQueueService{
		ch:        ch,
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (s *eventQueueService) Publish(ctx context.Context, event contracts.ScheduleEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event.RequestID = requestID

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("eventQueueService.Publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.queueName),
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
		return exceptions.ErrQueuePublish(err)
	}

	s.Log.Info("eventQueueService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String("event_type", event.Type),
	)
	return nil
}
