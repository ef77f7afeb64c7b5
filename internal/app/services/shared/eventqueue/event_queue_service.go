package eventqueue

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errNotConfirmed = errors.New("message not confirmed")

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Service publishes assessment events to a durable queue and waits for the
// broker confirm of every message.
type Service struct {
	ch             channel
	log            *zap.Logger
	queueName      string
	publishTimeout time.Duration
	confirms       <-chan amqp.Confirmation
	mu             sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, publishTimeout time.Duration) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newService(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), log, queueName, publishTimeout), nil
}

func newService(ch channel, confirms <-chan amqp.Confirmation, log *zap.Logger, queueName string, publishTimeout time.Duration) *Service {
	return &Service{
		ch:             ch,
		log:            log,
		queueName:      queueName,
		publishTimeout: publishTimeout,
		confirms:       confirms,
	}
}

func (s *Service) Publish(ctx context.Context, event models.Event) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Debug("EventQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		MessageId:    utils.GenerateRequestID(),
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(errNotConfirmed, s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when events are disabled.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, models.Event) error { return nil }

func (noopPublisher) Close() error { return nil }

// PublishAndLog publishes event and logs a failure instead of returning it.
func PublishAndLog(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, event models.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("event publication failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Int64(constvars.LoggingAssessmentIDKey, event.AssessmentID),
			zap.Error(err),
		)
	}
}
