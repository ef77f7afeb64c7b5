package eventqueue

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	published  []amqp.Publishing
	keys       []string
	confirms   chan amqp.Confirmation
	ack        bool
	publishErr error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	if f.confirms != nil {
		f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	}
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func newFake(ack bool) (*fakeChannel, *Service) {
	fake := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: ack}
	return fake, newService(fake, fake.confirms, zap.NewNop(), "cfs_assessment_events", time.Second)
}

func TestService_Publish(t *testing.T) {
	fake, svc := newFake(true)
	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := svc.Publish(context.Background(), models.Event{
		Type:         constvars.EventAssessmentCreated,
		AssessmentID: 12,
		Score:        6,
		LevelTitle:   "Living with Moderate Frailty",
		OccurredAt:   occurred,
	})
	require.NoError(t, err)
	require.Len(t, fake.published, 1)

	msg := fake.published[0]
	assert.Equal(t, "cfs_assessment_events", fake.keys[0])
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, constvars.EventAssessmentCreated, msg.Type)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "assessment.created", decoded["type"])
	assert.EqualValues(t, 12, decoded["assessment_id"])
	assert.EqualValues(t, 6, decoded["score"])
}

func TestService_PublishNack(t *testing.T) {
	_, svc := newFake(false)
	err := svc.Publish(context.Background(), models.Event{Type: constvars.EventAssessmentDeleted})
	assert.Error(t, err)
}

func TestService_PublishError(t *testing.T) {
	fake, svc := newFake(true)
	fake.publishErr = errors.New("channel closed")
	err := svc.Publish(context.Background(), models.Event{Type: constvars.EventAssessmentDeleted})
	assert.ErrorContains(t, err, "channel closed")
}

func TestService_PublishWaitsForConfirmUntilTimeout(t *testing.T) {
	fake := &fakeChannel{}
	svc := newService(fake, make(chan amqp.Confirmation), zap.NewNop(), "q", 10*time.Millisecond)
	err := svc.Publish(context.Background(), models.Event{Type: constvars.EventExportCompleted})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, models.Event) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingPublisher) Close() error { return nil }

func TestPublishAndLog(t *testing.T) {
	publisher := &failingPublisher{}
	assert.NotPanics(t, func() {
		PublishAndLog(context.Background(), publisher, zap.NewNop(), models.Event{Type: constvars.EventAssessmentUpdated})
	})
	assert.Equal(t, 1, publisher.calls)
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), models.Event{}))
}
