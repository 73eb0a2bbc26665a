package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// publishEvent publishes a domain event to Kafka. Publishing is best-effort:
// a nil writer and write failures are logged, never surfaced to the caller.
func publishEvent(ctx context.Context, w EventWriter, ev models.Event) {
	if w == nil {
		logger.Log.Warnw("event writer not configured, skipping publishing", "event_id", ev.EventID, "operation", ev.Operation)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.SubjectID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", ev.EventID, "operation", ev.Operation, "error", err)
		return
	}
	logger.Log.Infow("event published", "event_id", ev.EventID, "operation", ev.Operation)
}
