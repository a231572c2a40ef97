// Package emitter publishes bridge lifecycle events to the event stream.
// Emission is fire and forget: a failed publish is logged and never fails
// the operation that produced the event.
package emitter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/logger"
)

// SubjectPrefix is the subject namespace bridge events are published under,
// one subject per event type.
const SubjectPrefix = "nft.events."

// Emitter defines the interface for publishing bridge events
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Emit publishes an event, filling in id and timestamp
	Emit(ctx context.Context, event *domain.Event)
}

type jsEmitter struct {
	js    adapter.JetStream
	json  adapter.JSON
	clock adapter.Clock
}

// NewJetStreamEmitter creates an emitter publishing to NATS JetStream
func NewJetStreamEmitter(js adapter.JetStream, jsonAdapter adapter.JSON, clock adapter.Clock) Emitter {
	return &jsEmitter{
		js:    js,
		json:  jsonAdapter,
		clock: clock,
	}
}

// Emit publishes an event to SubjectPrefix<type>
func (e *jsEmitter) Emit(ctx context.Context, event *domain.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = e.clock.Now()
	}

	data, err := e.json.Marshal(event)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal event: %w", err), zap.String("event_type", string(event.Type)))
		return
	}

	subject := SubjectPrefix + string(event.Type)
	if _, err := e.js.Publish(ctx, subject, data); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish event: %w", err),
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID))
		return
	}

	logger.DebugCtx(ctx, "Published event", zap.String("subject", subject), zap.String("event_id", event.ID))
}
