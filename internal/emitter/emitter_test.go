package emitter_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/emitter"
	"github.com/universalnft/nft-bridge/internal/logger"
	"github.com/universalnft/nft-bridge/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEmitterMocks contains all the mocks needed for testing the emitter
type testEmitterMocks struct {
	ctrl    *gomock.Controller
	js      *mocks.MockJetStream
	clock   *mocks.MockClock
	emitter emitter.Emitter
}

func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)

	tm := &testEmitterMocks{
		ctrl:  ctrl,
		js:    mocks.NewMockJetStream(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	tm.emitter = emitter.NewJetStreamEmitter(tm.js, &adapter.RealJSON{}, tm.clock)

	return tm
}

func TestEmit(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	tokenID := uint64(42)

	t.Run("publishes to subject derived from event type", func(t *testing.T) {
		tm := setupTestEmitter(t)
		defer tm.ctrl.Finish()

		tm.clock.EXPECT().Now().Return(now)
		tm.js.EXPECT().
			Publish(gomock.Any(), emitter.SubjectPrefix+"nft_minted", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				var event domain.Event
				require.NoError(t, json.Unmarshal(data, &event))
				assert.NotEmpty(t, event.ID)
				assert.Equal(t, domain.EventTypeNFTMinted, event.Type)
				assert.Equal(t, tokenID, *event.TokenID)
				assert.Equal(t, now, event.Timestamp.UTC())
				return &jetstream.PubAck{}, nil
			})

		tm.emitter.Emit(context.Background(), &domain.Event{
			Type:    domain.EventTypeNFTMinted,
			TokenID: &tokenID,
		})
	})

	t.Run("preserves a pre-assigned id and timestamp", func(t *testing.T) {
		tm := setupTestEmitter(t)
		defer tm.ctrl.Finish()

		tm.js.EXPECT().
			Publish(gomock.Any(), emitter.SubjectPrefix+"program_paused", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				var event domain.Event
				require.NoError(t, json.Unmarshal(data, &event))
				assert.Equal(t, "fixed-id", event.ID)
				assert.Equal(t, now, event.Timestamp.UTC())
				return &jetstream.PubAck{}, nil
			})

		tm.emitter.Emit(context.Background(), &domain.Event{
			ID:        "fixed-id",
			Type:      domain.EventTypeProgramPaused,
			Timestamp: now,
		})
	})

	t.Run("publish failure does not propagate", func(t *testing.T) {
		tm := setupTestEmitter(t)
		defer tm.ctrl.Finish()

		tm.clock.EXPECT().Now().Return(now)
		tm.js.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stream unavailable"))

		// must not panic or fail the caller
		tm.emitter.Emit(context.Background(), &domain.Event{
			Type: domain.EventTypeTransferInitiated,
		})
	})
}
