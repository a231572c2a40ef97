package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/logger"
)

// InboundEnvelope is the JSON frame delivered by counterpart gateways.
type InboundEnvelope struct {
	// SourceChain is the chain the call originates from
	SourceChain domain.ChainID `json:"source_chain"`
	// Sender is the contract address that issued the call on the source chain
	Sender string `json:"sender"`
	// ZRC20 is the gas token the attached value is denominated in; inbound
	// senders are authorized per gas token
	ZRC20 string `json:"zrc20"`
	// Amount is the value attached to the call
	Amount uint64 `json:"amount"`
	// Payload is the encoded transfer descriptor
	Payload []byte `json:"payload"`
}

// Handler processes inbound gateway calls.
//
//go:generate mockgen -source=consumer.go -destination=../mocks/gateway_handler.go -package=mocks -mock_names=Handler=MockGatewayHandler
type Handler interface {
	// OnCall handles a transfer arriving from another chain
	OnCall(ctx context.Context, sourceChain domain.ChainID, sender string, zrc20 string, amount uint64, payload []byte) error
	// OnRevert handles a transfer bounced back by the destination chain
	OnRevert(ctx context.Context, zrc20 string, amount uint64, payload []byte) error
	// OnAbort handles a transfer the gateway could not deliver
	OnAbort(ctx context.Context, zrc20 string, amount uint64, payload []byte) error
}

// ConsumerConfig holds the inbound consumer settings.
type ConsumerConfig struct {
	StreamName   string
	ConsumerName string
	AckWait      time.Duration
	MaxDeliver   int
}

// Consumer pulls inbound gateway calls off the stream and dispatches them
// to the handler.
type Consumer struct {
	js      adapter.JetStream
	handler Handler
	json    adapter.JSON
	config  ConsumerConfig
}

// NewConsumer creates an inbound gateway consumer
func NewConsumer(cfg ConsumerConfig, js adapter.JetStream, handler Handler, jsonAdapter adapter.JSON) *Consumer {
	return &Consumer{
		js:      js,
		handler: handler,
		json:    jsonAdapter,
		config:  cfg,
	}
}

// Run consumes inbound calls until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	logger.Info("Starting gateway consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWait,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: SubjectInbound,
	}

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming gateway calls")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down gateway consumer")
			return ctx.Err()
		case msg := <-msgChan:
			c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage dispatches a single inbound call. Messages that can never
// succeed are terminated, transient failures are NAKed for redelivery.
func (c *Consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	var env InboundEnvelope
	if err := c.json.Unmarshal(msg.Data(), &env); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to unmarshal inbound envelope: %w", err))
		if err := msg.Term(); err != nil {
			logger.Error(fmt.Errorf("failed to terminate message: %w", err))
		}
		return
	}

	logger.InfoCtx(ctx, "Received gateway call",
		zap.String("subject", msg.Subject()),
		zap.Uint64("source_chain", uint64(env.SourceChain)),
		zap.String("sender", env.Sender))

	var err error
	switch msg.Subject() {
	case SubjectOnCall:
		err = c.handler.OnCall(ctx, env.SourceChain, env.Sender, env.ZRC20, env.Amount, env.Payload)
	case SubjectOnRevert:
		err = c.handler.OnRevert(ctx, env.ZRC20, env.Amount, env.Payload)
	case SubjectOnAbort:
		err = c.handler.OnAbort(ctx, env.ZRC20, env.Amount, env.Payload)
	default:
		logger.WarnCtx(ctx, "Unknown gateway subject", zap.String("subject", msg.Subject()))
		if err := msg.Term(); err != nil {
			logger.Error(fmt.Errorf("failed to terminate message: %w", err))
		}
		return
	}

	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to handle gateway call: %w", err), zap.String("subject", msg.Subject()))
		if isPermanent(err) {
			if err := msg.Term(); err != nil {
				logger.Error(fmt.Errorf("failed to terminate message: %w", err))
			}
		} else {
			if err := msg.Nak(); err != nil {
				logger.Error(fmt.Errorf("failed to NAK message: %w", err))
			}
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(fmt.Errorf("failed to ACK message: %w", err))
	}
}

// isPermanent reports whether redelivering the message cannot help.
// A paused program is not permanent; the message is retried after unpause.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrInvalidCrossChainMessage) ||
		errors.Is(err, domain.ErrInvalidMessageFormat) ||
		errors.Is(err, domain.ErrInvalidURIEncoding) ||
		errors.Is(err, domain.ErrInvalidAddress) ||
		errors.Is(err, domain.ErrUnauthorized)
}
