// Package gateway is the cross-chain transport. Outbound transfers are
// relayed as JSON envelopes over NATS JetStream; inbound calls from
// counterpart chains arrive on the gateway.inbound subjects.
package gateway

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/domain"
)

const (
	// SubjectOutboundPrefix is the namespace for outbound relays, one
	// subject per destination chain
	SubjectOutboundPrefix = "gateway.outbound."

	// SubjectInbound matches every inbound gateway call
	SubjectInbound = "gateway.inbound.>"
	// SubjectOnCall carries regular cross-chain transfers
	SubjectOnCall = "gateway.inbound.on_call"
	// SubjectOnRevert carries transfers bounced back by the destination
	SubjectOnRevert = "gateway.inbound.on_revert"
	// SubjectOnAbort carries transfers the gateway could not deliver at all
	SubjectOnAbort = "gateway.inbound.on_abort"
)

// Envelope is the JSON frame wrapping a wire payload on the transport.
type Envelope struct {
	// Destination is the target chain id
	Destination domain.ChainID `json:"destination"`
	// Sender identifies the contract the call originates from
	Sender string `json:"sender"`
	// Payload is the encoded transfer descriptor
	Payload []byte `json:"payload"`
	// GasLimit is the gas budget for execution on the destination chain
	GasLimit uint64 `json:"gas_limit"`
}

// Client defines the interface for relaying outbound cross-chain calls
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Client=MockGatewayClient
type Client interface {
	// Relay hands the envelope to the gateway. Failures after retries are
	// reported as domain.ErrGatewayCallFailed.
	Relay(ctx context.Context, env Envelope) error
}

type natsClient struct {
	js         adapter.JetStream
	json       adapter.JSON
	maxRetries uint64
}

// NewNATSClient creates a gateway client publishing to NATS JetStream
func NewNATSClient(js adapter.JetStream, jsonAdapter adapter.JSON, maxRetries uint64) Client {
	return &natsClient{
		js:         js,
		json:       jsonAdapter,
		maxRetries: maxRetries,
	}
}

// Relay publishes the envelope to SubjectOutboundPrefix<destination chain>,
// retrying transient publish failures with exponential backoff.
func (c *natsClient) Relay(ctx context.Context, env Envelope) error {
	data, err := c.json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: marshal envelope: %v", domain.ErrGatewayCallFailed, err)
	}

	subject := fmt.Sprintf("%s%d", SubjectOutboundPrefix, env.Destination)

	operation := func() error {
		_, err := c.js.Publish(ctx, subject, data)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("%w: relay to chain %d: %v", domain.ErrGatewayCallFailed, env.Destination, err)
	}

	return nil
}
