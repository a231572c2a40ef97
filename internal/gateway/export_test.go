package gateway

import (
	"context"

	"github.com/universalnft/nft-bridge/internal/adapter"
)

// The consumer tests live in the external gateway_test package so they can
// use the generated mocks without an import cycle; these aliases expose the
// unexported dispatch internals to them.

var IsPermanent = isPermanent

// HandleMessage exposes handleMessage to the external test package.
func (c *Consumer) HandleMessage(ctx context.Context, msg adapter.Message) {
	c.handleMessage(ctx, msg)
}
