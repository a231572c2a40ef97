// Package transfer implements the bridge's state machine: minting, outbound
// burn-and-relay, inbound receive, and the revert/abort recovery paths.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/codec"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/emitter"
	"github.com/universalnft/nft-bridge/internal/gateway"
	"github.com/universalnft/nft-bridge/internal/logger"
	"github.com/universalnft/nft-bridge/internal/store"
	"github.com/universalnft/nft-bridge/internal/store/schema"
	"github.com/universalnft/nft-bridge/internal/tokenid"
)

// Config holds the protocol settings for the transfer service.
type Config struct {
	// HomeChain is the chain id this deployment represents
	HomeChain domain.ChainID
	// TokenSalt namespaces token id derivation per deployment. The salt of
	// an individual mint is the fresh unit identity plus this value.
	TokenSalt []byte
}

// InitializeParams are the inputs to program initialization.
type InitializeParams struct {
	Owner                string
	Gateway              string
	UniversalNFTContract string
	GasLimit             uint64
}

// Service defines the bridge operations exposed to the API and the gateway
// consumer
//
//go:generate mockgen -source=service.go -destination=../mocks/transfer.go -package=mocks -mock_names=Service=MockService
type Service interface {
	gateway.Handler

	// Initialize creates the program state. Callable once.
	Initialize(ctx context.Context, params InitializeParams) (*schema.ProgramState, error)
	// Mint creates a new token on this chain, assigning it a fresh id and
	// a permanent origin record. The caller declares the counter value it
	// expects; a stale declaration fails with ErrNextTokenIdMismatch.
	Mint(ctx context.Context, owner string, uri string, expectedCounter uint64) (*schema.LocalUnit, error)
	// Transfer burns a token here and relays it to another chain. The burn
	// and the relay commit or fail together.
	Transfer(ctx context.Context, caller string, tokenID uint64, destination domain.ChainID, receiver string, gasLimit uint64) error

	// State returns the program state
	State(ctx context.Context) (*schema.ProgramState, error)
	// Origin returns a token's origin record
	Origin(ctx context.Context, tokenID uint64) (*schema.NFTOrigin, error)

	// Pause blocks all transfer operations. Owner only.
	Pause(ctx context.Context, caller string) error
	// Unpause lifts the pause. Owner only.
	Unpause(ctx context.Context, caller string) error
	// SetGateway updates the gateway address. Owner only.
	SetGateway(ctx context.Context, caller string, gatewayAddr string) error
	// SetGasLimit updates the default outbound gas budget. Owner only.
	SetGasLimit(ctx context.Context, caller string, gasLimit uint64) error
	// SetConnectedContract registers the counterpart contract authorized
	// to send inbound calls carrying the given gas token. Owner only.
	SetConnectedContract(ctx context.Context, caller string, zrc20 string, address string) error
	// SetUniversalNFTContract updates the counterpart NFT contract on the
	// home chain. Owner only.
	SetUniversalNFTContract(ctx context.Context, caller string, address string) error
}

type service struct {
	store   store.Store
	gateway gateway.Client
	emitter emitter.Emitter
	clock   adapter.Clock
	config  Config
}

// NewService creates the transfer service
func NewService(st store.Store, gw gateway.Client, em emitter.Emitter, clock adapter.Clock, cfg Config) Service {
	return &service{
		store:   st,
		gateway: gw,
		emitter: em,
		clock:   clock,
		config:  cfg,
	}
}

// Initialize creates the program state
func (s *service) Initialize(ctx context.Context, params InitializeParams) (*schema.ProgramState, error) {
	if _, err := domain.ParseAddress(params.Owner); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	if _, err := domain.ParseAddress(params.Gateway); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if params.GasLimit == 0 {
		return nil, domain.ErrInvalidGasLimit
	}

	state := &schema.ProgramState{
		Owner:                domain.NormalizeAddress(params.Owner),
		Gateway:              domain.NormalizeAddress(params.Gateway),
		UniversalNFTContract: domain.NormalizeAddress(params.UniversalNFTContract),
		NextTokenID:          0,
		GasLimit:             params.GasLimit,
	}

	if err := s.store.InitProgramState(ctx, state); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, &domain.Event{
		Type:  domain.EventTypeProgramInitialized,
		Admin: state.Owner,
	})

	return state, nil
}

// Mint creates a new token on this chain
func (s *service) Mint(ctx context.Context, owner string, uri string, expectedCounter uint64) (*schema.LocalUnit, error) {
	state, err := s.activeState(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := domain.ParseAddress(owner); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	if err := validateURI(uri); err != nil {
		return nil, err
	}

	if expectedCounter != state.NextTokenID {
		return nil, domain.ErrNextTokenIdMismatch
	}
	counter := expectedCounter
	if _, err := tokenid.Bump(counter); err != nil {
		return nil, err
	}

	// the unit identity is created first and salts the id derivation, so
	// parallel mints, even at the same counter, cannot share an id
	mint := newMint()
	newTokenID := tokenid.Next(s.mintSalt(mint), counter)

	unit := &schema.LocalUnit{
		TokenID: newTokenID,
		Owner:   domain.NormalizeAddress(owner),
		URI:     uri,
		Mint:    mint,
	}

	err = s.store.WithTx(ctx, func(tx store.Store) error {
		if err := tx.CreateUnit(ctx, unit); err != nil {
			return err
		}
		if err := tx.CreateOrigin(ctx, &schema.NFTOrigin{
			TokenID:       newTokenID,
			OriginChain:   uint64(s.config.HomeChain),
			OriginTokenID: newTokenID,
			URI:           uri,
			Mint:          unit.Mint,
		}); err != nil {
			return err
		}
		return tx.BumpNextTokenID(ctx, counter)
	})
	if err != nil {
		return nil, err
	}

	homeChain := s.config.HomeChain
	s.emitter.Emit(ctx, &domain.Event{
		Type:     domain.EventTypeNFTMinted,
		TokenID:  &unit.TokenID,
		Chain:    &homeChain,
		URI:      uri,
		Receiver: unit.Owner,
		Mint:     unit.Mint,
	})
	s.emitter.Emit(ctx, &domain.Event{
		Type:    domain.EventTypeOriginCreated,
		TokenID: &unit.TokenID,
		Chain:   &homeChain,
		URI:     uri,
		Mint:    unit.Mint,
	})

	return unit, nil
}

// Transfer burns a token and relays it to another chain. The burn is rolled
// back if the gateway refuses the relay.
func (s *service) Transfer(ctx context.Context, caller string, tokenID uint64, destination domain.ChainID, receiver string, gasLimit uint64) error {
	state, err := s.activeState(ctx)
	if err != nil {
		return err
	}

	sender, err := domain.ParseAddress(caller)
	if err != nil {
		return fmt.Errorf("caller: %w", err)
	}
	receiverAddr, err := domain.ParseAddress(receiver)
	if err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	if gasLimit == 0 {
		gasLimit = state.GasLimit
	}
	if gasLimit == 0 {
		return domain.ErrInvalidGasLimit
	}

	err = s.store.WithTx(ctx, func(tx store.Store) error {
		unit, err := tx.GetUnit(ctx, tokenID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNFTOriginNotFound
		}
		if unit.Owner != domain.NormalizeAddress(caller) {
			return domain.ErrUnauthorized
		}

		if err := tx.DeleteUnit(ctx, tokenID); err != nil {
			return err
		}

		payload := codec.Encode(receiverAddr, tokenID, unit.URI, sender)
		return s.gateway.Relay(ctx, gateway.Envelope{
			Destination: destination,
			Sender:      state.UniversalNFTContract,
			Payload:     payload,
			GasLimit:    gasLimit,
		})
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, &domain.Event{
		Type:     domain.EventTypeTransferInitiated,
		TokenID:  &tokenID,
		Chain:    &destination,
		Sender:   domain.NormalizeAddress(caller),
		Receiver: receiverAddr.Hex(),
	})

	return nil
}

// OnCall handles a transfer arriving from another chain. The attached value
// is consumed as gas by the gateway; only revert paths refund it.
func (s *service) OnCall(ctx context.Context, sourceChain domain.ChainID, sender string, zrc20 string, amount uint64, payload []byte) error {
	if _, err := s.activeState(ctx); err != nil {
		return err
	}

	if _, err := domain.ParseAddress(zrc20); err != nil {
		return fmt.Errorf("%w: zrc20: %w", domain.ErrInvalidCrossChainMessage, err)
	}

	contract, err := s.store.GetConnectedContract(ctx, domain.NormalizeAddress(zrc20))
	if err != nil {
		return err
	}
	if contract == nil || domain.NormalizeAddress(contract.Address) != domain.NormalizeAddress(sender) {
		return fmt.Errorf("%w: %w: sender %s is not the connected contract for zrc20 %s",
			domain.ErrInvalidCrossChainMessage, domain.ErrUnauthorized, sender, zrc20)
	}

	msg, err := codec.Decode(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCrossChainMessage, err)
	}

	logger.InfoCtx(ctx, "Receiving cross-chain transfer",
		zap.Uint64("token_id", msg.TokenID),
		zap.Uint64("source_chain", uint64(sourceChain)),
		zap.Uint64("amount", amount))

	unit := &schema.LocalUnit{
		TokenID: msg.TokenID,
		Owner:   msg.Receiver.Hex(),
		URI:     msg.URI,
		Mint:    newMint(),
	}

	err = s.store.WithTx(ctx, func(tx store.Store) error {
		if err := tx.EnsureOrigin(ctx, &schema.NFTOrigin{
			TokenID:       msg.TokenID,
			OriginChain:   uint64(sourceChain),
			OriginTokenID: msg.TokenID,
			URI:           msg.URI,
			Mint:          unit.Mint,
		}); err != nil {
			return err
		}
		return tx.CreateUnit(ctx, unit)
	})
	if err != nil {
		// redelivery of an already-applied receive
		if errors.Is(err, domain.ErrTokenAlreadyExists) {
			logger.WarnCtx(ctx, "Token already received, skipping", zap.Uint64("token_id", msg.TokenID))
			return nil
		}
		return err
	}

	s.emitter.Emit(ctx, &domain.Event{
		Type:     domain.EventTypeTokenReceived,
		TokenID:  &msg.TokenID,
		Chain:    &sourceChain,
		URI:      msg.URI,
		Sender:   msg.Sender.Hex(),
		Receiver: msg.Receiver.Hex(),
		Mint:     unit.Mint,
	})

	return nil
}

// OnRevert restores a token whose outbound transfer was bounced by the
// destination chain. Payloads too mangled to decode are dropped; reverts
// are best effort and must never wedge the stream.
func (s *service) OnRevert(ctx context.Context, zrc20 string, amount uint64, payload []byte) error {
	return s.restore(ctx, zrc20, amount, payload, domain.EventTypeTransferReverted)
}

// OnAbort restores a token the gateway could not deliver at all
func (s *service) OnAbort(ctx context.Context, zrc20 string, amount uint64, payload []byte) error {
	return s.restore(ctx, zrc20, amount, payload, domain.EventTypeTransferAborted)
}

func (s *service) restore(ctx context.Context, zrc20 string, amount uint64, payload []byte, eventType domain.EventType) error {
	msg, err := codec.Decode(payload)
	if err != nil {
		logger.WarnCtx(ctx, "Dropping undecodable revert payload", zap.Error(err), zap.Int("size", len(payload)))
		return nil
	}

	if _, err := s.activeState(ctx); err != nil {
		return err
	}

	// the token goes back to whoever sent it out
	unit := &schema.LocalUnit{
		TokenID: msg.TokenID,
		Owner:   msg.Sender.Hex(),
		URI:     msg.URI,
		Mint:    newMint(),
	}

	err = s.store.WithTx(ctx, func(tx store.Store) error {
		if err := tx.EnsureOrigin(ctx, &schema.NFTOrigin{
			TokenID:       msg.TokenID,
			OriginChain:   uint64(s.config.HomeChain),
			OriginTokenID: msg.TokenID,
			URI:           msg.URI,
			Mint:          unit.Mint,
		}); err != nil {
			return err
		}
		return tx.CreateUnit(ctx, unit)
	})
	if err != nil {
		if errors.Is(err, domain.ErrTokenAlreadyExists) {
			logger.WarnCtx(ctx, "Token already restored, skipping", zap.Uint64("token_id", msg.TokenID))
			return nil
		}
		return err
	}

	// leftover gas value travels back to the original sender
	s.emitter.Emit(ctx, &domain.Event{
		Type:     eventType,
		TokenID:  &msg.TokenID,
		URI:      msg.URI,
		Receiver: msg.Sender.Hex(),
		Mint:     unit.Mint,
		ZRC20:    zrc20,
		Refund:   amount,
	})

	return nil
}

// State returns the program state
func (s *service) State(ctx context.Context) (*schema.ProgramState, error) {
	state, err := s.store.GetProgramState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrNotInitialized
	}
	return state, nil
}

// Origin returns a token's origin record
func (s *service) Origin(ctx context.Context, tokenID uint64) (*schema.NFTOrigin, error) {
	origin, err := s.store.GetOrigin(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, domain.ErrNFTOriginNotFound
	}
	return origin, nil
}

// Pause blocks all transfer operations
func (s *service) Pause(ctx context.Context, caller string) error {
	return s.adminMutate(ctx, caller, domain.EventTypeProgramPaused, func(state *schema.ProgramState) error {
		state.Paused = true
		return nil
	})
}

// Unpause lifts the pause
func (s *service) Unpause(ctx context.Context, caller string) error {
	return s.adminMutate(ctx, caller, domain.EventTypeProgramUnpaused, func(state *schema.ProgramState) error {
		state.Paused = false
		return nil
	})
}

// SetGateway updates the gateway address
func (s *service) SetGateway(ctx context.Context, caller string, gatewayAddr string) error {
	if _, err := domain.ParseAddress(gatewayAddr); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	return s.adminMutate(ctx, caller, domain.EventTypeGatewayUpdated, func(state *schema.ProgramState) error {
		state.Gateway = domain.NormalizeAddress(gatewayAddr)
		return nil
	})
}

// SetGasLimit updates the default outbound gas budget
func (s *service) SetGasLimit(ctx context.Context, caller string, gasLimit uint64) error {
	if gasLimit == 0 {
		return domain.ErrInvalidGasLimit
	}
	return s.adminMutate(ctx, caller, domain.EventTypeGasLimitUpdated, func(state *schema.ProgramState) error {
		state.GasLimit = gasLimit
		return nil
	})
}

// SetConnectedContract registers the counterpart contract authorized to send
// inbound calls carrying the given gas token
func (s *service) SetConnectedContract(ctx context.Context, caller string, zrc20 string, address string) error {
	if _, err := domain.ParseAddress(zrc20); err != nil {
		return fmt.Errorf("zrc20: %w", err)
	}
	if address == "" {
		return domain.ErrInvalidAddress
	}

	state, err := s.State(ctx)
	if err != nil {
		return err
	}
	if err := requireOwner(state, caller); err != nil {
		return err
	}

	if err := s.store.SetConnectedContract(ctx, &schema.ConnectedContract{
		ZRC20:   domain.NormalizeAddress(zrc20),
		Address: domain.NormalizeAddress(address),
	}); err != nil {
		return err
	}

	s.emitter.Emit(ctx, &domain.Event{
		Type:   domain.EventTypeConnectedContractSet,
		Admin:  state.Owner,
		ZRC20:  domain.NormalizeAddress(zrc20),
		Detail: domain.NormalizeAddress(address),
	})

	return nil
}

// SetUniversalNFTContract updates the counterpart NFT contract
func (s *service) SetUniversalNFTContract(ctx context.Context, caller string, address string) error {
	if _, err := domain.ParseAddress(address); err != nil {
		return fmt.Errorf("contract: %w", err)
	}
	return s.adminMutate(ctx, caller, domain.EventTypeNFTContractUpdated, func(state *schema.ProgramState) error {
		state.UniversalNFTContract = domain.NormalizeAddress(address)
		return nil
	})
}

// adminMutate loads the state, checks ownership, applies mutate, saves, and
// emits the admin event
func (s *service) adminMutate(ctx context.Context, caller string, eventType domain.EventType, mutate func(*schema.ProgramState) error) error {
	state, err := s.State(ctx)
	if err != nil {
		return err
	}
	if err := requireOwner(state, caller); err != nil {
		return err
	}
	if err := mutate(state); err != nil {
		return err
	}
	if err := s.store.SaveProgramState(ctx, state); err != nil {
		return err
	}

	s.emitter.Emit(ctx, &domain.Event{
		Type:  eventType,
		Admin: state.Owner,
	})

	return nil
}

// activeState loads the program state and rejects paused programs
func (s *service) activeState(ctx context.Context) (*schema.ProgramState, error) {
	state, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	if state.Paused {
		return nil, domain.ErrProgramPaused
	}
	return state, nil
}

func requireOwner(state *schema.ProgramState, caller string) error {
	if domain.NormalizeAddress(caller) != state.Owner {
		return domain.ErrUnauthorized
	}
	return nil
}

func validateURI(uri string) error {
	if len(uri) > domain.MaxURILength || !utf8.ValidString(uri) {
		return domain.ErrInvalidURIEncoding
	}
	return nil
}

// newMint creates a fresh identity for the fungible unit backing a token
func newMint() string {
	return "mint-" + uuid.NewString()
}

// mintSalt builds the id-derivation salt from the unit identity and the
// deployment namespace
func (s *service) mintSalt(mint string) []byte {
	return append([]byte(mint), s.config.TokenSalt...)
}
