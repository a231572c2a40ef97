package store

import (
	"context"

	"github.com/universalnft/nft-bridge/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside a database transaction. The Store passed to fn
	// is bound to the transaction; returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(Store) error) error

	// GetProgramState retrieves the singleton program state, nil if the
	// program has not been initialized
	GetProgramState(ctx context.Context) (*schema.ProgramState, error)
	// InitProgramState creates the singleton program state row.
	// Returns domain.ErrTokenAlreadyExists if it already exists.
	InitProgramState(ctx context.Context, state *schema.ProgramState) error
	// SaveProgramState persists admin mutations to the program state
	SaveProgramState(ctx context.Context, state *schema.ProgramState) error
	// BumpNextTokenID atomically advances the mint counter from expected to
	// expected+1. Returns domain.ErrNextTokenIdMismatch if the stored
	// counter no longer equals expected.
	BumpNextTokenID(ctx context.Context, expected uint64) error

	// CreateOrigin records where a token was first minted.
	// Returns domain.ErrTokenAlreadyExists if the token already has an origin.
	CreateOrigin(ctx context.Context, origin *schema.NFTOrigin) error
	// GetOrigin retrieves a token's origin record, nil if unknown
	GetOrigin(ctx context.Context, tokenID uint64) (*schema.NFTOrigin, error)
	// EnsureOrigin records an origin for a token arriving from another
	// chain. The first write wins; later arrivals leave the record intact.
	EnsureOrigin(ctx context.Context, origin *schema.NFTOrigin) error

	// GetConnectedContract retrieves the authorized counterpart contract
	// for a gas token, nil if none is registered
	GetConnectedContract(ctx context.Context, zrc20 string) (*schema.ConnectedContract, error)
	// SetConnectedContract creates or replaces the counterpart contract
	// mapping for a gas token
	SetConnectedContract(ctx context.Context, contract *schema.ConnectedContract) error

	// CreateUnit records a token now alive on this chain.
	// Returns domain.ErrTokenAlreadyExists if the token is already here.
	CreateUnit(ctx context.Context, unit *schema.LocalUnit) error
	// GetUnit retrieves a live token by id, nil if not on this chain
	GetUnit(ctx context.Context, tokenID uint64) (*schema.LocalUnit, error)
	// DeleteUnit removes a token burned for an outbound transfer.
	// Returns domain.ErrNFTOriginNotFound if the token is not on this chain.
	DeleteUnit(ctx context.Context, tokenID uint64) error
}
