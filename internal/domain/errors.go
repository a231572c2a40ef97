package domain

import "errors"

var (
	// ErrProgramPaused is returned when a mutating operation hits the pause switch
	ErrProgramPaused = errors.New("program is paused")

	// ErrUnauthorized is returned when the caller is not the program owner,
	// or when an inbound message's sender fails the connected-contract check
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotInitialized is returned when an operation runs before Initialize
	ErrNotInitialized = errors.New("program not initialized")

	// ErrInvalidCrossChainMessage is returned when an inbound message cannot
	// be accepted (decode failure or sender mismatch)
	ErrInvalidCrossChainMessage = errors.New("invalid cross-chain message")

	// ErrInvalidMessageFormat is returned when the wire bytes violate the
	// fixed message layout (short header, out-of-bounds offset or length)
	ErrInvalidMessageFormat = errors.New("invalid message format")

	// ErrInvalidURIEncoding is returned when the URI section is not valid UTF-8
	ErrInvalidURIEncoding = errors.New("invalid URI encoding")

	// ErrNFTOriginNotFound is returned when no origin record exists for a token id
	ErrNFTOriginNotFound = errors.New("nft origin not found")

	// ErrTokenAlreadyExists is returned when creating an origin record for a
	// token id that is already in the ledger
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrTokenIdOverflow is returned when the mint counter is saturated
	ErrTokenIdOverflow = errors.New("token id counter overflow")

	// ErrNextTokenIdMismatch is returned when the caller-declared counter does
	// not equal the current next_token_id
	ErrNextTokenIdMismatch = errors.New("next token id mismatch")

	// ErrInvalidAddress is returned for zero or malformed addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidGasLimit is returned when setting a zero gas limit
	ErrInvalidGasLimit = errors.New("invalid gas limit")

	// ErrGatewayCallFailed is returned when relaying through the gateway fails
	ErrGatewayCallFailed = errors.New("gateway call failed")
)
