package rest

import (
	"errors"

	"github.com/universalnft/nft-bridge/internal/chains"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/store/schema"
)

// InitializeRequest is the body of POST /api/v1/initialize
type InitializeRequest struct {
	Owner                string `json:"owner" binding:"required"`
	Gateway              string `json:"gateway" binding:"required"`
	UniversalNFTContract string `json:"universal_nft_contract"`
	GasLimit             uint64 `json:"gas_limit" binding:"required"`
}

// MintRequest is the body of POST /api/v1/tokens. Owner defaults to the
// authenticated caller when omitted. ExpectedCounter is the next_token_id
// the caller read before submitting; a stale value fails with a conflict.
type MintRequest struct {
	Owner           string  `json:"owner"`
	URI             string  `json:"uri" binding:"required"`
	ExpectedCounter *uint64 `json:"expected_counter" binding:"required"`
}

// TransferRequest is the body of POST /api/v1/transfers
type TransferRequest struct {
	TokenID          uint64 `json:"token_id" binding:"required"`
	DestinationChain uint64 `json:"destination_chain" binding:"required"`
	Receiver         string `json:"receiver" binding:"required"`
	GasLimit         uint64 `json:"gas_limit"`
}

// Validate checks the fields gin's binding tags cannot express
func (r *TransferRequest) Validate() error {
	if r.DestinationChain == 0 {
		return errors.New("destination_chain is required")
	}
	return nil
}

// ReceiveRequest injects an inbound cross-chain message directly, without
// going through the gateway stream. Payload is base64-encoded wire bytes.
type ReceiveRequest struct {
	SourceChain uint64 `json:"source_chain" binding:"required"`
	Sender      string `json:"sender" binding:"required"`
	ZRC20       string `json:"zrc20" binding:"required"`
	Amount      uint64 `json:"amount"`
	Payload     []byte `json:"payload" binding:"required"`
}

// SetAddressRequest updates a single address field on the program state
type SetAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// SetGasLimitRequest is the body of PUT /api/v1/admin/gas-limit
type SetGasLimitRequest struct {
	GasLimit uint64 `json:"gas_limit" binding:"required"`
}

// SetConnectedContractRequest registers the counterpart contract authorized
// to send inbound calls carrying the given gas token
type SetConnectedContractRequest struct {
	ZRC20   string `json:"zrc20" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// StateResponse mirrors the program state
type StateResponse struct {
	Owner                string `json:"owner"`
	Gateway              string `json:"gateway"`
	UniversalNFTContract string `json:"universal_nft_contract,omitempty"`
	NextTokenID          uint64 `json:"next_token_id"`
	GasLimit             uint64 `json:"gas_limit"`
	Paused               bool   `json:"paused"`
}

// TokenResponse describes a token currently resident on this chain
type TokenResponse struct {
	TokenID uint64 `json:"token_id"`
	Owner   string `json:"owner"`
	URI     string `json:"uri"`
	Mint    string `json:"mint"`
}

// OriginResponse describes a token's permanent origin record
type OriginResponse struct {
	TokenID         uint64 `json:"token_id"`
	OriginChain     uint64 `json:"origin_chain"`
	OriginChainName string `json:"origin_chain_name"`
	OriginTokenID   uint64 `json:"origin_token_id"`
	URI             string `json:"uri"`
	Mint            string `json:"mint"`
}

// ChainResponse describes a chain known to the registry
type ChainResponse struct {
	ChainID uint64 `json:"chain_id"`
	Name    string `json:"name"`
}

func stateResponse(state *schema.ProgramState) StateResponse {
	return StateResponse{
		Owner:                state.Owner,
		Gateway:              state.Gateway,
		UniversalNFTContract: state.UniversalNFTContract,
		NextTokenID:          state.NextTokenID,
		GasLimit:             state.GasLimit,
		Paused:               state.Paused,
	}
}

func tokenResponse(unit *schema.LocalUnit) TokenResponse {
	return TokenResponse{
		TokenID: unit.TokenID,
		Owner:   unit.Owner,
		URI:     unit.URI,
		Mint:    unit.Mint,
	}
}

func originResponse(origin *schema.NFTOrigin) OriginResponse {
	return OriginResponse{
		TokenID:         origin.TokenID,
		OriginChain:     origin.OriginChain,
		OriginChainName: chains.Name(domain.ChainID(origin.OriginChain)),
		OriginTokenID:   origin.OriginTokenID,
		URI:             origin.URI,
		Mint:            origin.Mint,
	}
}
