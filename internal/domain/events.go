package domain

import "time"

// EventType labels the notifications emitted by protocol operations
type EventType string

const (
	EventTypeProgramInitialized   EventType = "program_initialized"
	EventTypeNFTMinted            EventType = "nft_minted"
	EventTypeOriginCreated        EventType = "origin_created"
	EventTypeTransferInitiated    EventType = "transfer_initiated"
	EventTypeTokenReceived        EventType = "token_received"
	EventTypeTransferReverted     EventType = "transfer_reverted"
	EventTypeTransferAborted      EventType = "transfer_aborted"
	EventTypeProgramPaused        EventType = "program_paused"
	EventTypeProgramUnpaused      EventType = "program_unpaused"
	EventTypeGatewayUpdated       EventType = "gateway_updated"
	EventTypeGasLimitUpdated      EventType = "gas_limit_updated"
	EventTypeConnectedContractSet EventType = "connected_contract_set"
	EventTypeNFTContractUpdated   EventType = "nft_contract_updated"
)

// Event is the notification payload published to the event sink. Events are
// fire-and-forget: they inform observers and never drive control flow.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	TokenID   *uint64   `json:"token_id,omitempty"`
	Chain     *ChainID  `json:"chain,omitempty"`
	URI       string    `json:"uri,omitempty"`
	Sender    string    `json:"sender,omitempty"`    // hex address
	Receiver  string    `json:"receiver,omitempty"`  // hex address
	Admin     string    `json:"admin,omitempty"`     // hex address
	Mint      string    `json:"mint,omitempty"`      // local unit identity
	ZRC20     string    `json:"zrc20,omitempty"`     // gas token carried by inbound calls
	Refund    uint64    `json:"refund,omitempty"`    // refunded amount on revert/abort
	Detail    string    `json:"detail,omitempty"`    // free-form diagnostic field
	Timestamp time.Time `json:"timestamp"`
}
