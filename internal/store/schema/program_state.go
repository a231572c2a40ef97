package schema

import (
	"time"
)

// ProgramStateID is the primary key of the singleton program state row.
const ProgramStateID = 1

// ProgramState represents the program_state table - the singleton row holding
// global bridge configuration and the mint counter
type ProgramState struct {
	// ID is always ProgramStateID; the table holds exactly one row
	ID int64 `gorm:"column:id;primaryKey"`
	// Owner is the address allowed to perform admin operations
	Owner string `gorm:"column:owner;not null;type:text"`
	// Gateway is the cross-chain gateway address outbound calls are routed through
	Gateway string `gorm:"column:gateway;not null;type:text"`
	// UniversalNFTContract is the counterpart NFT contract address on the home chain
	UniversalNFTContract string `gorm:"column:universal_nft_contract;type:text"`
	// NextTokenID is the monotonic mint counter consumed by token id derivation
	NextTokenID uint64 `gorm:"column:next_token_id;not null;default:0"`
	// GasLimit is the gas budget attached to outbound cross-chain calls
	GasLimit uint64 `gorm:"column:gas_limit;not null"`
	// Paused blocks all state-changing operations except admin ones when true
	Paused bool `gorm:"column:paused;not null;default:false"`
	// CreatedAt is when the program was initialized
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt tracks the last admin or mint mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName returns the table name for ProgramState
func (ProgramState) TableName() string {
	return "program_state"
}
