package schema

import (
	"time"
)

// ConnectedContract represents the connected_contracts table - the allowlist
// of counterpart contracts authorized to send inbound messages, keyed by the
// gas token (zrc20) their calls carry
type ConnectedContract struct {
	// ZRC20 is the gas token identity the mapping is registered under
	ZRC20 string `gorm:"column:zrc20;primaryKey;type:text"`
	// Address is the authorized counterpart contract for that gas token
	Address string `gorm:"column:address;not null;type:text"`
	// CreatedAt is when the mapping was first set
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt tracks admin updates to the mapping
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName returns the table name for ConnectedContract
func (ConnectedContract) TableName() string {
	return "connected_contracts"
}
