package schema

import (
	"time"
)

// LocalUnit represents the local_units table - tokens currently alive on this
// chain. A row exists while the token is held here and is deleted when the
// token is burned for an outbound transfer.
type LocalUnit struct {
	// TokenID is the universal token id
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// Owner is the current holder's address
	Owner string `gorm:"column:owner;not null;type:text;index"`
	// URI is the token's metadata URI
	URI string `gorm:"column:uri;not null;type:text"`
	// Mint is the local asset identifier backing the token
	Mint string `gorm:"column:mint;not null;type:text"`
	// CreatedAt is when the token appeared on this chain (mint or receive)
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt tracks ownership changes
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName returns the table name for LocalUnit
func (LocalUnit) TableName() string {
	return "local_units"
}
