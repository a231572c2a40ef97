package schema

import (
	"time"
)

// NFTOrigin represents the nft_origins table - the permanent record of where
// each token was first minted. Rows are written once and never updated; the
// origin of a token does not change as it moves between chains.
type NFTOrigin struct {
	// TokenID is the universal token id
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// OriginChain is the chain id the token was first minted on
	OriginChain uint64 `gorm:"column:origin_chain;not null"`
	// OriginTokenID is the token's id on its origin chain
	OriginTokenID uint64 `gorm:"column:origin_token_id;not null"`
	// URI is the metadata URI captured at first mint
	URI string `gorm:"column:uri;not null;type:text"`
	// Mint is the local asset identifier the token was first bound to
	Mint string `gorm:"column:mint;not null;type:text"`
	// CreatedAt is when the origin record was established
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName returns the table name for NFTOrigin
func (NFTOrigin) TableName() string {
	return "nft_origins"
}
