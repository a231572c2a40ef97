package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/universalnft/nft-bridge/internal/domain"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		chainID  domain.ChainID
		expected string
	}{
		{
			name:     "ethereum mainnet",
			chainID:  domain.ChainEthereumMainnet,
			expected: "Ethereum",
		},
		{
			name:     "zetachain testnet",
			chainID:  domain.ChainZetaTestnet,
			expected: "ZetaChain Testnet",
		},
		{
			name:     "solana devnet",
			chainID:  domain.ChainSolanaDevnet,
			expected: "Solana Devnet",
		},
		{
			name:     "unknown id",
			chainID:  domain.ChainID(424242),
			expected: UnknownChain,
		},
		{
			name:     "zero id",
			chainID:  domain.ChainID(0),
			expected: UnknownChain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.chainID))
		})
	}
}
