// Package chains maps numeric chain ids to human-readable network names.
// The table is diagnostics-only: nothing in the transfer protocol branches
// on it.
package chains

import "github.com/universalnft/nft-bridge/internal/domain"

// UnknownChain is returned for any id not present in the registry
const UnknownChain = "Unknown Chain"

var names = map[domain.ChainID]string{
	domain.ChainEthereumMainnet: "Ethereum",
	domain.ChainBNBMainnet:      "BNB Smart Chain",
	domain.ChainPolygonMainnet:  "Polygon",
	domain.ChainBaseMainnet:     "Base",
	domain.ChainZetaMainnet:     "ZetaChain",
	domain.ChainZetaTestnet:     "ZetaChain Testnet",
	domain.ChainSolanaMainnet:   "Solana",
	domain.ChainSolanaDevnet:    "Solana Devnet",
}

// Name returns the human-readable name for a chain id
func Name(chainID domain.ChainID) string {
	if name, ok := names[chainID]; ok {
		return name
	}
	return UnknownChain
}
