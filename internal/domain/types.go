package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID is the numeric identifier of a blockchain network
type ChainID uint64

const (
	ChainEthereumMainnet ChainID = 1
	ChainBNBMainnet      ChainID = 56
	ChainPolygonMainnet  ChainID = 137
	ChainBaseMainnet     ChainID = 8453
	ChainZetaMainnet     ChainID = 7000
	ChainZetaTestnet     ChainID = 7001
	ChainSolanaMainnet   ChainID = 900
	ChainSolanaDevnet    ChainID = 901
)

// ZeroAddress is the all-zero 20-byte address. On the wire it marks "this
// chain" as the destination of an inbound message.
var ZeroAddress = common.Address{}

// IsZeroAddress reports whether addr is the all-zero address
func IsZeroAddress(addr common.Address) bool {
	return addr == ZeroAddress
}

// ParseAddress parses a 0x-prefixed hex string into a 20-byte address.
// Returns ErrInvalidAddress for malformed input or the zero address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress
	}
	addr := common.HexToAddress(s)
	if IsZeroAddress(addr) {
		return common.Address{}, ErrInvalidAddress
	}
	return addr, nil
}

// NormalizeAddress normalizes a hex address to its EIP-55 checksummed form
func NormalizeAddress(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return common.HexToAddress(s).Hex()
	}
	return s
}

// MaxURILength bounds the metadata URI carried in origin records and on the
// wire. Inbound messages declaring a longer URI are rejected before any
// allocation happens.
const MaxURILength = 2048
