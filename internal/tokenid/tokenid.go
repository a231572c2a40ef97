// Package tokenid derives globally unique NFT token ids from the program's
// monotonic mint counter.
package tokenid

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/universalnft/nft-bridge/internal/domain"
)

// MaxCounter is the last counter value that can still be bumped. Minting at
// this value would overflow the persisted next-token-id.
const MaxCounter = 1<<64 - 1

// Next derives the token id for the given counter value. The id is the low
// 64 bits of keccak256(salt || counter), read big-endian, so ids are spread
// across the space and mints with different salts never collide, even at the
// same counter. The same (salt, counter) pair always yields the same id.
func Next(salt []byte, counter uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], counter)
	sum := crypto.Keccak256(salt, buf[:])
	return binary.BigEndian.Uint64(sum[24:32])
}

// Bump returns counter+1 or ErrTokenIdOverflow at the top of the range.
func Bump(counter uint64) (uint64, error) {
	if counter == MaxCounter {
		return 0, domain.ErrTokenIdOverflow
	}
	return counter + 1, nil
}
