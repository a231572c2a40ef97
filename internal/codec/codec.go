// Package codec implements the cross-chain wire format.
//
// Messages are big-endian, 32-byte-word aligned, ABI-style:
//
//	word 0: 12 zero bytes | 20-byte destination address
//	word 1: 12 zero bytes | 20-byte receiver address
//	word 2: token id, right-justified uint256
//	word 3: byte offset of the dynamic URI section (always 160)
//	word 4: 12 zero bytes | 20-byte sender address
//	at offset: uint256 URI length | URI bytes | zero padding to a word
//
// This layout is bit-exact and shared with counterpart contracts on other
// chains; do not change it.
package codec

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/universalnft/nft-bridge/internal/domain"
)

const (
	wordSize = 32

	// headerSize is the fixed five-word prefix before the dynamic section
	headerSize = 5 * wordSize

	// uriOffset is the byte offset of the URI section, written into word 3
	uriOffset = headerSize

	addrPad = wordSize - common.AddressLength
)

// Message is the decoded form of a cross-chain transfer descriptor. It is
// constructed transiently on both sides of the wire and never persisted.
type Message struct {
	Destination common.Address
	Receiver    common.Address
	TokenID     uint64
	URI         string
	Sender      common.Address
}

// Encode serializes a transfer descriptor. The destination word is left
// zero: the gateway addresses the target chain out of band, a zero
// destination means "deliver here". Inputs are assumed validated upstream;
// Encode has no error path.
func Encode(receiver common.Address, tokenID uint64, uri string, sender common.Address) []byte {
	padded := len(uri) + (wordSize-len(uri)%wordSize)%wordSize
	out := make([]byte, headerSize+wordSize+padded)

	// word 0 stays zero (destination)
	copy(out[wordSize+addrPad:], receiver.Bytes())
	binary.BigEndian.PutUint64(out[3*wordSize-8:], tokenID)
	binary.BigEndian.PutUint64(out[4*wordSize-8:], uriOffset)
	copy(out[4*wordSize+addrPad:], sender.Bytes())

	binary.BigEndian.PutUint64(out[headerSize+wordSize-8:], uint64(len(uri)))
	copy(out[headerSize+wordSize:], uri)

	return out
}

// Decode parses wire bytes into a Message. It is total over arbitrary
// input: every offset and length is bounds-checked before being read, so
// malformed or truncated buffers yield ErrInvalidMessageFormat (or
// ErrInvalidURIEncoding for non-UTF-8 URI bytes) and never a panic or an
// oversized allocation.
func Decode(raw []byte) (Message, error) {
	if len(raw) < headerSize {
		return Message{}, domain.ErrInvalidMessageFormat
	}

	destination, ok := addressWord(raw, 0)
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}
	receiver, ok := addressWord(raw, wordSize)
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}
	sender, ok := addressWord(raw, 4*wordSize)
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}

	tokenID, ok := uint64Word(raw, 2*wordSize)
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}

	offset, ok := uint64Word(raw, 3*wordSize)
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}
	// The offset must land on a word boundary inside the buffer with room
	// for the length word. len(raw) >= headerSize here, so the subtraction
	// cannot underflow and a near-max offset cannot wrap the comparison.
	if offset%wordSize != 0 || offset < headerSize || offset > uint64(len(raw))-wordSize {
		return Message{}, domain.ErrInvalidMessageFormat
	}

	uriLen, ok := uint64Word(raw, int(offset))
	if !ok {
		return Message{}, domain.ErrInvalidMessageFormat
	}
	if uriLen > domain.MaxURILength {
		return Message{}, domain.ErrInvalidMessageFormat
	}
	uriStart := offset + wordSize
	if uriStart+uriLen > uint64(len(raw)) {
		return Message{}, domain.ErrInvalidMessageFormat
	}

	uriBytes := raw[uriStart : uriStart+uriLen]
	if !utf8.Valid(uriBytes) {
		return Message{}, domain.ErrInvalidURIEncoding
	}

	return Message{
		Destination: destination,
		Receiver:    receiver,
		TokenID:     tokenID,
		URI:         string(uriBytes),
		Sender:      sender,
	}, nil
}

// addressWord reads a left-padded address word; the 12 pad bytes must be zero
func addressWord(raw []byte, at int) (common.Address, bool) {
	for _, b := range raw[at : at+addrPad] {
		if b != 0 {
			return common.Address{}, false
		}
	}
	return common.BytesToAddress(raw[at+addrPad : at+wordSize]), true
}

// uint64Word reads a right-justified uint256 word that must fit in 64 bits
func uint64Word(raw []byte, at int) (uint64, bool) {
	for _, b := range raw[at : at+wordSize-8] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(raw[at+wordSize-8 : at+wordSize]), true
}
