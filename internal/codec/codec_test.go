package codec_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalnft/nft-bridge/internal/codec"
	"github.com/universalnft/nft-bridge/internal/domain"
)

var (
	testReceiver = common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	testSender   = common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	uris := []string{
		"",
		"x",
		strings.Repeat("a", 31),
		strings.Repeat("b", 32),
		strings.Repeat("c", 33),
		"ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/0.json",
		strings.Repeat("d", 500),
		"https://meta.example/ünïcôdé/✓.json",
	}

	for _, uri := range uris {
		t.Run(uri, func(t *testing.T) {
			raw := codec.Encode(testReceiver, 42, uri, testSender)
			assert.Zero(t, len(raw)%32, "wire bytes must be word aligned")

			msg, err := codec.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, common.Address{}, msg.Destination)
			assert.Equal(t, testReceiver, msg.Receiver)
			assert.Equal(t, uint64(42), msg.TokenID)
			assert.Equal(t, uri, msg.URI)
			assert.Equal(t, testSender, msg.Sender)
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	uri := "ipfs://token"
	raw := codec.Encode(testReceiver, 0xdeadbeef, uri, testSender)

	// fixed five-word header followed by the length word and padded URI
	require.Len(t, raw, 160+32+32)

	assert.Equal(t, make([]byte, 32), raw[0:32], "destination word is zero")
	assert.Equal(t, make([]byte, 12), raw[32:44], "receiver pad")
	assert.Equal(t, testReceiver.Bytes(), raw[44:64])
	assert.Equal(t, uint64(0xdeadbeef), binary.BigEndian.Uint64(raw[88:96]))
	assert.Equal(t, uint64(160), binary.BigEndian.Uint64(raw[120:128]), "URI offset is fixed at 160")
	assert.Equal(t, testSender.Bytes(), raw[140:160])
	assert.Equal(t, uint64(len(uri)), binary.BigEndian.Uint64(raw[184:192]))
	assert.Equal(t, []byte(uri), raw[192:192+len(uri)])
	assert.Equal(t, make([]byte, 32-len(uri)), raw[192+len(uri):], "URI tail padding is zero")
}

func TestDecodeTruncated(t *testing.T) {
	raw := codec.Encode(testReceiver, 7, "ipfs://QmTruncationCheck/metadata.json", testSender)

	// every proper prefix must fail cleanly, never panic
	for n := 0; n < len(raw); n++ {
		_, err := codec.Decode(raw[:n])
		assert.ErrorIs(t, err, domain.ErrInvalidMessageFormat, "prefix length %d", n)
	}
}

func TestDecodeMalformed(t *testing.T) {
	mutate := func(fn func([]byte)) []byte {
		raw := codec.Encode(testReceiver, 7, "ipfs://ok", testSender)
		fn(raw)
		return raw
	}

	tests := []struct {
		name     string
		raw      []byte
		expected error
	}{
		{
			name:     "empty",
			raw:      nil,
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "dirty destination pad",
			raw:      mutate(func(b []byte) { b[3] = 0x01 }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "dirty receiver pad",
			raw:      mutate(func(b []byte) { b[33] = 0xff }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "token id above uint64",
			raw:      mutate(func(b []byte) { b[64] = 0x01 }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "offset not word aligned",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[120:128], 161) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "offset inside header",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[120:128], 64) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "offset past end",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[120:128], 1 << 40) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "offset wraps uint64",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[120:128], 1<<64-32) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "uri length past end",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[184:192], 33) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "uri length above cap",
			raw:      mutate(func(b []byte) { binary.BigEndian.PutUint64(b[184:192], domain.MaxURILength+1) }),
			expected: domain.ErrInvalidMessageFormat,
		},
		{
			name:     "uri not utf8",
			raw:      mutate(func(b []byte) { b[192] = 0xff; b[193] = 0xfe }),
			expected: domain.ErrInvalidURIEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.raw)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDecodeForeignDestination(t *testing.T) {
	// counterpart chains may fill the destination word; decoding preserves it
	raw := codec.Encode(testReceiver, 9, "ipfs://x", testSender)
	dest := common.HexToAddress("0x1111111111111111111111111111111111111111")
	copy(raw[12:32], dest.Bytes())

	msg, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, dest, msg.Destination)
}
