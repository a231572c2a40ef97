package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid checksummed address",
			input:   "0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
			wantErr: false,
		},
		{
			name:    "valid lowercase address",
			input:   "0x396343362be2a4da1ce0c1c210945346fb82aa49",
			wantErr: false,
		},
		{
			name:    "zero address rejected",
			input:   "0x0000000000000000000000000000000000000000",
			wantErr: true,
		},
		{
			name:    "missing prefix",
			input:   "396343362be2A4dA1cE0C1C210945346fb82Aa49x",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "0x1234",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, common.HexToAddress(tt.input), addr)
			}
		})
	}
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(common.Address{}))
	assert.False(t, IsZeroAddress(common.HexToAddress("0x0000000000000000000000000000000000000001")))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
		NormalizeAddress("0x396343362be2a4da1ce0c1c210945346fb82aa49"))

	// Non-hex identities pass through untouched
	assert.Equal(t, "So11111111111111111111111111111111111111112",
		NormalizeAddress("So11111111111111111111111111111111111111112"))
}
