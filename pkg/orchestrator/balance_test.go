package orchestrator

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasTokenBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  *big.Int
		required *big.Int
		expected bool
	}{
		{name: "balance equals required", balance: big.NewInt(1_000), required: big.NewInt(1_000), expected: true},
		{name: "balance above required", balance: big.NewInt(1_001), required: big.NewInt(1_000), expected: true},
		{name: "balance below required", balance: big.NewInt(999), required: big.NewInt(1_000), expected: false},
		{name: "nothing required", balance: big.NewInt(0), required: nil, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := NewMockIToken(t)
			signer := NewMockISigner(t)
			trade := createTestTrade()
			trade.InputAmount = tt.required

			signer.On("GetAddress").Return(testSender, nil).Once()
			token.On("BalanceOf", context.Background(), testSender).Return(tt.balance, nil).Once()

			ok, err := HasTokenBalance(context.Background(), token, signer, trade)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestHasTokenBalance_QueryError(t *testing.T) {
	token := NewMockIToken(t)
	signer := NewMockISigner(t)

	signer.On("GetAddress").Return(testSender, nil).Once()
	token.On("BalanceOf", context.Background(), testSender).Return((*big.Int)(nil), errors.New("execution reverted")).Once()

	ok, err := HasTokenBalance(context.Background(), token, signer, createTestTrade())

	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to get token balance")
}

func TestHasTokenBalance_AddressError(t *testing.T) {
	token := NewMockIToken(t)
	signer := NewMockISigner(t)

	signer.On("GetAddress").Return(common.Address{}, errors.New("no account")).Once()

	ok, err := HasTokenBalance(context.Background(), token, signer, createTestTrade())

	assert.False(t, ok)
	assert.Error(t, err)
}

func TestHasNativeBalance(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		name     string
		balance  *big.Int
		value    *big.Int
		expected bool
	}{
		{name: "balance equals value", balance: oneEther, value: oneEther, expected: true},
		{name: "balance below value", balance: big.NewInt(1), value: oneEther, expected: false},
		{name: "no value attached", balance: big.NewInt(0), value: nil, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer := NewMockISigner(t)
			trade := createTestTrade()
			trade.Intent.Value = tt.value

			signer.On("GetBalance", context.Background()).Return(tt.balance, nil).Once()

			ok, err := HasNativeBalance(context.Background(), signer, trade)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestHasNativeBalance_QueryError(t *testing.T) {
	signer := NewMockISigner(t)
	signer.On("GetBalance", context.Background()).Return((*big.Int)(nil), errors.New("connection refused")).Once()

	ok, err := HasNativeBalance(context.Background(), signer, createTestTrade())

	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}
