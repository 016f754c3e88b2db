package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Layr-Labs/txflow-go/pkg/chainManager"
	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	_ orchestrator.IToken   = (*Token)(nil)
	_ orchestrator.IWrapper = (*Wrapper)(nil)
)

const testPrivateKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	testOwner   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testSpender = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")
	testToken   = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	testWETH    = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	testChainID = big.NewInt(31337)
	testGasWei  = big.NewInt(30_000_000_000)
)

type keyTransactor struct {
	t   *testing.T
	err error
}

func (k keyTransactor) TransactOpts(ctx context.Context, opts orchestrator.TxOptions) (*bind.TransactOpts, error) {
	if k.err != nil {
		return nil, k.err
	}
	key, err := crypto.HexToECDSA(testPrivateKeyHex)
	require.NoError(k.t, err)
	topts, err := bind.NewKeyedTransactorWithChainID(key, testChainID)
	require.NoError(k.t, err)
	topts.Context = ctx
	topts.GasPrice = opts.GasPrice
	topts.Value = opts.Value
	return topts, nil
}

// expectTransact mocks the estimate, nonce and broadcast calls of a contract write
// and returns a pointer that receives the broadcast transaction.
func expectTransact(client *chainManager.MockEthClientInterface, contract common.Address) **types.Transaction {
	var sent *types.Transaction
	client.On("PendingCodeAt", mock.Anything, contract).Return([]byte{0x60, 0x80}, nil).Maybe()
	client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(46_000), nil).Once()
	client.On("PendingNonceAt", mock.Anything, testOwner).Return(uint64(3), nil).Once()
	client.On("SendTransaction", mock.Anything, mock.AnythingOfType("*types.Transaction")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*types.Transaction)
		}).
		Return(nil).Once()
	return &sent
}

func word(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func TestToken_Approve(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t})
	sent := expectTransact(client, testToken)

	handle, err := token.Approve(context.Background(), testSpender, math.MaxBig256, orchestrator.TxOptions{GasPrice: testGasWei})

	require.NoError(t, err)
	require.NotNil(t, *sent)
	tx := *sent
	assert.Equal(t, tx.Hash(), handle.Hash)
	assert.Equal(t, testToken, *tx.To())
	assert.Equal(t, uint64(3), tx.Nonce())
	assert.Equal(t, 0, tx.GasPrice().Cmp(testGasWei))

	data := tx.Data()
	require.Len(t, data, 4+32+32)
	assert.Equal(t, common.FromHex("0x095ea7b3"), data[:4])
	assert.Equal(t, testSpender, common.BytesToAddress(data[4:36]))
	assert.Equal(t, 0, new(big.Int).SetBytes(data[36:]).Cmp(math.MaxBig256))
}

func TestToken_Approve_TransactorError(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t, err: errors.New("kms unavailable")})

	handle, err := token.Approve(context.Background(), testSpender, big.NewInt(1), orchestrator.TxOptions{})

	assert.Nil(t, handle)
	assert.ErrorContains(t, err, "kms unavailable")
}

func TestToken_Approve_SendFails(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t})
	client.On("PendingCodeAt", mock.Anything, testToken).Return([]byte{0x60, 0x80}, nil).Maybe()
	client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(46_000), nil).Once()
	client.On("PendingNonceAt", mock.Anything, testOwner).Return(uint64(0), nil).Once()
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(errors.New("nonce too low")).Once()

	handle, err := token.Approve(context.Background(), testSpender, big.NewInt(1), orchestrator.TxOptions{GasPrice: testGasWei})

	assert.Nil(t, handle)
	assert.ErrorContains(t, err, "failed to send approve")
	assert.ErrorContains(t, err, "nonce too low")
}

func TestToken_BalanceOf(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t})
	balance, ok := new(big.Int).SetString("1234567890123456789012", 10)
	require.True(t, ok)

	client.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.To != nil && *msg.To == testToken && len(msg.Data) == 4+32
	}), mock.Anything).Return(word(balance), nil).Once()

	got, err := token.BalanceOf(context.Background(), testOwner)

	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(balance))
}

func TestToken_BalanceOf_CallFails(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t})
	client.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted")).Once()

	got, err := token.BalanceOf(context.Background(), testOwner)

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to call balanceOf")
}

func TestToken_Allowance(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	token := NewToken(testToken, client, keyTransactor{t: t})
	client.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(word(math.MaxBig256), nil).Once()

	got, err := token.Allowance(context.Background(), testOwner, testSpender)

	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(math.MaxBig256))
}

func TestWrapper_Deposit(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	wrapper := NewWrapper(testWETH, client, keyTransactor{t: t})
	sent := expectTransact(client, testWETH)
	amount := big.NewInt(1_000_000_000_000_000_000)

	handle, err := wrapper.Deposit(context.Background(), orchestrator.TxOptions{Value: amount, GasPrice: testGasWei})

	require.NoError(t, err)
	tx := *sent
	require.NotNil(t, tx)
	assert.Equal(t, tx.Hash(), handle.Hash)
	assert.Equal(t, 0, tx.Value().Cmp(amount))
	assert.Equal(t, common.FromHex("0xd0e30db0"), tx.Data())
}

func TestWrapper_Withdraw(t *testing.T) {
	client := chainManager.NewMockEthClientInterface(t)
	wrapper := NewWrapper(testWETH, client, keyTransactor{t: t})
	sent := expectTransact(client, testWETH)
	amount := new(big.Int).Lsh(big.NewInt(1), 128)

	_, err := wrapper.Withdraw(context.Background(), amount, orchestrator.TxOptions{Value: big.NewInt(9), GasPrice: testGasWei})

	require.NoError(t, err)
	tx := *sent
	require.NotNil(t, tx)
	assert.Equal(t, 0, tx.Value().Sign())
	data := tx.Data()
	require.Len(t, data, 4+32)
	assert.Equal(t, common.FromHex("0x2e1a7d4d"), data[:4])
	assert.Equal(t, 0, new(big.Int).SetBytes(data[4:]).Cmp(amount))
}
