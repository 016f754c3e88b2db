package orchestrator

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Intent describes a prepared call against the ledger network.
// The orchestrator never mutates an Intent; simulation works on a copy.
type Intent struct {
	// To is the target contract or account
	To common.Address
	// Data is the encoded call data, empty for plain value transfers
	Data []byte
	// Value is the native asset amount attached to the call
	Value *big.Int
	// GasPrice overrides the network suggested price when set
	GasPrice *big.Int
	// GasLimit is used as-is when non-zero, otherwise the backend estimates it
	GasLimit uint64
}

// CallMsg builds the simulation-only message for the intent sent from the given address.
func (i *Intent) CallMsg(from common.Address) ethereum.CallMsg {
	msg := ethereum.CallMsg{
		From:     from,
		To:       &i.To,
		Gas:      i.GasLimit,
		GasPrice: i.GasPrice,
		Data:     i.Data,
	}
	if i.Value != nil {
		msg.Value = new(big.Int).Set(i.Value)
	}
	return msg
}

// Trade is a fully prepared trade transaction together with the input leg it spends.
type Trade struct {
	Intent Intent
	// InputToken is the token the trade sells
	InputToken common.Address
	// InputAmount is the token amount the trade's input leg requires
	InputAmount *big.Int
}

// TxOptions carries per-call transaction overrides for contract capabilities.
type TxOptions struct {
	GasPrice *big.Int
	Value    *big.Int
}

// Handle is the network's acknowledgement of a submitted transaction.
type Handle struct {
	Hash common.Hash
	// Tx is the signed transaction when the submitter has it
	Tx *types.Transaction
}

// IGasPriceSource quotes the current recommended gas price.
type IGasPriceSource interface {
	GetGasPrice(ctx context.Context) (*big.Int, error)
}

// IProvider simulates calls and tracks submitted transactions to inclusion.
type IProvider interface {
	// EstimateGas simulates msg and returns the gas units it would consume.
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	// WaitForTransaction blocks until the transaction is mined and returns its receipt.
	WaitForTransaction(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ISigner is the account that confirms and pays for transactions.
type ISigner interface {
	GetAddress() (common.Address, error)
	GetBalance(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, intent *Intent) (*Handle, error)
}

// IToken is a signer-bound fungible token contract.
type IToken interface {
	Approve(ctx context.Context, spender common.Address, amount *big.Int, opts TxOptions) (*Handle, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}

// IWrapper is a signer-bound wrapped native asset contract.
type IWrapper interface {
	Deposit(ctx context.Context, opts TxOptions) (*Handle, error)
	Withdraw(ctx context.Context, amount *big.Int, opts TxOptions) (*Handle, error)
}
