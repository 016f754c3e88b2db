// Package contracts binds the token and wrapped native asset contracts the
// transaction flows call. Only the methods the flows need are described.
package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// ITransactor provides signing options for contract writes.
// ledger.Signer implements it.
type ITransactor interface {
	TransactOpts(ctx context.Context, opts orchestrator.TxOptions) (*bind.TransactOpts, error)
}

func parseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid contract ABI: %v", err))
	}
	return parsed
}

func handleOf(tx *types.Transaction) *orchestrator.Handle {
	return &orchestrator.Handle{Hash: tx.Hash(), Tx: tx}
}

func callBigInt(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (*big.Int, error) {
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func transact(ctx context.Context, transactor ITransactor, contract *bind.BoundContract, txOptions orchestrator.TxOptions, method string, params ...interface{}) (*orchestrator.Handle, error) {
	opts, err := transactor.TransactOpts(ctx, txOptions)
	if err != nil {
		return nil, err
	}
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", method, err)
	}
	return handleOf(tx), nil
}
