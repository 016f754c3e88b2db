package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// ERC20ABI is the subset of the ERC-20 interface used by the flows.
var ERC20ABI = parseABI(erc20ABIJSON)

// Token implements orchestrator.IToken for an ERC-20 contract.
type Token struct {
	address    common.Address
	contract   *bind.BoundContract
	transactor ITransactor
}

// NewToken binds the ERC-20 contract at address, writing through transactor.
func NewToken(address common.Address, backend bind.ContractBackend, transactor ITransactor) *Token {
	return &Token{
		address:    address,
		contract:   bind.NewBoundContract(address, ERC20ABI, backend, backend, backend),
		transactor: transactor,
	}
}

// Address returns the token contract address.
func (t *Token) Address() common.Address {
	return t.address
}

// Approve submits approve(spender, amount).
func (t *Token) Approve(ctx context.Context, spender common.Address, amount *big.Int, opts orchestrator.TxOptions) (*orchestrator.Handle, error) {
	return transact(ctx, t.transactor, t.contract, opts, "approve", spender, amount)
}

// BalanceOf returns the token balance of owner.
func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	balance, err := callBigInt(ctx, t.contract, "balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to call balanceOf on %s: %w", t.address.String(), err)
	}
	return balance, nil
}

// Allowance returns how much spender may still transfer on behalf of owner.
func (t *Token) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	allowance, err := callBigInt(ctx, t.contract, "allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to call allowance on %s: %w", t.address.String(), err)
	}
	return allowance, nil
}
