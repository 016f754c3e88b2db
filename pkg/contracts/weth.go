package contracts

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const wethABIJSON = `[
	{"type":"function","name":"deposit","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"wad","type":"uint256"}],"outputs":[]}
]`

// WETHABI is the deposit/withdraw interface of WETH9-style wrapper contracts.
var WETHABI = parseABI(wethABIJSON)

// Wrapper implements orchestrator.IWrapper for a WETH9-style contract.
type Wrapper struct {
	address    common.Address
	contract   *bind.BoundContract
	transactor ITransactor
}

// NewWrapper binds the wrapper contract at address, writing through transactor.
func NewWrapper(address common.Address, backend bind.ContractBackend, transactor ITransactor) *Wrapper {
	return &Wrapper{
		address:    address,
		contract:   bind.NewBoundContract(address, WETHABI, backend, backend, backend),
		transactor: transactor,
	}
}

// Deposit submits deposit() with opts.Value attached.
func (w *Wrapper) Deposit(ctx context.Context, opts orchestrator.TxOptions) (*orchestrator.Handle, error) {
	return transact(ctx, w.transactor, w.contract, opts, "deposit")
}

// Withdraw submits withdraw(amount). Any value in opts is dropped.
func (w *Wrapper) Withdraw(ctx context.Context, amount *big.Int, opts orchestrator.TxOptions) (*orchestrator.Handle, error) {
	opts.Value = nil
	return transact(ctx, w.transactor, w.contract, opts, "withdraw", amount)
}
