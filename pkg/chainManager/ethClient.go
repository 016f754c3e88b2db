package chainManager

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// EthClientInterface defines the RPC surface the transaction flows rely on.
// ethclient.Client satisfies it; tests substitute MockEthClientInterface.
type EthClientInterface interface {
	// ChainID returns the chain ID reported by the node
	ChainID(ctx context.Context) (*big.Int, error)
	// BalanceAt returns the native balance of account, nil blockNumber for latest
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)

	// Contract binding support: gas pricing, estimation, nonces, sending,
	// calls and receipts all come through the go-ethereum bind interfaces.
	bind.ContractBackend
	bind.DeployBackend
}
