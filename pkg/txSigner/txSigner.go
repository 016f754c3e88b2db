// Package txSigner provides Ethereum transaction signing for the transaction flows.
// This package defines the signer interface consumed by the ledger adapters and
// implementations backed by a raw private key, an AWS KMS key or a private
// key stored in AWS Secrets Manager.
package txSigner

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ITransactionSigner defines the interface for signing Ethereum transactions.
// Implementations provide transaction options for use with go-ethereum
// contract bindings, supporting different signing backends.
type ITransactionSigner interface {
	// GetTransactOpts returns bind.TransactOpts configured for the signer.
	//
	// Parameters:
	//   - ctx: Context attached to the returned options
	//   - chainID: The chain ID for the target blockchain
	//
	// Returns:
	//   - *bind.TransactOpts: Configured transaction options for the signer
	//   - error: An error if transaction options cannot be created
	GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)

	// GetAddress returns the Ethereum address associated with this signer.
	// This address is the 'from' field of every transaction it signs.
	GetAddress() (common.Address, error)
}
