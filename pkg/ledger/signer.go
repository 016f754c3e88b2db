// Package ledger adapts a go-ethereum RPC client and a transaction signer to
// the capabilities the orchestrator consumes: a Signer that can report its
// address and balance and sign-and-send calls, and a Provider that can simulate
// calls and wait for transactions to be mined.
package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/chainManager"
	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/Layr-Labs/txflow-go/pkg/txSigner"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Signer implements orchestrator.ISigner for one account on one chain.
type Signer struct {
	client   chainManager.EthClientInterface
	txSigner txSigner.ITransactionSigner
	chainID  *big.Int
	logger   *zap.Logger
}

// NewSigner creates a Signer sending through client and signing with txSig for chainID.
func NewSigner(client chainManager.EthClientInterface, txSig txSigner.ITransactionSigner, chainID *big.Int, logger *zap.Logger) *Signer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Signer{
		client:   client,
		txSigner: txSig,
		chainID:  new(big.Int).Set(chainID),
		logger:   logger,
	}
}

// GetAddress returns the account address of the underlying transaction signer.
func (s *Signer) GetAddress() (common.Address, error) {
	return s.txSigner.GetAddress()
}

// GetBalance returns the account's native balance at the latest block.
func (s *Signer) GetBalance(ctx context.Context) (*big.Int, error) {
	address, err := s.txSigner.GetAddress()
	if err != nil {
		return nil, fmt.Errorf("failed to get signer address: %w", err)
	}
	balance, err := s.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", address.String(), err)
	}
	return balance, nil
}

// TransactOpts returns signing options for this chain with the per-call overrides applied.
// Unset fields are left for the go-ethereum binding to fill in from the node.
func (s *Signer) TransactOpts(ctx context.Context, opts orchestrator.TxOptions) (*bind.TransactOpts, error) {
	txOpts, err := s.txSigner.GetTransactOpts(ctx, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction options: %w", err)
	}
	if opts.GasPrice != nil {
		txOpts.GasPrice = new(big.Int).Set(opts.GasPrice)
	}
	if opts.Value != nil {
		txOpts.Value = new(big.Int).Set(opts.Value)
	}
	return txOpts, nil
}

// SendTransaction signs the intent and broadcasts it, returning once the node
// accepted it into its pending pool.
func (s *Signer) SendTransaction(ctx context.Context, intent *orchestrator.Intent) (*orchestrator.Handle, error) {
	opts, err := s.TransactOpts(ctx, orchestrator.TxOptions{GasPrice: intent.GasPrice, Value: intent.Value})
	if err != nil {
		return nil, err
	}
	opts.GasLimit = intent.GasLimit

	contract := bind.NewBoundContract(intent.To, abi.ABI{}, s.client, s.client, s.client)

	tx, err := contract.RawTransact(opts, intent.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction to %s: %w", intent.To.String(), err)
	}

	s.logger.Sugar().Infow("sent transaction",
		zap.String("txHash", tx.Hash().Hex()),
		zap.String("from", opts.From.String()),
		zap.String("to", intent.To.String()),
		zap.Uint64("nonce", tx.Nonce()),
		zap.Uint64("gasLimit", tx.Gas()),
	)
	return &orchestrator.Handle{Hash: tx.Hash(), Tx: tx}, nil
}
