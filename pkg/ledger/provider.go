package ledger

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/txflow-go/pkg/chainManager"
	"github.com/ethereum/go-ethereum"
	bind2 "github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Provider implements orchestrator.IProvider over an RPC client.
type Provider struct {
	client chainManager.EthClientInterface
	logger *zap.Logger
}

// NewProvider creates a Provider backed by client.
func NewProvider(client chainManager.EthClientInterface, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		client: client,
		logger: logger,
	}
}

// EstimateGas simulates msg against the latest state.
func (p *Provider) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := p.client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return gas, nil
}

// WaitForTransaction polls for the receipt of txHash until it is mined or ctx is done.
// No timeout is applied beyond the caller's context.
func (p *Provider) WaitForTransaction(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	p.logger.Sugar().Debugw("waiting for receipt", zap.String("txHash", txHash.Hex()))

	receipt, err := bind2.WaitMined(ctx, p.client, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s to be mined: %w", txHash.Hex(), err)
	}

	p.logger.Sugar().Debugw("transaction mined",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("status", receipt.Status),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return receipt, nil
}
