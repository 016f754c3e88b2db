// Package orchestrator drives on-chain transactions through their lifecycle.
// It submits allowance approvals, native asset wraps and unwraps, and prepared
// trades, waits for them to be mined, and reports every transition to a caller
// supplied Reporter using a closed vocabulary of event tags.
//
// Failures never surface as raw errors from the submission flows. They are
// reported as events and returned as a Result carrying a Failure reason.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// MaxAllowance is the approval amount granted to spenders, 2^256-1.
var MaxAllowance = new(big.Int).Set(math.MaxBig256)

var errNoHandle = errors.New("submission returned no transaction handle")

// Orchestrator runs transaction lifecycles against a single ledger network.
// It keeps no per-invocation state, so one instance may serve concurrent calls.
type Orchestrator struct {
	gasSource IGasPriceSource
	provider  IProvider
	logger    *zap.Logger
}

// NewOrchestrator creates an Orchestrator with its network collaborators injected.
//
// Parameters:
//   - gasSource: Quotes the gas price attached to approvals, wraps and unwraps
//   - provider: Simulates calls and waits for transactions to be mined
//   - logger: Structured logger, may be nil
//
// Returns:
//   - *Orchestrator: A ready to use orchestrator
func NewOrchestrator(gasSource IGasPriceSource, provider IProvider, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		gasSource: gasSource,
		provider:  provider,
		logger:    logger,
	}
}

// SetAllowance approves spender for the maximum token amount so later
// transfers never need another approval.
//
// The event sequence is either [rejected] or [send_approve, mined_approve].
//
// Parameters:
//   - ctx: Context for the gas quote, submission and confirmation wait
//   - token: Signer-bound token contract
//   - spender: Address being authorized
//   - report: Receives lifecycle events, may be nil
//
// Returns:
//   - Result: Ok() is true once the approval is mined
func (o *Orchestrator) SetAllowance(ctx context.Context, token IToken, spender common.Address, report Reporter) Result {
	return o.run(ctx, approveFlow, report, func(ctx context.Context) (*Handle, error) {
		gasPrice, err := o.gasPrice(ctx)
		if err != nil {
			return nil, err
		}
		return token.Approve(ctx, spender, new(big.Int).Set(MaxAllowance), TxOptions{GasPrice: gasPrice})
	})
}

// Wrap deposits amount of the native asset into the wrapper contract.
// A nil or zero amount succeeds immediately without touching the network.
func (o *Orchestrator) Wrap(ctx context.Context, wrapper IWrapper, amount *big.Int, report Reporter) Result {
	if isZero(amount) {
		return Result{}
	}
	value := new(big.Int).Set(amount)
	return o.run(ctx, wrapFlow, report, func(ctx context.Context) (*Handle, error) {
		gasPrice, err := o.gasPrice(ctx)
		if err != nil {
			return nil, err
		}
		return wrapper.Deposit(ctx, TxOptions{Value: value, GasPrice: gasPrice})
	})
}

// Unwrap withdraws amount of wrapped tokens back into the native asset.
// A nil or zero amount succeeds immediately without touching the network.
func (o *Orchestrator) Unwrap(ctx context.Context, wrapper IWrapper, amount *big.Int, report Reporter) Result {
	if isZero(amount) {
		return Result{}
	}
	value := new(big.Int).Set(amount)
	return o.run(ctx, unwrapFlow, report, func(ctx context.Context) (*Handle, error) {
		gasPrice, err := o.gasPrice(ctx)
		if err != nil {
			return nil, err
		}
		return wrapper.Withdraw(ctx, value, TxOptions{GasPrice: gasPrice})
	})
}

// EstimateGas simulates the trade from the signer's address and pads the
// result by 20%. A failed simulation reports bad_tx and returns FailureBadTx.
func (o *Orchestrator) EstimateGas(ctx context.Context, trade *Trade, signer ISigner, report Reporter) GasEstimate {
	report = orNop(report)

	sender, err := signer.GetAddress()
	if err != nil {
		return o.badTx(report, fmt.Errorf("failed to get signer address: %w", err))
	}

	estimate, err := o.provider.EstimateGas(ctx, trade.Intent.CallMsg(sender))
	if err != nil {
		return o.badTx(report, fmt.Errorf("failed to estimate gas: %w", err))
	}

	padded := addGasBuffer(estimate)
	o.logger.Sugar().Debugw("estimated trade gas",
		zap.String("from", sender.String()),
		zap.String("to", trade.Intent.To.String()),
		zap.Uint64("estimate", estimate),
		zap.Uint64("gasLimit", padded),
	)
	return GasEstimate{Gas: padded}
}

// SendTrade submits a prepared trade and tracks it to a terminal outcome.
//
// The event sequence is [rejected], [send_trade, mined_trade] or
// [send_trade, failed]. A mined trade whose receipt status is not successful
// is reported as failed and returned with FailureReverted. The handle is
// returned whenever the network accepted the transaction.
func (o *Orchestrator) SendTrade(ctx context.Context, trade *Trade, signer ISigner, report Reporter) Result {
	report = orNop(report)

	intent := trade.Intent
	handle, err := o.submit(ctx, report, func(ctx context.Context) (*Handle, error) {
		return signer.SendTransaction(ctx, &intent)
	})
	if err != nil {
		return Result{Failure: FailureRejected, Cause: err}
	}

	report(Event{Tag: tradeFlow.send, TxHash: handle.Hash})
	receipt, err := o.provider.WaitForTransaction(ctx, handle.Hash)
	if err != nil {
		return o.unconfirmed(tradeFlow, handle, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		o.logger.Sugar().Warnw("trade reverted",
			zap.String("txHash", handle.Hash.Hex()),
			zap.Uint64("status", receipt.Status),
		)
		report(Event{Tag: EventFailed, TxHash: handle.Hash})
		return Result{
			Handle:  handle,
			Receipt: receipt,
			Failure: FailureReverted,
			Cause:   fmt.Errorf("receipt status %d for %s", receipt.Status, handle.Hash.Hex()),
		}
	}

	report(Event{Tag: tradeFlow.mined, TxHash: handle.Hash})
	return Result{Handle: handle, Receipt: receipt}
}

// run drives the approve, wrap and unwrap flows: submit, report send, wait, report mined.
func (o *Orchestrator) run(ctx context.Context, f flow, report Reporter, send func(ctx context.Context) (*Handle, error)) Result {
	report = orNop(report)

	handle, err := o.submit(ctx, report, send)
	if err != nil {
		return Result{Failure: FailureRejected, Cause: err}
	}

	report(Event{Tag: f.send, TxHash: handle.Hash})
	o.logger.Sugar().Debugw("waiting for transaction to be mined",
		zap.String("flow", f.name),
		zap.String("txHash", handle.Hash.Hex()),
	)

	receipt, err := o.provider.WaitForTransaction(ctx, handle.Hash)
	if err != nil {
		return o.unconfirmed(f, handle, err)
	}

	report(Event{Tag: f.mined, TxHash: handle.Hash})
	return Result{Handle: handle, Receipt: receipt}
}

// submit is the single point where a prepared call becomes a submitted
// transaction. Every error is reported as rejected and returned with a nil handle.
func (o *Orchestrator) submit(ctx context.Context, report Reporter, send func(ctx context.Context) (*Handle, error)) (*Handle, error) {
	handle, err := send(ctx)
	if err == nil && handle == nil {
		err = errNoHandle
	}
	if err != nil {
		o.logger.Sugar().Warnw("transaction submission rejected", zap.Error(err))
		report(Event{Tag: EventRejected})
		return nil, err
	}
	o.logger.Sugar().Debugw("transaction submitted", zap.String("txHash", handle.Hash.Hex()))
	return handle, nil
}

func (o *Orchestrator) gasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := o.gasSource.GetGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	return gasPrice, nil
}

func (o *Orchestrator) badTx(report Reporter, err error) GasEstimate {
	o.logger.Sugar().Warnw("trade simulation failed", zap.Error(err))
	report(Event{Tag: EventBadTx})
	return GasEstimate{Failure: FailureBadTx, Cause: err}
}

func (o *Orchestrator) unconfirmed(f flow, handle *Handle, err error) Result {
	o.logger.Sugar().Errorw("failed waiting for transaction to be mined",
		zap.String("flow", f.name),
		zap.String("txHash", handle.Hash.Hex()),
		zap.Error(err),
	)
	return Result{
		Handle:  handle,
		Failure: FailureUnconfirmed,
		Cause:   fmt.Errorf("failed to wait for %s transaction %s: %w", f.name, handle.Hash.Hex(), err),
	}
}

// addGasBuffer adds a 20% buffer to the gas limit, truncating fractional units.
func addGasBuffer(gasLimit uint64) uint64 {
	return gasLimit + gasLimit/5
}

func isZero(amount *big.Int) bool {
	return amount == nil || amount.Sign() == 0
}

func orNop(report Reporter) Reporter {
	if report == nil {
		return func(Event) {}
	}
	return report
}
