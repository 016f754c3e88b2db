package orchestrator

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrRejected is returned when signing or broadcasting a transaction failed
	ErrRejected = errors.New("transaction rejected")
	// ErrSimulationFailed is returned when gas estimation shows the call cannot execute
	ErrSimulationFailed = errors.New("transaction simulation failed")
	// ErrReverted is returned when a mined transaction reports a failed status
	ErrReverted = errors.New("transaction reverted")
	// ErrUnconfirmed is returned when waiting for the receipt did not complete
	ErrUnconfirmed = errors.New("transaction confirmation not observed")
)

// Failure is the closed set of reasons a flow can end without success.
type Failure uint8

const (
	FailureNone Failure = iota
	FailureRejected
	FailureBadTx
	FailureReverted
	FailureUnconfirmed
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureRejected:
		return "rejected"
	case FailureBadTx:
		return "bad_tx"
	case FailureReverted:
		return "reverted"
	case FailureUnconfirmed:
		return "unconfirmed"
	}
	return fmt.Sprintf("failure(%d)", uint8(f))
}

func (f Failure) sentinel() error {
	switch f {
	case FailureRejected:
		return ErrRejected
	case FailureBadTx:
		return ErrSimulationFailed
	case FailureReverted:
		return ErrReverted
	case FailureUnconfirmed:
		return ErrUnconfirmed
	}
	return nil
}

// Result is the outcome of a submission flow.
type Result struct {
	// Handle is set once the network accepted the transaction, even if it later reverted
	Handle *Handle
	// Receipt is set once the transaction was mined
	Receipt *types.Receipt
	Failure Failure
	// Cause is the underlying error behind Failure, if any
	Cause error
}

// Ok reports whether the flow reached its success terminal state.
func (r Result) Ok() bool {
	return r.Failure == FailureNone
}

// Err returns nil on success, otherwise the failure sentinel wrapping Cause.
func (r Result) Err() error {
	sentinel := r.Failure.sentinel()
	if sentinel == nil {
		return nil
	}
	if r.Cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, r.Cause)
}

// GasEstimate is the outcome of EstimateGas.
type GasEstimate struct {
	// Gas is the padded estimate, zero when the simulation failed
	Gas     uint64
	Failure Failure
	Cause   error
}

func (g GasEstimate) Ok() bool {
	return g.Failure == FailureNone
}

func (g GasEstimate) Err() error {
	return Result{Failure: g.Failure, Cause: g.Cause}.Err()
}
