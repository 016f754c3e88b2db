package orchestrator

import (
	"context"
	"fmt"
	"math/big"
)

// HasTokenBalance reports whether the signer holds at least the token amount
// the trade's input leg requires. A balance equal to the requirement is sufficient.
func HasTokenBalance(ctx context.Context, token IToken, signer ISigner, trade *Trade) (bool, error) {
	owner, err := signer.GetAddress()
	if err != nil {
		return false, fmt.Errorf("failed to get signer address: %w", err)
	}
	balance, err := token.BalanceOf(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to get token balance of %s: %w", owner.String(), err)
	}
	return covers(balance, trade.InputAmount), nil
}

// HasNativeBalance reports whether the signer holds at least the native asset
// amount attached to the trade.
func HasNativeBalance(ctx context.Context, signer ISigner, trade *Trade) (bool, error) {
	balance, err := signer.GetBalance(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get native balance: %w", err)
	}
	return covers(balance, trade.Intent.Value), nil
}

// covers is an unsigned balance >= required; a nil required amount is zero.
func covers(balance, required *big.Int) bool {
	if required == nil || required.Sign() <= 0 {
		return true
	}
	if balance == nil {
		return false
	}
	return balance.Cmp(required) >= 0
}
