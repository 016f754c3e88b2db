package util

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var ErrInvalidAmount = errors.New("invalid amount")

// gwei is the number of wei in one gwei.
var gwei = big.NewInt(1_000_000_000)

// Map applies a transformation function to each element of a slice and returns a new slice
// with the transformed values. This is a generic implementation of the map higher-order function.
//
// Type Parameters:
//   - A: The type of elements in the input slice
//   - B: The type of elements in the output slice
//
// Parameters:
//   - coll: The input slice to transform
//   - mapper: Function that transforms each element and receives the element's index
//
// Returns:
//   - []B: A new slice containing the transformed elements
func Map[A any, B any](coll []A, mapper func(i A, index uint64) B) []B {
	out := make([]B, len(coll))
	for i, item := range coll {
		out[i] = mapper(item, uint64(i))
	}
	return out
}

// Find returns the first element in a slice that satisfies the provided criteria function.
// If no element satisfies the criteria, nil is returned.
func Find[A any](coll []*A, criteria func(i *A) bool) *A {
	for _, item := range coll {
		if criteria(item) {
			return item
		}
	}
	return nil
}

// ParseAmount parses a base-10 integer amount in the token's smallest unit.
// Values must fit in 256 bits; signs, fractions and exponents are rejected.
//
// Parameters:
//   - s: Decimal string such as "1000000000000000000"
//
// Returns:
//   - *big.Int: The parsed amount
//   - error: ErrInvalidAmount wrapped with the parse failure
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("%w: %q must be unsigned", ErrInvalidAmount, s)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
	}
	return v.ToBig(), nil
}

// GweiToWei converts a gwei amount to wei.
func GweiToWei(amount uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(amount), gwei)
}
