package gasOracle

import (
	"context"
	"errors"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"go.uber.org/zap"
)

var (
	// FallbackGasPrice is used when the node cannot suggest a gas price.
	FallbackGasPrice = big.NewInt(15000000000)

	ErrInvalidGasPrice = errors.New("gas price must be positive")
)

// GasPriceSuggester is the part of an RPC client that quotes gas prices.
type GasPriceSuggester interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

type Config struct {
	// Override, when set, is quoted for every transaction instead of asking the node
	Override *big.Int
	// Fallback is quoted when the node fails, defaults to FallbackGasPrice
	Fallback *big.Int
}

// NodeGasPriceSource quotes the node's suggested legacy gas price.
type NodeGasPriceSource struct {
	client   GasPriceSuggester
	fallback *big.Int
	logger   *zap.Logger
}

// NewGasPriceSource returns a StaticGasPriceSource when config carries an
// override, otherwise a NodeGasPriceSource backed by client.
func NewGasPriceSource(client GasPriceSuggester, config *Config, logger *zap.Logger) (orchestrator.IGasPriceSource, error) {
	if config != nil && config.Override != nil {
		return NewStaticGasPriceSource(config.Override)
	}
	var fallback *big.Int
	if config != nil {
		fallback = config.Fallback
	}
	return NewNodeGasPriceSource(client, fallback, logger), nil
}

func NewNodeGasPriceSource(client GasPriceSuggester, fallback *big.Int, logger *zap.Logger) *NodeGasPriceSource {
	if fallback == nil || fallback.Sign() <= 0 {
		fallback = FallbackGasPrice
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NodeGasPriceSource{
		client:   client,
		fallback: new(big.Int).Set(fallback),
		logger:   logger,
	}
}

func (s *NodeGasPriceSource) GetGasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil || gasPrice == nil || gasPrice.Sign() <= 0 {
		// Some backends (hardhat, degraded providers) cannot quote, fall back to the constant.
		s.logger.Sugar().Debugw("cannot get suggested gas price, using fallback",
			zap.Error(err),
			zap.String("fallback", s.fallback.String()),
		)
		return new(big.Int).Set(s.fallback), nil
	}
	return gasPrice, nil
}

// StaticGasPriceSource quotes a fixed gas price.
type StaticGasPriceSource struct {
	gasPrice *big.Int
}

func NewStaticGasPriceSource(gasPrice *big.Int) (*StaticGasPriceSource, error) {
	if gasPrice == nil || gasPrice.Sign() <= 0 {
		return nil, ErrInvalidGasPrice
	}
	return &StaticGasPriceSource{gasPrice: new(big.Int).Set(gasPrice)}, nil
}

func (s *StaticGasPriceSource) GetGasPrice(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(s.gasPrice), nil
}
