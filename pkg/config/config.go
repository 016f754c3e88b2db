// Package config loads chain definitions from a TOML file:
//
//	[[chain]]
//	chain_id = 1
//	rpc_url = "https://eth.example.org"
//	wrapped_native = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Layr-Labs/txflow-go/pkg/chainManager"
	"github.com/Layr-Labs/txflow-go/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrNoChains       = errors.New("no chains configured")
	ErrDuplicateChain = errors.New("duplicate chain id")
)

type ChainEntry struct {
	ChainID       uint64 `toml:"chain_id"`
	RPCUrl        string `toml:"rpc_url"`
	WrappedNative string `toml:"wrapped_native"`
}

type Config struct {
	Chains []*ChainEntry `toml:"chain"`
}

// Load reads and validates the chain file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid chain file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML chain definitions. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Chains) == 0 {
		return ErrNoChains
	}
	seen := make(map[uint64]struct{}, len(c.Chains))
	for i, chain := range c.Chains {
		if chain.ChainID == 0 {
			return fmt.Errorf("chain %d: chain_id is required", i)
		}
		if _, ok := seen[chain.ChainID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateChain, chain.ChainID)
		}
		seen[chain.ChainID] = struct{}{}
		if chain.RPCUrl == "" {
			return fmt.Errorf("chain %d: rpc_url is required", chain.ChainID)
		}
		if chain.WrappedNative != "" && !common.IsHexAddress(chain.WrappedNative) {
			return fmt.Errorf("chain %d: invalid wrapped_native address %q", chain.ChainID, chain.WrappedNative)
		}
	}
	return nil
}

// FindChain returns the entry for chainID, or nil.
func (c *Config) FindChain(chainID uint64) *ChainEntry {
	return util.Find(c.Chains, func(e *ChainEntry) bool {
		return e.ChainID == chainID
	})
}

// ChainConfigs converts the entries for chainManager.
func (c *Config) ChainConfigs() []*chainManager.ChainConfig {
	return util.Map(c.Chains, func(e *ChainEntry, _ uint64) *chainManager.ChainConfig {
		return e.ChainConfig()
	})
}

func (e *ChainEntry) ChainConfig() *chainManager.ChainConfig {
	cfg := &chainManager.ChainConfig{
		ChainID: e.ChainID,
		RPCUrl:  e.RPCUrl,
	}
	if e.WrappedNative != "" {
		cfg.WrappedNative = common.HexToAddress(e.WrappedNative)
	}
	return cfg
}
