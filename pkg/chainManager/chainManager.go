// Package chainManager manages connections to the EVM networks transactions are submitted to.
// Each chain is registered with its RPC endpoint and the address of its wrapped
// native asset contract, and can be looked up by chain ID.
package chainManager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	// ErrChainNotFound is returned when a requested chain ID is not found in the manager
	ErrChainNotFound = errors.New("chain not found")
)

// IChainManager defines the interface for managing blockchain connections.
type IChainManager interface {
	// AddChain dials the chain's RPC endpoint and registers it
	AddChain(cfg *ChainConfig) error
	// GetChainForId retrieves a chain connection by its chain ID
	GetChainForId(chainId uint64) (*Chain, error)
}

// ChainConfig holds the configuration for connecting to a blockchain.
type ChainConfig struct {
	// ChainID is the unique identifier for the blockchain network
	ChainID uint64
	// RPCUrl is the URL endpoint for connecting to the blockchain RPC
	RPCUrl string
	// WrappedNative is the wrapper contract for the chain's native asset (WETH, WMATIC, ...)
	WrappedNative common.Address
}

// Chain represents an active connection to a blockchain.
type Chain struct {
	config *ChainConfig
	// RPCClient is the active client connection for this chain
	RPCClient EthClientInterface
}

// NewChain wraps an existing client, mainly for tests and embedded backends.
func NewChain(cfg *ChainConfig, client EthClientInterface) *Chain {
	return &Chain{
		config:    cfg,
		RPCClient: client,
	}
}

// Config returns the configuration the chain was registered with.
func (c *Chain) Config() *ChainConfig {
	return c.config
}

// ChainManager implements IChainManager and is safe for concurrent use.
type ChainManager struct {
	Chains sync.Map // map[uint64]*Chain
}

// NewChainManager creates a new ChainManager with an empty chain registry.
func NewChainManager() *ChainManager {
	return &ChainManager{}
}

// AddChain adds a new blockchain connection to the manager.
//
// Parameters:
//   - cfg: The chain configuration containing chain ID, RPC URL and wrapped native address
//
// Returns:
//   - error: An error if the chain already exists or connection fails
func (cm *ChainManager) AddChain(cfg *ChainConfig) error {
	if _, exists := cm.Chains.Load(cfg.ChainID); exists {
		return fmt.Errorf("chain with ID %d already exists", cfg.ChainID)
	}
	client, err := ethclient.Dial(cfg.RPCUrl)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC URL %s: %w", cfg.RPCUrl, err)
	}
	return cm.addChain(NewChain(cfg, client))
}

// AddChainWithClient registers a chain backed by an already constructed client.
func (cm *ChainManager) AddChainWithClient(cfg *ChainConfig, client EthClientInterface) error {
	return cm.addChain(NewChain(cfg, client))
}

func (cm *ChainManager) addChain(chain *Chain) error {
	if _, loaded := cm.Chains.LoadOrStore(chain.config.ChainID, chain); loaded {
		return fmt.Errorf("chain with ID %d already exists", chain.config.ChainID)
	}
	return nil
}

// GetChainForId retrieves a chain connection by its chain ID.
//
// Returns:
//   - *Chain: The chain connection if found
//   - error: ErrChainNotFound if the chain ID is not registered
func (cm *ChainManager) GetChainForId(chainId uint64) (*Chain, error) {
	value, exists := cm.Chains.Load(chainId)
	if !exists {
		return nil, ErrChainNotFound
	}
	chain, ok := value.(*Chain)
	if !ok {
		return nil, fmt.Errorf("invalid chain type stored for ID %d", chainId)
	}
	return chain, nil
}
