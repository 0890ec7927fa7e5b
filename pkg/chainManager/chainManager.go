// Package chainManager manages the JSON-RPC connections to the EVM chains
// Boltz operates on, and the chain queries built directly on them.
package chainManager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BoltzExchange/boltz-evm/pkg/config"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

var (
	// ErrChainNotFound is returned when a requested chain is not registered in the manager
	ErrChainNotFound = errors.New("chain not found")
	// ErrNoProviderEndpoint is returned when a chain has no RPC URL to dial
	ErrNoProviderEndpoint = errors.New("no provider endpoint configured")
)

// IChainManager defines the interface for managing blockchain connections.
type IChainManager interface {
	// AddChain dials and registers a chain
	AddChain(ctx context.Context, cfg *ChainConfig) error
	// GetChain retrieves a registered chain by its identifier
	GetChain(chain config.Chain) (*Chain, error)
}

// ChainConfig holds what is needed to connect to a chain.
type ChainConfig struct {
	// Chain is the configuration identifier of the chain
	Chain config.Chain
	// RPCUrl is the URL endpoint for connecting to the blockchain RPC
	RPCUrl string
}

// Chain represents an active connection to a blockchain.
type Chain struct {
	config *ChainConfig
	// RPCClient is the active client connection for this chain
	RPCClient EthClientInterface
}

// Name returns the chain identifier.
func (c *Chain) Name() config.Chain {
	return c.config.Chain
}

// RPCUrl returns the endpoint the client was dialled with.
func (c *Chain) RPCUrl() string {
	return c.config.RPCUrl
}

// Dialer opens a client for an RPC URL.
type Dialer func(ctx context.Context, rpcUrl string) (EthClientInterface, error)

// DialEthClient is the default Dialer, backed by go-ethereum's ethclient.
// HTTP endpoints are not contacted until the first request.
func DialEthClient(ctx context.Context, rpcUrl string) (EthClientInterface, error) {
	client, err := ethclient.DialContext(ctx, rpcUrl)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ChainManager implements IChainManager. Safe for concurrent use.
type ChainManager struct {
	Chains sync.Map // map[config.Chain]*Chain
	dial   Dialer
	logger *zap.Logger
}

// NewChainManager creates a ChainManager that dials with go-ethereum's ethclient.
func NewChainManager(logger *zap.Logger) *ChainManager {
	return NewChainManagerWithDialer(DialEthClient, logger)
}

// NewChainManagerWithDialer creates a ChainManager using a custom Dialer.
func NewChainManagerWithDialer(dial Dialer, logger *zap.Logger) *ChainManager {
	return &ChainManager{
		dial:   dial,
		logger: logger,
	}
}

// AddChain dials cfg.RPCUrl and registers the resulting client.
//
// Parameters:
//   - ctx: Context for dialling
//   - cfg: The chain identifier and RPC URL
//
// Returns:
//   - error: An error if the chain already exists, has no URL, or dialling fails
func (cm *ChainManager) AddChain(ctx context.Context, cfg *ChainConfig) error {
	if cfg.RPCUrl == "" {
		return fmt.Errorf("%s: %w", cfg.Chain, ErrNoProviderEndpoint)
	}
	if _, exists := cm.Chains.Load(cfg.Chain); exists {
		return fmt.Errorf("chain %s already exists", cfg.Chain)
	}
	client, err := cm.dial(ctx, cfg.RPCUrl)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC URL %s: %w", cfg.RPCUrl, err)
	}
	if _, loaded := cm.Chains.LoadOrStore(cfg.Chain, &Chain{config: cfg, RPCClient: client}); loaded {
		return fmt.Errorf("chain %s already exists", cfg.Chain)
	}
	cm.logger.Sugar().Debugw("Added chain", zap.String("chain", string(cfg.Chain)))
	return nil
}

// AddConfiguredChain registers chain using its providerEndpoint from section.
func (cm *ChainManager) AddConfiguredChain(ctx context.Context, chain config.Chain, section *config.ChainConfig) error {
	return cm.AddChain(ctx, &ChainConfig{
		Chain:  chain,
		RPCUrl: section.ProviderEndpoint,
	})
}

// GetChain retrieves a chain connection by its identifier.
//
// Returns:
//   - *Chain: The chain connection if found
//   - error: ErrChainNotFound if the chain is not registered
func (cm *ChainManager) GetChain(chain config.Chain) (*Chain, error) {
	value, exists := cm.Chains.Load(chain)
	if !exists {
		return nil, fmt.Errorf("%s: %w", chain, ErrChainNotFound)
	}
	c, ok := value.(*Chain)
	if !ok {
		return nil, fmt.Errorf("invalid chain type stored for %s", chain)
	}
	return c, nil
}
