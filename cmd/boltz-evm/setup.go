package main

import (
	"context"
	"fmt"

	"github.com/BoltzExchange/boltz-evm/pkg/chainManager"
	"github.com/BoltzExchange/boltz-evm/pkg/config"
	"github.com/BoltzExchange/boltz-evm/pkg/logger"
	"github.com/BoltzExchange/boltz-evm/pkg/seedLocator"
	"github.com/BoltzExchange/boltz-evm/pkg/txSigner"
	"github.com/BoltzExchange/boltz-evm/pkg/wallet"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func validateFlags(c *cli.Context) error {
	if c.String("aws-kms-key-id") != "" && c.String("aws-region") == "" {
		return fmt.Errorf("--aws-region is required when signing with --aws-kms-key-id")
	}
	return nil
}

func setupLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.LoggerConfig{
		Debug: c.Bool("debug"),
	})
}

func setupDataDir(c *cli.Context) (string, error) {
	if dataDir := c.String("datadir"); dataDir != "" {
		return dataDir, nil
	}
	return config.DefaultDataDir()
}

func setupFactory(dataDir string, l *zap.Logger) *wallet.Factory {
	seeds := seedLocator.NewSeedLocator(&seedLocator.Config{DataDir: dataDir}, l)
	return wallet.NewFactory(seeds, l)
}

// chainEnv is what every chain scoped command needs.
type chainEnv struct {
	logger   *zap.Logger
	dataDir  string
	chain    config.Chain
	resolver *config.Resolver
	section  *config.ChainConfig
}

func setupChainEnv(c *cli.Context) (*chainEnv, error) {
	l, err := setupLogger(c)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	chain, err := config.ParseChain(c.String("chain"))
	if err != nil {
		return nil, err
	}

	dataDir, err := setupDataDir(c)
	if err != nil {
		return nil, err
	}

	resolver := config.NewResolver(dataDir, l)
	section, err := resolver.ChainConfig(chain)
	if err != nil {
		return nil, err
	}

	return &chainEnv{
		logger:   l,
		dataDir:  dataDir,
		chain:    chain,
		resolver: resolver,
		section:  section,
	}, nil
}

// providerUrl prefers the --provider flag over the configured endpoint.
func (e *chainEnv) providerUrl(c *cli.Context) string {
	if url := c.String("provider"); url != "" {
		return url
	}
	return e.section.ProviderEndpoint
}

func (e *chainEnv) setupChainManager(ctx context.Context, c *cli.Context) (*chainManager.Chain, error) {
	cm := chainManager.NewChainManager(e.logger)
	err := cm.AddChain(ctx, &chainManager.ChainConfig{
		Chain:  e.chain,
		RPCUrl: e.providerUrl(c),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup chain manager: %w", err)
	}
	return cm.GetChain(e.chain)
}

// setupWallet returns the signing wallet, connected when a provider is known.
func (e *chainEnv) setupWallet(ctx context.Context, c *cli.Context) (*wallet.Wallet, error) {
	providerUrl := e.providerUrl(c)

	if kmsKeyID := c.String("aws-kms-key-id"); kmsKeyID != "" {
		kmsSigner, err := txSigner.NewAWSKMSSigner(kmsKeyID, c.String("aws-region"))
		if err != nil {
			return nil, fmt.Errorf("failed to setup AWS KMS signer: %w", err)
		}
		w := wallet.New(kmsSigner)
		if providerUrl == "" {
			return w, nil
		}
		chain, err := e.setupChainManager(ctx, c)
		if err != nil {
			return nil, err
		}
		return w.Connect(chain.RPCClient), nil
	}

	factory := setupFactory(e.dataDir, e.logger)
	if providerUrl == "" {
		return factory.GetBoltzWallet()
	}
	return factory.ConnectEthereum(ctx, providerUrl)
}
