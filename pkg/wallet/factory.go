package wallet

import (
	"context"
	"fmt"

	"github.com/BoltzExchange/boltz-evm/pkg/chainManager"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// SeedReader provides the active seed phrase, see seedLocator.SeedLocator.
type SeedReader interface {
	ReadSeed() (string, error)
}

// Factory derives the Boltz wallet from the seed in the data directory.
// Nothing is cached: every call reads the seed and derives again.
type Factory struct {
	seeds  SeedReader
	dial   chainManager.Dialer
	logger *zap.Logger
}

// NewFactory creates a Factory that connects through go-ethereum's ethclient.
func NewFactory(seeds SeedReader, logger *zap.Logger) *Factory {
	return NewFactoryWithDialer(seeds, chainManager.DialEthClient, logger)
}

// NewFactoryWithDialer creates a Factory with a custom Dialer.
func NewFactoryWithDialer(seeds SeedReader, dial chainManager.Dialer, logger *zap.Logger) *Factory {
	return &Factory{
		seeds:  seeds,
		dial:   dial,
		logger: logger,
	}
}

// GetBoltzWallet reads the seed and derives an unconnected wallet.
func (f *Factory) GetBoltzWallet() (*Wallet, error) {
	phrase, err := f.seeds.ReadSeed()
	if err != nil {
		return nil, err
	}
	return FromPhrase(phrase)
}

// GetBoltzAddress returns the address of the Boltz wallet. No network access.
func (f *Factory) GetBoltzAddress() (common.Address, error) {
	w, err := f.GetBoltzWallet()
	if err != nil {
		return common.Address{}, err
	}
	return w.GetAddress()
}

// ConnectEthereum derives the Boltz wallet and connects it to providerUrl.
func (f *Factory) ConnectEthereum(ctx context.Context, providerUrl string) (*Wallet, error) {
	w, err := f.GetBoltzWallet()
	if err != nil {
		return nil, err
	}

	client, err := f.dial(ctx, providerUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to provider %s: %w", providerUrl, err)
	}

	address, _ := w.GetAddress()
	f.logger.Sugar().Debugw("Connected Boltz wallet",
		zap.String("address", address.Hex()),
		zap.String("provider", providerUrl),
	)
	return w.Connect(client), nil
}
