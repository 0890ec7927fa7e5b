// Package config resolves the per-chain sections of the Boltz configuration
// file that the EVM tooling needs: contract deployments and token records.
//
// Parsing is delegated to BurntSushi/toml; this package decides which section
// applies to a chain and fails explicitly when it is absent.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	// ConfigFile is the name of the configuration file inside the data directory
	ConfigFile = "boltz.conf"
	// DefaultDataDirName is the directory under the user's home used when no
	// data directory is given
	DefaultDataDirName = ".boltz"
)

// Chain identifies an EVM chain section in the configuration.
type Chain string

const (
	ChainRsk      Chain = "rsk"
	ChainEthereum Chain = "ethereum"
)

var (
	// ErrConfigurationMissing is returned when a supported chain has no section
	ErrConfigurationMissing = errors.New("configuration missing")
	// ErrUnsupportedChain is returned for identifiers other than rsk and ethereum
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// SupportedChains lists the chain identifiers that can be configured.
func SupportedChains() []Chain {
	return []Chain{ChainRsk, ChainEthereum}
}

// ParseChain validates a chain identifier given as a string.
func ParseChain(s string) (Chain, error) {
	for _, c := range SupportedChains() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, s)
}

// ContractsConfig is one deployment of the swap contracts.
type ContractsConfig struct {
	EtherSwap string `toml:"etherSwap"`
	ERC20Swap string `toml:"erc20Swap"`
}

// TokenConfig describes an asset on the chain. The native asset has no
// ContractAddress.
type TokenConfig struct {
	Symbol          string `toml:"symbol"`
	Decimals        uint8  `toml:"decimals"`
	ContractAddress string `toml:"contractAddress"`
}

// HasContract reports whether the token is backed by an on-chain contract.
func (t *TokenConfig) HasContract() bool {
	return t.ContractAddress != ""
}

// ChainConfig is the section of the configuration for one chain.
type ChainConfig struct {
	NetworkName      string             `toml:"networkName"`
	ProviderEndpoint string             `toml:"providerEndpoint"`
	Contracts        []*ContractsConfig `toml:"contracts"`
	Tokens           []*TokenConfig     `toml:"tokens"`
}

// Config is the subset of boltz.conf relevant to EVM chains. Every other
// section of the file is ignored.
type Config struct {
	Rsk      *ChainConfig `toml:"rsk"`
	Ethereum *ChainConfig `toml:"ethereum"`
}

// Section returns the section for chain, or nil when it is not configured.
func (c *Config) Section(chain Chain) (*ChainConfig, error) {
	switch chain {
	case ChainRsk:
		return c.Rsk, nil
	case ChainEthereum:
		return c.Ethereum, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, chain)
	}
}

// Parse decodes configuration from TOML text.
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// DefaultDataDir returns ~/.boltz.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultDataDirName), nil
}

// IConfigResolver selects the configuration section of a chain.
type IConfigResolver interface {
	// ChainConfig returns the section for chain or ErrConfigurationMissing
	ChainConfig(chain Chain) (*ChainConfig, error)
}

// Resolver loads boltz.conf from a data directory on every lookup.
type Resolver struct {
	dataDir string
	logger  *zap.Logger
}

// NewResolver creates a Resolver reading from dataDir.
func NewResolver(dataDir string, logger *zap.Logger) *Resolver {
	return &Resolver{
		dataDir: dataDir,
		logger:  logger,
	}
}

// Path returns the location of the configuration file.
func (r *Resolver) Path() string {
	return filepath.Join(r.dataDir, ConfigFile)
}

// Load reads and parses the configuration file. A missing file yields an empty
// configuration in which no chain is configured.
func (r *Resolver) Load() (*Config, error) {
	path := r.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Sugar().Debugw("Configuration file does not exist, using empty configuration",
				zap.String("path", path),
			)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ChainConfig loads the configuration and returns the section for chain.
//
// Parameters:
//   - chain: The chain identifier
//
// Returns:
//   - *ChainConfig: The chain's section
//   - error: ErrConfigurationMissing if the section is absent, ErrUnsupportedChain
//     for unknown identifiers, or the load failure
func (r *Resolver) ChainConfig(chain Chain) (*ChainConfig, error) {
	cfg, err := r.Load()
	if err != nil {
		return nil, err
	}

	section, err := cfg.Section(chain)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, fmt.Errorf("%s %w", chain, ErrConfigurationMissing)
	}

	r.logger.Sugar().Debugw("Resolved chain configuration",
		zap.String("chain", string(chain)),
		zap.Int("contracts", len(section.Contracts)),
		zap.Int("tokens", len(section.Tokens)),
	)
	return section, nil
}
