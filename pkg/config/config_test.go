package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testConfig = `
datadir = "/home/boltz/.boltz"
loglevel = "debug"

[[currencies]]
symbol = "BTC"
network = "bitcoinRegtest"

[ethereum]
networkName = "Anvil"
providerEndpoint = "http://127.0.0.1:8545"

  [[ethereum.contracts]]
  etherSwap = "0x00000000000000000000000000000000000000aa"
  erc20Swap = "0x00000000000000000000000000000000000000bb"

  [[ethereum.contracts]]
  etherSwap = "0x0000000000000000000000000000000000000011"
  erc20Swap = "0x0000000000000000000000000000000000000022"

  [[ethereum.tokens]]
  symbol = "ETH"

  [[ethereum.tokens]]
  symbol = "USDT"
  decimals = 6
  contractAddress = "0x00000000000000000000000000000000000000cc"
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o600))
}

func TestResolver_ChainConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, testConfig)

	section, err := NewResolver(dir, zap.NewNop()).ChainConfig(ChainEthereum)

	require.NoError(t, err)
	assert.Equal(t, "Anvil", section.NetworkName)
	assert.Equal(t, "http://127.0.0.1:8545", section.ProviderEndpoint)
	require.Len(t, section.Contracts, 2)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", section.Contracts[0].EtherSwap)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", section.Contracts[0].ERC20Swap)
	require.Len(t, section.Tokens, 2)
	assert.False(t, section.Tokens[0].HasContract())
	assert.True(t, section.Tokens[1].HasContract())
	assert.Equal(t, uint8(6), section.Tokens[1].Decimals)
}

func TestResolver_ChainConfig_MissingSection(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, testConfig)

	section, err := NewResolver(dir, zap.NewNop()).ChainConfig(ChainRsk)

	assert.ErrorIs(t, err, ErrConfigurationMissing)
	assert.EqualError(t, err, "rsk configuration missing")
	assert.Nil(t, section)
}

func TestResolver_ChainConfig_MissingFile(t *testing.T) {
	_, err := NewResolver(t.TempDir(), zap.NewNop()).ChainConfig(ChainEthereum)

	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

func TestResolver_ChainConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[ethereum\nprovider =")

	_, err := NewResolver(dir, zap.NewNop()).ChainConfig(ChainEthereum)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigurationMissing)
	assert.Contains(t, err.Error(), "failed to parse configuration")
}

func TestResolver_ChainConfig_UnsupportedChain(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, testConfig)

	_, err := NewResolver(dir, zap.NewNop()).ChainConfig(Chain("polygon"))

	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestParseChain(t *testing.T) {
	chain, err := ParseChain("rsk")
	require.NoError(t, err)
	assert.Equal(t, ChainRsk, chain)

	chain, err = ParseChain("ethereum")
	require.NoError(t, err)
	assert.Equal(t, ChainEthereum, chain)

	_, err = ParseChain("RSK")
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("HOME", "/home/operator")

	dir, err := DefaultDataDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/operator", ".boltz"), dir)
}
