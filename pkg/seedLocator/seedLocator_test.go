package seedLocator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newTestLocator(t *testing.T, dir string, candidates ...string) *SeedLocator {
	return NewSeedLocator(&Config{DataDir: dir, Candidates: candidates}, zap.NewNop())
}

func TestSeedLocator_ReadSeed_PrefersEvmSeed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SeedFile, "generic seed")
	writeFile(t, dir, EvmSeedFile, "evm seed")

	seed, err := newTestLocator(t, dir).ReadSeed()

	require.NoError(t, err)
	assert.Equal(t, "evm seed", seed)
}

func TestSeedLocator_ReadSeed_FallsBackToGenericSeed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SeedFile, "generic seed")

	seed, err := newTestLocator(t, dir).ReadSeed()

	require.NoError(t, err)
	assert.Equal(t, "generic seed", seed)
}

func TestSeedLocator_ReadSeed_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EvmSeedFile, "\n\t  word1 word2 word3 \r\n\n")

	seed, err := newTestLocator(t, dir).ReadSeed()

	require.NoError(t, err)
	assert.Equal(t, "word1 word2 word3", seed)
}

func TestSeedLocator_ReadSeed_NoWallet(t *testing.T) {
	seed, err := newTestLocator(t, t.TempDir()).ReadSeed()

	assert.ErrorIs(t, err, ErrNoWalletFound)
	assert.Empty(t, seed)
}

func TestSeedLocator_ReadSeed_CustomOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SeedFile, "generic seed")
	writeFile(t, dir, EvmSeedFile, "evm seed")

	seed, err := newTestLocator(t, dir, SeedFile, EvmSeedFile).ReadSeed()

	require.NoError(t, err)
	assert.Equal(t, "generic seed", seed)
}

func TestSeedLocator_ReadSeed_UnreadableCandidateIsNotSkipped(t *testing.T) {
	dir := t.TempDir()
	// a directory exists but cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, EvmSeedFile), 0o700))
	writeFile(t, dir, SeedFile, "generic seed")

	_, err := newTestLocator(t, dir).ReadSeed()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoWalletFound)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestNewSeedLocator_DefaultCandidates(t *testing.T) {
	l := NewSeedLocator(&Config{DataDir: "/data"}, zap.NewNop())

	assert.Equal(t, []string{"seedEvm.dat", "seed.dat"}, l.config.Candidates)
	assert.Equal(t, filepath.Join("/data", "seed.dat"), l.Path(SeedFile))
}
