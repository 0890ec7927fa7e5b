// Package seedLocator finds the wallet seed phrase an operator placed in the
// Boltz data directory.
//
// Candidate files are checked in priority order and the first one that exists
// is the active seed, even when later candidates exist too.
package seedLocator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// EvmSeedFile holds a seed dedicated to EVM chains
	EvmSeedFile = "seedEvm.dat"
	// SeedFile is the generic seed shared with the other wallets
	SeedFile = "seed.dat"
)

var (
	// ErrNoWalletFound is returned when none of the candidate seed files exist
	ErrNoWalletFound = errors.New("no Boltz wallet found")
)

// DefaultCandidates returns the canonical lookup order: EVM specific seed first.
func DefaultCandidates() []string {
	return []string{EvmSeedFile, SeedFile}
}

// Config controls where the locator looks for seed files.
type Config struct {
	// DataDir is the base data directory the candidates are resolved against
	DataDir string
	// Candidates are file names in priority order. Empty means DefaultCandidates.
	Candidates []string
}

// SeedLocator reads the active seed phrase from the data directory.
// It only ever reads from the filesystem.
type SeedLocator struct {
	config *Config
	logger *zap.Logger
}

// NewSeedLocator creates a SeedLocator for the given data directory.
//
// Parameters:
//   - cfg: The data directory and candidate list
//   - logger: A zap logger
//
// Returns:
//   - *SeedLocator: A new locator
func NewSeedLocator(cfg *Config, logger *zap.Logger) *SeedLocator {
	candidates := cfg.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	return &SeedLocator{
		config: &Config{
			DataDir:    cfg.DataDir,
			Candidates: append([]string(nil), candidates...),
		},
		logger: logger,
	}
}

// Path returns the absolute location of a candidate file.
func (s *SeedLocator) Path(file string) string {
	return filepath.Join(s.config.DataDir, file)
}

// ReadSeed returns the trimmed contents of the first candidate file that exists.
//
// Returns:
//   - string: The seed phrase with surrounding whitespace removed
//   - error: ErrNoWalletFound if no candidate exists, or the filesystem error
//     that prevented a candidate from being checked or read
func (s *SeedLocator) ReadSeed() (string, error) {
	for _, file := range s.config.Candidates {
		path := s.Path(file)

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Sugar().Debugw("Seed candidate does not exist", zap.String("path", path))
				continue
			}
			return "", fmt.Errorf("failed to check seed file %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read seed file %s: %w", path, err)
		}

		s.logger.Sugar().Debugw("Using seed file", zap.String("path", path))
		return strings.TrimSpace(string(data)), nil
	}

	return "", ErrNoWalletFound
}
