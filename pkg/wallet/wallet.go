// Package wallet turns the Boltz wallet seed into a signing identity.
//
// Derivation follows BIP39/BIP44 on the standard Ethereum path so that the
// same phrase always yields the same key and address as other wallets.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/BoltzExchange/boltz-evm/pkg/chainManager"
	"github.com/BoltzExchange/boltz-evm/pkg/txSigner"
	bip39 "github.com/base/go-bip39"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultDerivationPath is the first account of the first Ethereum wallet.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

var (
	// ErrInvalidSeedPhrase is returned when a phrase cannot be turned into key material
	ErrInvalidSeedPhrase = errors.New("invalid seed phrase")
	// ErrNotConnected is returned when a network operation is requested from
	// a wallet without a client
	ErrNotConnected = errors.New("wallet is not connected to a provider")
)

// Wallet pairs a transaction signer with the node it submits through.
// A Wallet without a client can only derive its address and sign offline.
type Wallet struct {
	txSigner.ITransactionSigner
	client chainManager.EthClientInterface
}

// New wraps a signer in an unconnected Wallet.
func New(signer txSigner.ITransactionSigner) *Wallet {
	return &Wallet{ITransactionSigner: signer}
}

// Connect returns a copy of the wallet bound to client. The receiver is not modified.
func (w *Wallet) Connect(client chainManager.EthClientInterface) *Wallet {
	return &Wallet{
		ITransactionSigner: w.ITransactionSigner,
		client:             client,
	}
}

// Client returns the connected node client, or nil.
func (w *Wallet) Client() chainManager.EthClientInterface {
	return w.client
}

// Backend returns the client as a contract backend, or nil when unconnected.
func (w *Wallet) Backend() bind.ContractBackend {
	if w.client == nil {
		return nil
	}
	return w.client
}

// IsConnected reports whether the wallet has a client.
func (w *Wallet) IsConnected() bool {
	return w.client != nil
}

// ChainID queries the chain id of the connected node.
func (w *Wallet) ChainID(ctx context.Context) (*big.Int, error) {
	if w.client == nil {
		return nil, ErrNotConnected
	}
	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID, nil
}

// TransactOpts returns transaction options for the connected chain.
func (w *Wallet) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := w.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	return w.GetTransactOpts(ctx, chainID)
}

// DeriveKey derives the private key at derivationPath from a mnemonic phrase.
// Word separators are normalised to single spaces before derivation.
func DeriveKey(phrase string, derivationPath string) (*ecdsa.PrivateKey, error) {
	mnemonic := strings.Join(strings.Fields(phrase), " ")

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeedPhrase, err)
	}

	path, err := accounts.ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %s: %w", derivationPath, err)
	}

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeedPhrase, err)
	}
	for _, index := range path {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", index, err)
		}
	}

	privateKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	return crypto.ToECDSA(privateKey.Serialize())
}

// FromPhrase derives an unconnected Wallet on DefaultDerivationPath.
func FromPhrase(phrase string) (*Wallet, error) {
	key, err := DeriveKey(phrase, DefaultDerivationPath)
	if err != nil {
		return nil, err
	}
	signer, err := txSigner.NewPrivateKeySignerFromECDSA(key)
	if err != nil {
		return nil, err
	}
	return New(signer), nil
}
