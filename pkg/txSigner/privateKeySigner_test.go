package txSigner

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func newTestTx(chainID *big.Int) *types.Transaction {
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     1,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(1),
	})
}

func TestNewPrivateKeySigner(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)

	address, err := signer.GetAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), address)
}

func TestNewPrivateKeySigner_InvalidKey(t *testing.T) {
	_, err := NewPrivateKeySigner("0xnothex")
	assert.ErrorContains(t, err, "failed to parse private key")
}

func TestNewPrivateKeySignerFromECDSA_Nil(t *testing.T) {
	_, err := NewPrivateKeySignerFromECDSA(nil)
	assert.Error(t, err)
}

func TestPrivateKeySigner_GetTransactOpts(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)

	chainID := big.NewInt(31337)
	ctx := context.Background()
	opts, err := signer.GetTransactOpts(ctx, chainID)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(testAddress), opts.From)
	assert.Equal(t, ctx, opts.Context)
	assert.False(t, opts.NoSend)

	signed, err := opts.Signer(opts.From, newTestTx(chainID))
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, opts.From, sender)
}

func TestPrivateKeySigner_GetNoSendTransactOpts(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer, err := NewPrivateKeySignerFromECDSA(key)
	require.NoError(t, err)

	opts, err := signer.GetNoSendTransactOpts(context.Background(), big.NewInt(30))
	require.NoError(t, err)
	assert.True(t, opts.NoSend)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), opts.From)
}

func TestPrivateKeySigner_NilChainID(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)

	_, err = signer.GetTransactOpts(context.Background(), nil)
	assert.Error(t, err)
}
