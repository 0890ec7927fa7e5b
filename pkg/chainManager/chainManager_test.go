package chainManager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/BoltzExchange/boltz-evm/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClient only needs an identity for registry tests
type fakeClient struct {
	EthClientInterface
	url string
}

func newTestManager(dialed *[]string, dialErr error) *ChainManager {
	var mu sync.Mutex
	return NewChainManagerWithDialer(func(_ context.Context, rpcUrl string) (EthClientInterface, error) {
		mu.Lock()
		defer mu.Unlock()
		*dialed = append(*dialed, rpcUrl)
		if dialErr != nil {
			return nil, dialErr
		}
		return &fakeClient{url: rpcUrl}, nil
	}, zap.NewNop())
}

func TestChainManager_AddAndGetChain(t *testing.T) {
	var dialed []string
	cm := newTestManager(&dialed, nil)

	require.NoError(t, cm.AddChain(context.Background(), &ChainConfig{
		Chain:  config.ChainRsk,
		RPCUrl: "http://127.0.0.1:4444",
	}))

	chain, err := cm.GetChain(config.ChainRsk)
	require.NoError(t, err)
	assert.Equal(t, config.ChainRsk, chain.Name())
	assert.Equal(t, "http://127.0.0.1:4444", chain.RPCUrl())
	assert.Equal(t, "http://127.0.0.1:4444", chain.RPCClient.(*fakeClient).url)
	assert.Equal(t, []string{"http://127.0.0.1:4444"}, dialed)
}

func TestChainManager_GetChain_NotFound(t *testing.T) {
	var dialed []string
	cm := newTestManager(&dialed, nil)

	_, err := cm.GetChain(config.ChainEthereum)
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestChainManager_AddChain_Duplicate(t *testing.T) {
	var dialed []string
	cm := newTestManager(&dialed, nil)
	cfg := &ChainConfig{Chain: config.ChainEthereum, RPCUrl: "http://127.0.0.1:8545"}

	require.NoError(t, cm.AddChain(context.Background(), cfg))
	err := cm.AddChain(context.Background(), cfg)

	assert.ErrorContains(t, err, "already exists")
	assert.Len(t, dialed, 1)
}

func TestChainManager_AddChain_DialFailure(t *testing.T) {
	var dialed []string
	dialErr := errors.New("no known transport for URL scheme")
	cm := newTestManager(&dialed, dialErr)

	err := cm.AddChain(context.Background(), &ChainConfig{Chain: config.ChainRsk, RPCUrl: "ftp://node"})

	assert.ErrorIs(t, err, dialErr)
	_, err = cm.GetChain(config.ChainRsk)
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestChainManager_AddConfiguredChain_NoEndpoint(t *testing.T) {
	var dialed []string
	cm := newTestManager(&dialed, nil)

	err := cm.AddConfiguredChain(context.Background(), config.ChainRsk, &config.ChainConfig{})

	assert.ErrorIs(t, err, ErrNoProviderEndpoint)
	assert.Empty(t, dialed)
}

func TestDialEthClient_DoesNotContactHTTPEndpoint(t *testing.T) {
	client, err := DialEthClient(context.Background(), "http://127.0.0.1:1")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
