package contracts

import (
	"context"
	"math/big"
	"testing"

	"github.com/BoltzExchange/boltz-evm/pkg/config"
	"github.com/BoltzExchange/boltz-evm/pkg/txSigner"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// MockContractBackend fails the test on any call without an expectation,
// which also proves binding does no network I/O.
type MockContractBackend struct {
	bind.ContractBackend
	mock.Mock
}

func (m *MockContractBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	args := m.Called(ctx, call, blockNumber)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func (m *MockContractBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	args := m.Called(ctx, query)
	logs, _ := args.Get(0).([]types.Log)
	return logs, args.Error(1)
}

type testSigner struct {
	*txSigner.PrivateKeySigner
	backend bind.ContractBackend
}

func (s *testSigner) Backend() bind.ContractBackend {
	return s.backend
}

func newTestSigner(t *testing.T, backend *MockContractBackend) *testSigner {
	key, err := txSigner.NewPrivateKeySigner(testPrivateKey)
	require.NoError(t, err)
	s := &testSigner{PrivateKeySigner: key}
	if backend != nil {
		s.backend = backend
		t.Cleanup(func() { backend.AssertExpectations(t) })
	}
	return s
}

func testSection() *config.ChainConfig {
	return &config.ChainConfig{
		Contracts: []*config.ContractsConfig{{
			EtherSwap: "0x00000000000000000000000000000000000000aa",
			ERC20Swap: "0x00000000000000000000000000000000000000bb",
		}},
		Tokens: []*config.TokenConfig{
			{Symbol: "ETH"},
			{Symbol: "USDT", ContractAddress: "0x00000000000000000000000000000000000000cc"},
		},
	}
}
