package main

import (
	"context"
	"fmt"

	"github.com/BoltzExchange/boltz-evm/pkg/chainManager"
	"github.com/BoltzExchange/boltz-evm/pkg/contracts"
	"github.com/BoltzExchange/boltz-evm/pkg/util"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	cli "github.com/urfave/cli/v2"
)

func addressAction(c *cli.Context) error {
	l, err := setupLogger(c)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	dataDir, err := setupDataDir(c)
	if err != nil {
		return err
	}

	address, err := setupFactory(dataDir, l).GetBoltzAddress()
	if err != nil {
		return fmt.Errorf("failed to get Boltz address: %w", err)
	}

	fmt.Println(address.Hex())
	return nil
}

func contractsAction(c *cli.Context) error {
	ctx := context.Background()

	env, err := setupChainEnv(c)
	if err != nil {
		return err
	}
	w, err := env.setupWallet(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to setup wallet: %w", err)
	}

	bound, err := contracts.NewBinder(env.resolver, env.logger).GetContracts(env.chain, w)
	if err != nil {
		return fmt.Errorf("failed to get contracts: %w", err)
	}

	signerAddress, err := w.GetAddress()
	if err != nil {
		return err
	}

	fmt.Printf("Chain: %s\n", env.chain)
	fmt.Printf("Signer: %s\n", signerAddress.Hex())
	names := []string{"EtherSwap", "ERC20Swap", "Token"}
	addresses := []common.Address{bound.EtherSwap.Address(), bound.ERC20Swap.Address(), bound.Token.Address()}
	for _, line := range util.Map(addresses, func(a common.Address, i uint64) string {
		return fmt.Sprintf("  %-9s %s", names[i], a.Hex())
	}) {
		fmt.Println(line)
	}

	if !w.IsConnected() {
		return nil
	}

	opts := &bind.CallOpts{Context: ctx}
	etherSwapVersion, err := bound.EtherSwap.Version(opts)
	if err != nil {
		return err
	}
	erc20SwapVersion, err := bound.ERC20Swap.Version(opts)
	if err != nil {
		return err
	}
	symbol, err := bound.Token.Symbol(opts)
	if err != nil {
		return err
	}

	fmt.Printf("EtherSwap version: %d\n", etherSwapVersion)
	fmt.Printf("ERC20Swap version: %d\n", erc20SwapVersion)
	fmt.Printf("Token symbol: %s\n", symbol)
	return nil
}

func startHeightAction(c *cli.Context) error {
	ctx := context.Background()

	env, err := setupChainEnv(c)
	if err != nil {
		return err
	}
	chain, err := env.setupChainManager(ctx, c)
	if err != nil {
		return err
	}

	start, err := chainManager.GetLogsQueryStartHeight(ctx, chain.RPCClient, c.Uint64("delta"))
	if err != nil {
		return err
	}

	fmt.Println(start)
	return nil
}

func lockupsAction(c *cli.Context) error {
	ctx := context.Background()

	env, err := setupChainEnv(c)
	if err != nil {
		return err
	}
	w, err := env.setupWallet(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to setup wallet: %w", err)
	}
	if !w.IsConnected() {
		return fmt.Errorf("%s: %w", env.chain, chainManager.ErrNoProviderEndpoint)
	}

	bound, err := contracts.NewBinder(env.resolver, env.logger).GetContracts(env.chain, w)
	if err != nil {
		return fmt.Errorf("failed to get contracts: %w", err)
	}

	start, err := chainManager.GetLogsQueryStartHeight(ctx, w.Client(), c.Uint64("delta"))
	if err != nil {
		return err
	}
	env.logger.Sugar().Infow("Scanning lockups",
		"chain", env.chain,
		"fromBlock", start,
	)

	etherLockups, err := bound.EtherSwap.FilterLockups(ctx, start)
	if err != nil {
		return err
	}
	for _, lockup := range etherLockups {
		fmt.Printf("EtherSwap block=%d tx=%s preimageHash=%s amount=%s claim=%s refund=%s timelock=%s\n",
			lockup.Raw.BlockNumber,
			lockup.Raw.TxHash.Hex(),
			hexutil.Encode(lockup.PreimageHash[:]),
			lockup.Amount,
			lockup.ClaimAddress.Hex(),
			lockup.RefundAddress.Hex(),
			lockup.Timelock,
		)
	}

	erc20Lockups, err := bound.ERC20Swap.FilterLockups(ctx, start)
	if err != nil {
		return err
	}
	for _, lockup := range erc20Lockups {
		fmt.Printf("ERC20Swap block=%d tx=%s preimageHash=%s token=%s amount=%s claim=%s refund=%s timelock=%s\n",
			lockup.Raw.BlockNumber,
			lockup.Raw.TxHash.Hex(),
			hexutil.Encode(lockup.PreimageHash[:]),
			lockup.TokenAddress.Hex(),
			lockup.Amount,
			lockup.ClaimAddress.Hex(),
			lockup.RefundAddress.Hex(),
			lockup.Timelock,
		)
	}
	return nil
}
