package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "boltz-evm",
		Usage: "Boltz EVM wallet and contract tooling",
		Description: `boltz-evm derives the Boltz wallet from the seed in the data directory
and binds the swap contracts configured in boltz.conf for RSK and Ethereum.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				EnvVars: []string{"DEBUG"},
			},
			&cli.StringFlag{
				Name:    "datadir",
				Usage:   "Boltz data directory containing the seed files and boltz.conf (defaults to ~/.boltz)",
				EnvVars: []string{"BOLTZ_DATA_DIR"},
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   "JSON-RPC endpoint; defaults to the chain's providerEndpoint in boltz.conf",
				EnvVars: []string{"PROVIDER_URL"},
			},
			// Transaction signing options
			&cli.StringFlag{
				Name:    "aws-kms-key-id",
				Usage:   "Sign with this AWS KMS key instead of the wallet seed",
				EnvVars: []string{"AWS_KMS_KEY_ID"},
			},
			&cli.StringFlag{
				Name:    "aws-region",
				Usage:   "AWS region of the KMS key",
				Value:   "us-east-1",
				EnvVars: []string{"AWS_REGION"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "address",
				Usage:  "Print the address of the Boltz wallet",
				Action: addressAction,
			},
			{
				Name:  "contracts",
				Usage: "Bind and print the contracts configured for a chain",
				Description: `Resolve the swap contracts and token of a chain from boltz.conf. When a provider
is available, the swap contract versions and the token symbol are queried too.`,
				Flags:  []cli.Flag{chainFlag()},
				Action: contractsAction,
			},
			{
				Name:   "start-height",
				Usage:  "Print the first block of a retrospective log scan",
				Flags:  []cli.Flag{chainFlag(), deltaFlag()},
				Action: startHeightAction,
			},
			{
				Name:   "lockups",
				Usage:  "List swap contract lockups of the last blocks",
				Flags:  []cli.Flag{chainFlag(), deltaFlag()},
				Action: lockupsAction,
			},
		},
		Before: validateFlags,
	}
}

func chainFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "chain",
		Aliases:  []string{"c"},
		Usage:    "Chain to use: 'rsk' or 'ethereum'",
		Required: true,
		EnvVars:  []string{"CHAIN"},
	}
}

func deltaFlag() cli.Flag {
	return &cli.Uint64Flag{
		Name:    "delta",
		Usage:   "Number of blocks to look back from the chain tip",
		Value:   10_000,
		EnvVars: []string{"LOGS_DELTA"},
	}
}
