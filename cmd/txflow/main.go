package main

import (
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "txflow",
		Usage: "Submit token approvals, wraps, unwraps and trades and track them until mined",
		Description: `txflow signs and submits transactions against an EVM chain and reports every
lifecycle transition (send, mined, rejected, failed) as it happens. Trades are
pre-flighted with balance checks and gas estimation before submission.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				EnvVars: []string{"DEBUG"},
			},
			&cli.BoolFlag{
				Name:    "log-console",
				Usage:   "Log in human readable console format instead of JSON",
				EnvVars: []string{"LOG_CONSOLE"},
			},
			&cli.StringFlag{
				Name:    "rpc-url",
				Usage:   "RPC endpoint of the chain to transact on",
				EnvVars: []string{"RPC_URL"},
			},
			&cli.Uint64Flag{
				Name:    "chain-id",
				Usage:   "Chain ID to transact on (queried from the node when omitted with --rpc-url)",
				EnvVars: []string{"CHAIN_ID"},
			},
			&cli.StringFlag{
				Name:    "chains-file",
				Usage:   "TOML file declaring [[chain]] entries with chain_id, rpc_url and wrapped_native",
				EnvVars: []string{"CHAINS_FILE"},
			},
			// Transaction signing options
			&cli.StringFlag{
				Name:    "tx-private-key",
				Usage:   "Private key for transaction signing (hex format, with or without 0x prefix)",
				EnvVars: []string{"TX_PRIVATE_KEY"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-kms-key-id",
				Usage:   "AWS KMS key ID for transaction signing",
				EnvVars: []string{"TX_AWS_KMS_KEY_ID"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-secret-name",
				Usage:   "AWS Secrets Manager secret holding a hex private key for transaction signing",
				EnvVars: []string{"TX_AWS_SECRET_NAME"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-region",
				Usage:   "AWS region for the transaction signing KMS key or secret",
				Value:   "us-east-1",
				EnvVars: []string{"TX_AWS_REGION"},
			},
			// Gas options
			&cli.Uint64Flag{
				Name:    "gas-price-gwei",
				Usage:   "Fixed gas price in gwei (defaults to the node's suggestion)",
				EnvVars: []string{"GAS_PRICE_GWEI"},
			},
			&cli.Uint64Flag{
				Name:    "fallback-gas-price-gwei",
				Usage:   "Gas price in gwei used when the node cannot suggest one",
				Value:   15,
				EnvVars: []string{"FALLBACK_GAS_PRICE_GWEI"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Maximum time to wait for a command, including confirmations",
				Value:   5 * time.Minute,
				EnvVars: []string{"TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "metrics-pushgateway",
				Usage:   "Prometheus Pushgateway URL to push lifecycle metrics to when the command finishes",
				EnvVars: []string{"METRICS_PUSHGATEWAY"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "approve",
				Usage: "Approve a spender for the maximum amount of a token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Usage: "ERC-20 token address", Required: true},
					&cli.StringFlag{Name: "spender", Usage: "Address to authorize", Required: true},
				},
				Action: approveAction,
			},
			{
				Name:  "wrap",
				Usage: "Wrap native asset into its wrapped token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "amount", Usage: "Amount in wei", Required: true},
					wrappedNativeFlag,
				},
				Action: wrapAction,
			},
			{
				Name:  "unwrap",
				Usage: "Unwrap wrapped tokens back into the native asset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "amount", Usage: "Amount in wei", Required: true},
					wrappedNativeFlag,
				},
				Action: unwrapAction,
			},
			{
				Name:   "estimate",
				Usage:  "Simulate a prepared trade and print the padded gas limit",
				Flags:  tradeFlags,
				Action: estimateAction,
			},
			{
				Name:  "trade",
				Usage: "Pre-flight and submit a prepared trade",
				Description: `Checks the signer holds the input token and native value, estimates gas when
no --gas-limit is given, then submits the trade and waits for it to be mined.`,
				Flags:  tradeFlags,
				Action: tradeAction,
			},
			{
				Name:  "balance",
				Usage: "Print native, wrapped native and token balances of the signer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Usage: "ERC-20 token address"},
					&cli.StringFlag{Name: "spender", Usage: "Also print the token allowance granted to this address"},
					wrappedNativeFlag,
				},
				Action: balanceAction,
			},
		},
		Before: validateFlags,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var wrappedNativeFlag = &cli.StringFlag{
	Name:  "wrapped-native",
	Usage: "Wrapped native token address (overrides the chains file)",
}

var tradeFlags = []cli.Flag{
	&cli.StringFlag{Name: "to", Usage: "Router or contract the trade calls", Required: true},
	&cli.StringFlag{Name: "data", Usage: "Hex encoded calldata", Required: true},
	&cli.StringFlag{Name: "value", Usage: "Native value in wei attached to the trade"},
	&cli.Uint64Flag{Name: "gas-limit", Usage: "Gas limit (estimated when omitted)"},
	&cli.StringFlag{Name: "input-token", Usage: "Token spent by the trade, checked against the signer's balance"},
	&cli.StringFlag{Name: "input-amount", Usage: "Amount of input token in its smallest unit"},
}

func validateFlags(c *cli.Context) error {
	// Validate transaction signing configuration
	txOptions := 0
	for _, name := range []string{"tx-private-key", "tx-aws-kms-key-id", "tx-aws-secret-name"} {
		if c.String(name) != "" {
			txOptions++
		}
	}
	if txOptions == 0 {
		return fmt.Errorf("must specify one of: --tx-private-key, --tx-aws-kms-key-id, or --tx-aws-secret-name for transaction signing")
	}
	if txOptions > 1 {
		return fmt.Errorf("can only specify one transaction signing option")
	}

	// Validate chain configuration
	if c.String("rpc-url") == "" && c.String("chains-file") == "" {
		return fmt.Errorf("must specify either --rpc-url or --chains-file")
	}
	if c.String("rpc-url") != "" && c.String("chains-file") != "" {
		return fmt.Errorf("cannot specify both --rpc-url and --chains-file")
	}
	return nil
}
