package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/contracts"
	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/Layr-Labs/txflow-go/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	errInsufficientToken  = errors.New("insufficient input token balance")
	errInsufficientNative = errors.New("insufficient native balance")
)

// withEnvironment builds the environment under the command timeout, runs fn
// and pushes metrics afterwards.
func withEnvironment(c *cli.Context, fn func(ctx context.Context, env *environment) error) error {
	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	env, err := setupEnvironment(ctx, c)
	if err != nil {
		return err
	}
	defer env.pushMetrics(context.Background(), c)
	return fn(ctx, env)
}

func approveAction(c *cli.Context) error {
	return withEnvironment(c, func(ctx context.Context, env *environment) error {
		tokenAddr, err := parseAddress("token", c.String("token"))
		if err != nil {
			return err
		}
		spender, err := parseAddress("spender", c.String("spender"))
		if err != nil {
			return err
		}
		token := contracts.NewToken(tokenAddr, env.chain.RPCClient, env.signer)
		return printResult(env.orchestrator.SetAllowance(ctx, token, spender, env.report))
	})
}

func wrapAction(c *cli.Context) error {
	return wrapOrUnwrap(c, (*orchestrator.Orchestrator).Wrap)
}

func unwrapAction(c *cli.Context) error {
	return wrapOrUnwrap(c, (*orchestrator.Orchestrator).Unwrap)
}

type wrapFunc func(o *orchestrator.Orchestrator, ctx context.Context, wrapper orchestrator.IWrapper, amount *big.Int, report orchestrator.Reporter) orchestrator.Result

func wrapOrUnwrap(c *cli.Context, run wrapFunc) error {
	amount, err := util.ParseAmount(c.String("amount"))
	if err != nil {
		return err
	}
	return withEnvironment(c, func(ctx context.Context, env *environment) error {
		wrapped, err := env.wrappedNative(c)
		if err != nil {
			return err
		}
		wrapper := contracts.NewWrapper(wrapped, env.chain.RPCClient, env.signer)
		return printResult(run(env.orchestrator, ctx, wrapper, amount, env.report))
	})
}

func estimateAction(c *cli.Context) error {
	trade, err := tradeFromFlags(c)
	if err != nil {
		return err
	}
	return withEnvironment(c, func(ctx context.Context, env *environment) error {
		estimate := env.orchestrator.EstimateGas(ctx, trade, env.signer, env.report)
		if !estimate.Ok() {
			return estimate.Err()
		}
		fmt.Printf("Gas Limit: %d\n", estimate.Gas)
		return nil
	})
}

func tradeAction(c *cli.Context) error {
	trade, err := tradeFromFlags(c)
	if err != nil {
		return err
	}
	return withEnvironment(c, func(ctx context.Context, env *environment) error {
		if err := preflight(ctx, env, trade); err != nil {
			return err
		}
		return printResult(env.orchestrator.SendTrade(ctx, trade, env.signer, env.report))
	})
}

// preflight checks balances, fills in a padded gas limit when none was given
// and quotes a gas price when the trade carries none.
func preflight(ctx context.Context, env *environment, trade *orchestrator.Trade) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := orchestrator.HasNativeBalance(gctx, env.signer, trade)
		if err != nil {
			return err
		}
		if !ok {
			return errInsufficientNative
		}
		return nil
	})
	if trade.InputToken != (common.Address{}) {
		g.Go(func() error {
			token := contracts.NewToken(trade.InputToken, env.chain.RPCClient, env.signer)
			ok, err := orchestrator.HasTokenBalance(gctx, token, env.signer, trade)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: need %s of %s", errInsufficientToken, trade.InputAmount, trade.InputToken.Hex())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if trade.Intent.GasLimit == 0 {
		estimate := env.orchestrator.EstimateGas(ctx, trade, env.signer, env.report)
		if !estimate.Ok() {
			return estimate.Err()
		}
		trade.Intent.GasLimit = estimate.Gas
	}
	if trade.Intent.GasPrice == nil {
		gasPrice, err := env.gasSource.GetGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("failed to get gas price: %w", err)
		}
		trade.Intent.GasPrice = gasPrice
	}
	env.logger.Sugar().Infow("trade pre-flight passed",
		zap.Uint64("gasLimit", trade.Intent.GasLimit),
		zap.String("gasPrice", trade.Intent.GasPrice.String()),
	)
	return nil
}

func balanceAction(c *cli.Context) error {
	return withEnvironment(c, func(ctx context.Context, env *environment) error {
		owner, err := env.signer.GetAddress()
		if err != nil {
			return err
		}

		var native, wrapped, tokenBalance, allowance *big.Int
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			native, err = env.signer.GetBalance(gctx)
			return err
		})
		if wrappedAddr, werr := env.wrappedNative(c); werr == nil {
			g.Go(func() error {
				var err error
				wrapped, err = contracts.NewToken(wrappedAddr, env.chain.RPCClient, env.signer).BalanceOf(gctx, owner)
				return err
			})
		}
		if addr := c.String("token"); addr != "" {
			tokenAddr, err := parseAddress("token", addr)
			if err != nil {
				return err
			}
			token := contracts.NewToken(tokenAddr, env.chain.RPCClient, env.signer)
			g.Go(func() error {
				var err error
				tokenBalance, err = token.BalanceOf(gctx, owner)
				return err
			})
			if s := c.String("spender"); s != "" {
				spender, err := parseAddress("spender", s)
				if err != nil {
					return err
				}
				g.Go(func() error {
					var err error
					allowance, err = token.Allowance(gctx, owner, spender)
					return err
				})
			}
		}
		if err := g.Wait(); err != nil {
			return err
		}

		printBalances(owner, native, wrapped, tokenBalance, allowance)
		return nil
	})
}

// tradeArgs are the raw trade flags.
type tradeArgs struct {
	To          string
	Data        string
	Value       string
	GasLimit    uint64
	InputToken  string
	InputAmount string
}

func tradeFromFlags(c *cli.Context) (*orchestrator.Trade, error) {
	return buildTrade(tradeArgs{
		To:          c.String("to"),
		Data:        c.String("data"),
		Value:       c.String("value"),
		GasLimit:    c.Uint64("gas-limit"),
		InputToken:  c.String("input-token"),
		InputAmount: c.String("input-amount"),
	})
}

func buildTrade(args tradeArgs) (*orchestrator.Trade, error) {
	to, err := parseAddress("to", args.To)
	if err != nil {
		return nil, err
	}
	data, err := hexutil.Decode(args.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid --data: %w", err)
	}
	trade := &orchestrator.Trade{
		Intent: orchestrator.Intent{
			To:       to,
			Data:     data,
			GasLimit: args.GasLimit,
		},
	}
	if args.Value != "" {
		if trade.Intent.Value, err = util.ParseAmount(args.Value); err != nil {
			return nil, fmt.Errorf("invalid --value: %w", err)
		}
	}
	if args.InputToken != "" {
		if trade.InputToken, err = parseAddress("input-token", args.InputToken); err != nil {
			return nil, err
		}
		if args.InputAmount == "" {
			return nil, fmt.Errorf("--input-amount is required with --input-token")
		}
		if trade.InputAmount, err = util.ParseAmount(args.InputAmount); err != nil {
			return nil, fmt.Errorf("invalid --input-amount: %w", err)
		}
	}
	return trade, nil
}
