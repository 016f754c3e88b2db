package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txflow-go/pkg/chainManager"
	"github.com/Layr-Labs/txflow-go/pkg/config"
	"github.com/Layr-Labs/txflow-go/pkg/gasOracle"
	"github.com/Layr-Labs/txflow-go/pkg/ledger"
	"github.com/Layr-Labs/txflow-go/pkg/logger"
	"github.com/Layr-Labs/txflow-go/pkg/metrics"
	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/Layr-Labs/txflow-go/pkg/txSigner"
	"github.com/Layr-Labs/txflow-go/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// environment is everything a command needs to transact on one chain.
type environment struct {
	operationID  string
	logger       *zap.Logger
	chain        *chainManager.Chain
	signer       *ledger.Signer
	gasSource    orchestrator.IGasPriceSource
	orchestrator *orchestrator.Orchestrator
	metrics      *metrics.Metrics
	report       orchestrator.Reporter
}

func setupLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.LoggerConfig{
		Debug:   c.Bool("debug"),
		Console: c.Bool("log-console"),
	})
}

func setupChainManager(ctx context.Context, c *cli.Context) (*chainManager.ChainManager, uint64, error) {
	cm := chainManager.NewChainManager()
	chainID := c.Uint64("chain-id")

	if path := c.String("chains-file"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, 0, err
		}
		for _, chainConfig := range cfg.ChainConfigs() {
			if err := cm.AddChain(chainConfig); err != nil {
				return nil, 0, fmt.Errorf("failed to add chain %d: %w", chainConfig.ChainID, err)
			}
		}
		if chainID == 0 {
			if len(cfg.Chains) > 1 {
				return nil, 0, fmt.Errorf("--chain-id is required when the chains file declares %d chains", len(cfg.Chains))
			}
			chainID = cfg.Chains[0].ChainID
		}
		return cm, chainID, nil
	}

	rpcURL := c.String("rpc-url")
	if chainID != 0 {
		if err := cm.AddChain(&chainManager.ChainConfig{ChainID: chainID, RPCUrl: rpcURL}); err != nil {
			return nil, 0, fmt.Errorf("failed to add chain %d: %w", chainID, err)
		}
		return cm, chainID, nil
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to connect to RPC URL %s: %w", rpcURL, err)
	}
	id, err := client.ChainID(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get chain ID from %s: %w", rpcURL, err)
	}
	chainID = id.Uint64()
	if err := cm.AddChainWithClient(&chainManager.ChainConfig{ChainID: chainID, RPCUrl: rpcURL}, client); err != nil {
		return nil, 0, err
	}
	return cm, chainID, nil
}

func setupTransactionSigner(ctx context.Context, c *cli.Context) (txSigner.ITransactionSigner, error) {
	if privateKey := c.String("tx-private-key"); privateKey != "" {
		return txSigner.NewPrivateKeySigner(privateKey)
	}

	if kmsKeyID := c.String("tx-aws-kms-key-id"); kmsKeyID != "" {
		region := c.String("tx-aws-region")
		return txSigner.NewAWSKMSSigner(kmsKeyID, region)
	}

	if secretName := c.String("tx-aws-secret-name"); secretName != "" {
		return txSigner.NewAWSSMSigner(ctx, &txSigner.AWSSMSignerConfig{
			Region:     c.String("tx-aws-region"),
			SecretName: secretName,
		})
	}

	return nil, fmt.Errorf("no transaction signing method configured")
}

func setupGasSource(c *cli.Context, client chainManager.EthClientInterface, l *zap.Logger) (orchestrator.IGasPriceSource, error) {
	cfg := &gasOracle.Config{
		Fallback: util.GweiToWei(c.Uint64("fallback-gas-price-gwei")),
	}
	if gwei := c.Uint64("gas-price-gwei"); gwei != 0 {
		cfg.Override = util.GweiToWei(gwei)
	}
	return gasOracle.NewGasPriceSource(client, cfg, l)
}

func setupEnvironment(ctx context.Context, c *cli.Context) (*environment, error) {
	l, err := setupLogger(c)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	operationID := uuid.New().String()
	l = l.With(zap.String("operationId", operationID), zap.String("command", c.Command.Name))

	cm, chainID, err := setupChainManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to setup chain manager: %w", err)
	}
	chain, err := cm.GetChainForId(chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain %d: %w", chainID, err)
	}

	txSig, err := setupTransactionSigner(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to setup transaction signer: %w", err)
	}

	gasSource, err := setupGasSource(c, chain.RPCClient, l)
	if err != nil {
		return nil, fmt.Errorf("failed to setup gas price source: %w", err)
	}

	m, err := metrics.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to setup metrics: %w", err)
	}

	signer := ledger.NewSigner(chain.RPCClient, txSig, new(big.Int).SetUint64(chainID), l)
	provider := ledger.NewProvider(chain.RPCClient, l)

	return &environment{
		operationID:  operationID,
		logger:       l,
		chain:        chain,
		signer:       signer,
		gasSource:    gasSource,
		orchestrator: orchestrator.NewOrchestrator(gasSource, provider, l),
		metrics:      m,
		report:       m.Reporter(orchestrator.Tee(logger.EventReporter(l), printEvent)),
	}, nil
}

// wrappedNative resolves the wrapper contract from --wrapped-native or the chain config.
func (env *environment) wrappedNative(c *cli.Context) (common.Address, error) {
	if addr := c.String("wrapped-native"); addr != "" {
		return parseAddress("wrapped-native", addr)
	}
	if addr := env.chain.Config().WrappedNative; addr != (common.Address{}) {
		return addr, nil
	}
	return common.Address{}, fmt.Errorf("no wrapped native token configured for chain %d, use --wrapped-native", env.chain.Config().ChainID)
}

// pushMetrics sends the run's counters to the Pushgateway when one is configured.
func (env *environment) pushMetrics(ctx context.Context, c *cli.Context) {
	url := c.String("metrics-pushgateway")
	if url == "" {
		return
	}
	err := env.metrics.Push(ctx, url, "txflow", map[string]string{
		"command":   c.Command.Name,
		"operation": env.operationID,
	})
	if err != nil {
		env.logger.Sugar().Warnw("failed to push metrics", zap.Error(err))
	}
}

func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid --%s address %q", name, value)
	}
	return common.HexToAddress(value), nil
}
