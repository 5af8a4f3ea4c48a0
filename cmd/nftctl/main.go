package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/collection"
	"github.com/feral-file/ff-flow-nft/internal/config"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/metadata"
	"github.com/feral-file/ff-flow-nft/internal/ownership"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/ratelimit"
	"github.com/feral-file/ff-flow-nft/internal/registry"
	"github.com/feral-file/ff-flow-nft/internal/session"
	"github.com/feral-file/ff-flow-nft/internal/uri"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds the dependencies shared by every subcommand
type app struct {
	cfg         *config.CLIConfig
	network     domain.Network
	deployments registry.DeploymentRegistry
	sessions    session.Manager
	resolver    ownership.Resolver
	collections collection.Service
	limit       ethereum.ClientWrapper
}

func newRootCommand() *cobra.Command {
	var configFile string
	var envPath string
	var network string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "nftctl",
		Short:        "Inspect NFT deployments and ownership on Flow EVM",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configFile, envPath, network)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.sessions != nil {
				a.sessions.Disconnect()
			}
			logger.Flush(2 * time.Second)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "", "Network name, overrides the configured one (evmFlowMainnet, evmFlowTestnet, hardhat)")

	rootCmd.AddCommand(
		newOwnedCommand(a),
		newDeploymentsCommand(a),
		newCollectionCommand(a),
	)

	return rootCmd
}

// setup loads configuration and builds the resolution pipeline
func (a *app) setup(configFile, envPath, network string) error {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "nftctl",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.network = cfg.Network
	if network != "" {
		a.network = domain.Network(network)
	}
	if _, err := cfg.NetworkInfo(a.network); err != nil {
		return err
	}

	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout, adapter.RetryConfig{
		InitialInterval: cfg.HTTP.RetryInitial,
		MaxInterval:     cfg.HTTP.RetryMaxInterval,
		MaxElapsedTime:  cfg.HTTP.RetryMaxElapsedTime,
	})

	a.deployments, err = registry.NewDeploymentRegistryLoader(fs, jsonAdapter).Load(cfg.DeploymentsPath)
	if err != nil {
		return fmt.Errorf("failed to load deployment registry: %w", err)
	}

	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
		ProbeGateways:   cfg.URI.ProbeGateways,
	})
	fetcher := metadata.NewFetcher(httpClient, jsonAdapter, adapter.NewBase64())

	a.resolver = ownership.NewResolver(uriResolver, fetcher, ownership.Config{
		MaxConsecutiveMisses: cfg.Scan.MaxConsecutiveMisses,
		MaxTokenScan:         cfg.Scan.MaxTokenScan,
		Concurrency:          cfg.Scan.Concurrency,
		MetadataConcurrency:  cfg.Scan.MetadataConcurrency,
	})
	a.collections = collection.NewService(uriResolver, fetcher)
	a.limit = ratelimit.Wrapper(ratelimit.Config{
		RequestsPerSecond: cfg.Scan.RequestsPerSecond,
		Burst:             cfg.Scan.Burst,
	})
	a.sessions = session.NewManager(adapter.NewEthClientDialer(), cfg.NetworkInfo, adapter.NewClock(), cfg.Scan.CallTimeout, a.limit)

	return nil
}
