package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/api/server"
	"github.com/feral-file/ff-flow-nft/internal/api/shared/executor"
	"github.com/feral-file/ff-flow-nft/internal/collection"
	"github.com/feral-file/ff-flow-nft/internal/config"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/metadata"
	"github.com/feral-file/ff-flow-nft/internal/ownership"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/ratelimit"
	"github.com/feral-file/ff-flow-nft/internal/registry"
	"github.com/feral-file/ff-flow-nft/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Flow NFT API")

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	base64Adapter := adapter.NewBase64()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout, adapter.RetryConfig{
		InitialInterval: cfg.HTTP.RetryInitial,
		MaxInterval:     cfg.HTTP.RetryMaxInterval,
		MaxElapsedTime:  cfg.HTTP.RetryMaxElapsedTime,
	})

	// Load deployment registry
	deploymentLoader := registry.NewDeploymentRegistryLoader(fs, jsonAdapter)
	deployments, err := deploymentLoader.Load(cfg.DeploymentsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load deployment registry",
			zap.Error(err),
			zap.String("path", cfg.DeploymentsPath))
	}
	logger.InfoCtx(ctx, "Loaded deployment registry",
		zap.String("path", cfg.DeploymentsPath),
		zap.Int("networks", len(deployments.Networks())),
	)

	// Build the resolution pipeline
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
		ProbeGateways:   cfg.URI.ProbeGateways,
	})
	fetcher := metadata.NewFetcher(httpClient, jsonAdapter, base64Adapter)
	ownershipResolver := ownership.NewResolver(uriResolver, fetcher, ownership.Config{
		MaxConsecutiveMisses: cfg.Scan.MaxConsecutiveMisses,
		MaxTokenScan:         cfg.Scan.MaxTokenScan,
		Concurrency:          cfg.Scan.Concurrency,
		MetadataConcurrency:  cfg.Scan.MetadataConcurrency,
	})
	collectionService := collection.NewService(uriResolver, fetcher)

	// RPC clients are dialed lazily, one per network
	clients := ethereum.NewClientPool(adapter.NewEthClientDialer(), cfg.NetworkInfo, cfg.Scan.CallTimeout,
		ratelimit.Wrapper(ratelimit.Config{
			RequestsPerSecond: cfg.Scan.RequestsPerSecond,
			Burst:             cfg.Scan.Burst,
		}),
	)
	defer clients.Close()

	exec := executor.NewExecutor(cfg.NetworkInfo, deployments, clients, ownershipResolver, collectionService)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
