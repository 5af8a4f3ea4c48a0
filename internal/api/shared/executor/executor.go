package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/collection"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/ownership"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/registry"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ListNetworks returns the networks that have deployments
	ListNetworks(ctx context.Context) []domain.NetworkInfo

	// ListDeployments returns the deployments of a network
	ListDeployments(ctx context.Context, network domain.Network) ([]domain.Deployment, error)

	// GetOwnedTokens returns the tokens the owner holds on the network, optionally limited to the given collection tags
	GetOwnedTokens(ctx context.Context, network domain.Network, owner string, tags []string) ([]domain.TokenRecord, error)

	// GetCollection returns the contract-level metadata of a deployment
	GetCollection(ctx context.Context, network domain.Network, tag string) (*domain.CollectionMetadata, error)
}

type executor struct {
	networkInfo ethereum.NetworkInfoFunc
	registry    registry.DeploymentRegistry
	clients     ethereum.ClientProvider
	resolver    ownership.Resolver
	collections collection.Service
}

func NewExecutor(
	networkInfo ethereum.NetworkInfoFunc,
	registry registry.DeploymentRegistry,
	clients ethereum.ClientProvider,
	resolver ownership.Resolver,
	collections collection.Service,
) Executor {
	return &executor{
		networkInfo: networkInfo,
		registry:    registry,
		clients:     clients,
		resolver:    resolver,
		collections: collections,
	}
}

func (e *executor) ListNetworks(ctx context.Context) []domain.NetworkInfo {
	networks := make([]domain.NetworkInfo, 0)
	for _, network := range e.registry.Networks() {
		info, err := e.networkInfo(network)
		if err != nil {
			logger.WarnCtx(ctx, "Registry lists an unsupported network", zap.String("network", string(network)))
			continue
		}
		networks = append(networks, info)
	}
	return networks
}

func (e *executor) ListDeployments(ctx context.Context, network domain.Network) ([]domain.Deployment, error) {
	if _, err := e.networkInfo(network); err != nil {
		return nil, err
	}

	deployments := e.registry.Deployments(network)
	if deployments == nil {
		deployments = []domain.Deployment{}
	}
	return deployments, nil
}

func (e *executor) GetOwnedTokens(ctx context.Context, network domain.Network, owner string, tags []string) ([]domain.TokenRecord, error) {
	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: owner %q", domain.ErrInvalidAddress, owner)
	}
	if _, err := e.networkInfo(network); err != nil {
		return nil, err
	}

	deployments, err := registry.Select(e.registry, network, tags)
	if err != nil {
		return nil, err
	}
	if len(deployments) == 0 {
		return []domain.TokenRecord{}, nil
	}

	client, err := e.clients.Client(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network, err)
	}

	return e.resolver.Resolve(ctx, client, owner, deployments)
}

func (e *executor) GetCollection(ctx context.Context, network domain.Network, tag string) (*domain.CollectionMetadata, error) {
	if _, err := e.networkInfo(network); err != nil {
		return nil, err
	}

	deployment, err := e.registry.Lookup(network, tag)
	if err != nil {
		return nil, err
	}

	client, err := e.clients.Client(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network, err)
	}

	return e.collections.Get(ctx, client, deployment.Address)
}
