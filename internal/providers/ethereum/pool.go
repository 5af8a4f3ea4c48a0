package ethereum

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
)

// NetworkInfoFunc returns the connection settings of a network
type NetworkInfoFunc func(network domain.Network) (domain.NetworkInfo, error)

// ClientWrapper decorates a freshly dialed client, e.g. with a rate limit
type ClientWrapper func(client ERC721Client) ERC721Client

// Wrap applies the wrappers in order
func Wrap(client ERC721Client, wrappers ...ClientWrapper) ERC721Client {
	for _, wrap := range wrappers {
		client = wrap(client)
	}
	return client
}

// Dial connects to the network RPC and verifies the node serves the expected chain
func Dial(ctx context.Context, dialer adapter.EthClientDialer, info domain.NetworkInfo, callTimeout time.Duration) (ERC721Client, error) {
	ethClient, err := dialer.Dial(ctx, info.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", info.Name, err)
	}

	client, err := NewERC721Client(ethClient, callTimeout)
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}
	if chainID != info.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: %s expects chain %d, node reports %d", domain.ErrChainMismatch, info.Name, info.ChainID, chainID)
	}

	return client, nil
}

// ClientProvider hands out ERC721 clients per network
//
//go:generate mockgen -source=pool.go -destination=../../mocks/client_provider.go -package=mocks -mock_names=ClientProvider=MockClientProvider
type ClientProvider interface {
	// Client returns a connected client for the network, dialing on first use
	Client(ctx context.Context, network domain.Network) (ERC721Client, error)

	// Close closes every cached client
	Close()
}

type clientPool struct {
	mu          sync.Mutex
	dialer      adapter.EthClientDialer
	networkInfo NetworkInfoFunc
	callTimeout time.Duration
	wrappers    []ClientWrapper
	clients     map[domain.Network]ERC721Client
}

// NewClientPool creates a ClientProvider that lazily dials one client per network
func NewClientPool(dialer adapter.EthClientDialer, networkInfo NetworkInfoFunc, callTimeout time.Duration, wrappers ...ClientWrapper) ClientProvider {
	return &clientPool{
		dialer:      dialer,
		networkInfo: networkInfo,
		callTimeout: callTimeout,
		wrappers:    wrappers,
		clients:     make(map[domain.Network]ERC721Client),
	}
}

// Client returns a connected client for the network, dialing on first use.
// Dialing happens outside the lock so a slow node does not block other networks.
func (p *clientPool) Client(ctx context.Context, network domain.Network) (ERC721Client, error) {
	p.mu.Lock()
	client, ok := p.clients[network]
	p.mu.Unlock()
	if ok {
		return client, nil
	}

	info, err := p.networkInfo(network)
	if err != nil {
		return nil, err
	}

	dialed, err := Dial(ctx, p.dialer, info, p.callTimeout)
	if err != nil {
		return nil, err
	}
	dialed = Wrap(dialed, p.wrappers...)

	p.mu.Lock()
	if client, ok := p.clients[network]; ok {
		// another request connected first
		p.mu.Unlock()
		dialed.Close()
		return client, nil
	}
	p.clients[network] = dialed
	p.mu.Unlock()

	logger.InfoCtx(ctx, "Connected to network",
		zap.String("network", string(network)),
		zap.Uint64("chainID", info.ChainID),
	)

	return dialed, nil
}

// Close closes every cached client
func (p *clientPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for network, client := range p.clients {
		client.Close()
		delete(p.clients, network)
	}
}
