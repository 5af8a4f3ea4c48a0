package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
)

// Session is an active connection of an account to a network
type Session struct {
	Network     domain.Network
	Account     string
	Client      ethereum.ERC721Client
	ConnectedAt time.Time
}

// NetworkChangedFunc is called after the session moved from one network to another
type NetworkChangedFunc func(previous, current domain.Network)

// Manager owns the connection lifecycle of a single account
type Manager interface {
	// Connect dials the network and starts a session for the account, replacing any previous one
	Connect(ctx context.Context, network domain.Network, account string) (*Session, error)

	// SwitchNetwork moves the active session to another network
	SwitchNetwork(ctx context.Context, network domain.Network) (*Session, error)

	// Disconnect ends the active session, if any
	Disconnect()

	// Current returns the active session or ErrNotConnected
	Current() (*Session, error)

	// OnNetworkChanged registers a callback fired after a successful network switch
	OnNetworkChanged(fn NetworkChangedFunc)
}

type manager struct {
	mu          sync.RWMutex
	dialer      adapter.EthClientDialer
	networkInfo ethereum.NetworkInfoFunc
	clock       adapter.Clock
	callTimeout time.Duration
	wrappers    []ethereum.ClientWrapper
	current     *Session
	listeners   []NetworkChangedFunc
}

// NewManager creates a session manager
func NewManager(dialer adapter.EthClientDialer, networkInfo ethereum.NetworkInfoFunc, clock adapter.Clock, callTimeout time.Duration, wrappers ...ethereum.ClientWrapper) Manager {
	return &manager{
		dialer:      dialer,
		networkInfo: networkInfo,
		clock:       clock,
		callTimeout: callTimeout,
		wrappers:    wrappers,
	}
}

func (m *manager) Connect(ctx context.Context, network domain.Network, account string) (*Session, error) {
	if !domain.IsValidAddress(account) {
		return nil, fmt.Errorf("%w: account %q", domain.ErrInvalidAddress, account)
	}

	client, err := m.dial(ctx, network)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Network:     network,
		Account:     account,
		Client:      client,
		ConnectedAt: m.clock.Now(),
	}

	m.mu.Lock()
	previous := m.current
	m.current = session
	m.mu.Unlock()

	if previous != nil {
		previous.Client.Close()
	}

	logger.InfoCtx(ctx, "Session connected",
		zap.String("network", string(network)),
		zap.String("account", account),
	)

	return session, nil
}

func (m *manager) SwitchNetwork(ctx context.Context, network domain.Network) (*Session, error) {
	m.mu.RLock()
	previous := m.current
	m.mu.RUnlock()

	if previous == nil {
		return nil, domain.ErrNotConnected
	}
	if previous.Network == network {
		return previous, nil
	}

	client, err := m.dial(ctx, network)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Network:     network,
		Account:     previous.Account,
		Client:      client,
		ConnectedAt: m.clock.Now(),
	}

	m.mu.Lock()
	if m.current != previous {
		// Connect or Disconnect ran while dialing
		m.mu.Unlock()
		client.Close()
		return nil, fmt.Errorf("session changed while switching to %s", network)
	}
	m.current = session
	listeners := append([]NetworkChangedFunc(nil), m.listeners...)
	m.mu.Unlock()

	previous.Client.Close()

	logger.InfoCtx(ctx, "Session switched network",
		zap.String("from", string(previous.Network)),
		zap.String("to", string(network)),
		zap.Duration("previousSessionAge", m.clock.Since(previous.ConnectedAt)),
	)

	for _, fn := range listeners {
		fn(previous.Network, network)
	}

	return session, nil
}

func (m *manager) Disconnect() {
	m.mu.Lock()
	previous := m.current
	m.current = nil
	m.mu.Unlock()

	if previous == nil {
		return
	}

	previous.Client.Close()
	logger.Info("Session disconnected",
		zap.String("network", string(previous.Network)),
		zap.Duration("duration", m.clock.Since(previous.ConnectedAt)),
	)
}

func (m *manager) Current() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, domain.ErrNotConnected
	}
	return m.current, nil
}

func (m *manager) OnNetworkChanged(fn NetworkChangedFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *manager) dial(ctx context.Context, network domain.Network) (ethereum.ERC721Client, error) {
	info, err := m.networkInfo(network)
	if err != nil {
		return nil, err
	}
	client, err := ethereum.Dial(ctx, m.dialer, info, m.callTimeout)
	if err != nil {
		return nil, err
	}
	return ethereum.Wrap(client, m.wrappers...), nil
}
