package session_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/mocks"
	"github.com/feral-file/ff-flow-nft/internal/session"
)

const account = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testManagerMocks contains all the mocks needed for testing the manager
type testManagerMocks struct {
	ctrl    *gomock.Controller
	dialer  *mocks.MockEthClientDialer
	clock   *mocks.MockClock
	manager session.Manager
}

func setupTestManager(t *testing.T) *testManagerMocks {
	ctrl := gomock.NewController(t)
	tm := &testManagerMocks{
		ctrl:   ctrl,
		dialer: mocks.NewMockEthClientDialer(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Minute).AnyTimes()

	tm.manager = session.NewManager(tm.dialer, domain.LookupNetwork, tm.clock, time.Second)
	return tm
}

// expectDial makes the next dial of the network succeed and returns the underlying client
func (tm *testManagerMocks) expectDial(network domain.Network) *mocks.MockEthClient {
	info, _ := domain.LookupNetwork(network)
	eth := mocks.NewMockEthClient(tm.ctrl)
	tm.dialer.EXPECT().Dial(gomock.Any(), info.RPCURL).Return(eth, nil)
	eth.EXPECT().ChainID(gomock.Any()).Return(new(big.Int).SetUint64(info.ChainID), nil)
	return eth
}

func TestManager_Lifecycle(t *testing.T) {
	tm := setupTestManager(t)
	defer tm.ctrl.Finish()

	_, err := tm.manager.Current()
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	testnet := tm.expectDial(domain.NetworkFlowTestnet)
	s, err := tm.manager.Connect(context.Background(), domain.NetworkFlowTestnet, account)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkFlowTestnet, s.Network)
	assert.Equal(t, account, s.Account)
	assert.NotNil(t, s.Client)

	current, err := tm.manager.Current()
	require.NoError(t, err)
	assert.Same(t, s, current)

	var changes [][2]domain.Network
	tm.manager.OnNetworkChanged(func(previous, current domain.Network) {
		changes = append(changes, [2]domain.Network{previous, current})
	})

	mainnet := tm.expectDial(domain.NetworkFlowMainnet)
	testnet.EXPECT().Close()
	switched, err := tm.manager.SwitchNetwork(context.Background(), domain.NetworkFlowMainnet)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkFlowMainnet, switched.Network)
	assert.Equal(t, account, switched.Account)
	assert.Equal(t, [][2]domain.Network{{domain.NetworkFlowTestnet, domain.NetworkFlowMainnet}}, changes)

	// switching to the active network is a no-op
	same, err := tm.manager.SwitchNetwork(context.Background(), domain.NetworkFlowMainnet)
	require.NoError(t, err)
	assert.Same(t, switched, same)
	assert.Len(t, changes, 1)

	mainnet.EXPECT().Close()
	tm.manager.Disconnect()

	_, err = tm.manager.Current()
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	// disconnecting twice is harmless
	tm.manager.Disconnect()
}

func TestManager_ConnectReplacesSession(t *testing.T) {
	tm := setupTestManager(t)
	defer tm.ctrl.Finish()

	first := tm.expectDial(domain.NetworkHardhat)
	_, err := tm.manager.Connect(context.Background(), domain.NetworkHardhat, account)
	require.NoError(t, err)

	tm.expectDial(domain.NetworkFlowTestnet)
	first.EXPECT().Close()
	s, err := tm.manager.Connect(context.Background(), domain.NetworkFlowTestnet, account)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkFlowTestnet, s.Network)
}

func TestManager_Errors(t *testing.T) {
	t.Run("invalid account", func(t *testing.T) {
		tm := setupTestManager(t)
		defer tm.ctrl.Finish()

		_, err := tm.manager.Connect(context.Background(), domain.NetworkFlowTestnet, "alice")
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("unknown network", func(t *testing.T) {
		tm := setupTestManager(t)
		defer tm.ctrl.Finish()

		_, err := tm.manager.Connect(context.Background(), domain.Network("polygon"), account)
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})

	t.Run("switch without session", func(t *testing.T) {
		tm := setupTestManager(t)
		defer tm.ctrl.Finish()

		_, err := tm.manager.SwitchNetwork(context.Background(), domain.NetworkFlowMainnet)
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})

	t.Run("node on the wrong chain", func(t *testing.T) {
		tm := setupTestManager(t)
		defer tm.ctrl.Finish()

		info, _ := domain.LookupNetwork(domain.NetworkFlowMainnet)
		eth := mocks.NewMockEthClient(tm.ctrl)
		tm.dialer.EXPECT().Dial(gomock.Any(), info.RPCURL).Return(eth, nil)
		eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(545), nil)
		eth.EXPECT().Close()

		_, err := tm.manager.Connect(context.Background(), domain.NetworkFlowMainnet, account)
		assert.ErrorIs(t, err, domain.ErrChainMismatch)

		_, err = tm.manager.Current()
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})

	t.Run("failed switch keeps the session", func(t *testing.T) {
		tm := setupTestManager(t)
		defer tm.ctrl.Finish()

		tm.expectDial(domain.NetworkFlowTestnet)
		s, err := tm.manager.Connect(context.Background(), domain.NetworkFlowTestnet, account)
		require.NoError(t, err)

		info, _ := domain.LookupNetwork(domain.NetworkFlowMainnet)
		tm.dialer.EXPECT().Dial(gomock.Any(), info.RPCURL).Return(nil, errors.New("connection refused"))

		_, err = tm.manager.SwitchNetwork(context.Background(), domain.NetworkFlowMainnet)
		assert.Error(t, err)

		current, err := tm.manager.Current()
		require.NoError(t, err)
		assert.Same(t, s, current)
	})
}
