package registry_test

import (
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/mocks"
	"github.com/feral-file/ff-flow-nft/internal/registry"
)

const (
	addrA = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	addrB = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	addrC = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
)

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

func TestDeploymentRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem)
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, reg registry.DeploymentRegistry)
	}{
		{
			name: "history shape",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.
					EXPECT().
					ReadFile("deployed-addresses.json").
					Return([]byte(`{
					"evmFlowTestnet": {
						"MyNFT": {
							"address": "`+addrB+`",
							"history": [
								{"address": "`+addrB+`", "tag": "v2", "deployedAt": "2024-06-01T00:00:00Z"},
								{"address": "`+addrA+`", "tag": "v1"},
								{"address": "`+addrC+`"}
							]
						}
					}
				}`), nil)
			},
			validateFunc: func(t *testing.T, reg registry.DeploymentRegistry) {
				assert.Equal(t, []domain.Network{domain.NetworkFlowTestnet}, reg.Networks())

				deployments := reg.Deployments(domain.NetworkFlowTestnet)
				require.Len(t, deployments, 3)
				assert.Equal(t, domain.Deployment{Address: addrB, Tag: "v2", DeployedAt: "2024-06-01T00:00:00Z"}, deployments[0])
				assert.Equal(t, "v1", deployments[1].Label())
				assert.Equal(t, "0x9fE4...a6e0", deployments[2].Label())

				d, err := reg.Lookup(domain.NetworkFlowTestnet, "v1")
				require.NoError(t, err)
				assert.Equal(t, addrA, d.Address)
			},
		},
		{
			name: "flat address shape as written by the deploy script",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.
					EXPECT().
					ReadFile("deployed-addresses.json").
					Return([]byte(`{"hardhat": {"MyNFT": "`+addrA+`"}, "evmFlowMainnet": {"MyNFT": "`+addrC+`"}}`), nil)
			},
			validateFunc: func(t *testing.T, reg registry.DeploymentRegistry) {
				assert.Equal(t, []domain.Network{domain.NetworkFlowMainnet, domain.NetworkHardhat}, reg.Networks())
				assert.Equal(t, []domain.Deployment{{Address: addrA}}, reg.Deployments(domain.NetworkHardhat))
				assert.Empty(t, reg.Deployments(domain.NetworkFlowTestnet))
			},
		},
		{
			name: "duplicate and invalid addresses are dropped",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.
					EXPECT().
					ReadFile("deployed-addresses.json").
					Return([]byte(`{"evmFlowTestnet": {"MyNFT": {"history": [
						{"address": "`+addrA+`", "tag": "first"},
						{"address": "0x5fbdb2315678afecb367f032d93f642f64180aa3", "tag": "again"},
						{"address": "0xnope", "tag": "broken"}
					]}}}`), nil)
			},
			validateFunc: func(t *testing.T, reg registry.DeploymentRegistry) {
				deployments := reg.Deployments(domain.NetworkFlowTestnet)
				require.Len(t, deployments, 1)
				assert.Equal(t, "first", deployments[0].Tag)
			},
		},
		{
			name: "missing file yields an empty registry",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(false)
			},
			validateFunc: func(t *testing.T, reg registry.DeploymentRegistry) {
				assert.Empty(t, reg.Networks())
				assert.Empty(t, reg.Deployments(domain.NetworkFlowTestnet))
			},
		},
		{
			name: "read error",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.EXPECT().ReadFile("deployed-addresses.json").Return(nil, errors.New("permission denied"))
			},
			expectedErr: "failed to read registry file: permission denied",
		},
		{
			name: "invalid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.EXPECT().ReadFile("deployed-addresses.json").Return([]byte(`{"evmFlowTestnet": [`), nil)
			},
			expectedErr: "failed to parse registry JSON",
		},
		{
			name: "unexpected contract entry",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
				mockFS.EXPECT().ReadFile("deployed-addresses.json").Return([]byte(`{"evmFlowTestnet": {"MyNFT": 42}}`), nil)
			},
			expectedErr: "failed to parse evmFlowTestnet.MyNFT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			tt.setupMocks(mockFS)

			loader := registry.NewDeploymentRegistryLoader(mockFS, adapter.NewJSON())
			reg, err := loader.Load("deployed-addresses.json")

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}

			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestDeploymentRegistry_Lookup(t *testing.T) {
	reg := registry.NewDeploymentRegistry(map[domain.Network][]domain.Deployment{
		domain.NetworkFlowTestnet: {
			{Address: addrA, Tag: "genesis"},
			{Address: addrB},
		},
	})

	d, err := reg.Lookup(domain.NetworkFlowTestnet, "genesis")
	require.NoError(t, err)
	assert.Equal(t, addrA, d.Address)

	// untagged deployments are reachable by address, in any case
	d, err = reg.Lookup(domain.NetworkFlowTestnet, "0xE7F1725E7734CE288F8367E1BB143E90BB3F0512")
	require.NoError(t, err)
	assert.Equal(t, addrB, d.Address)

	_, err = reg.Lookup(domain.NetworkFlowTestnet, "missing")
	assert.ErrorIs(t, err, domain.ErrDeploymentNotFound)

	_, err = reg.Lookup(domain.NetworkFlowMainnet, "genesis")
	assert.ErrorIs(t, err, domain.ErrDeploymentNotFound)
}

func TestDeploymentRegistry_DeploymentsReturnsCopy(t *testing.T) {
	reg := registry.NewDeploymentRegistry(map[domain.Network][]domain.Deployment{
		domain.NetworkHardhat: {{Address: addrA, Tag: "local"}},
	})

	list := reg.Deployments(domain.NetworkHardhat)
	list[0].Tag = "mutated"

	assert.Equal(t, "local", reg.Deployments(domain.NetworkHardhat)[0].Tag)
}

func TestSelect(t *testing.T) {
	reg := registry.NewDeploymentRegistry(map[domain.Network][]domain.Deployment{
		domain.NetworkFlowTestnet: {
			{Address: addrA, Tag: "genesis"},
			{Address: addrB, Tag: "second"},
			{Address: addrC},
		},
	})

	all, err := registry.Select(reg, domain.NetworkFlowTestnet, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	selected, err := registry.Select(reg, domain.NetworkFlowTestnet, []string{"second", addrC, "SECOND", "second"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeploymentNotFound)
	assert.Nil(t, selected)

	selected, err = registry.Select(reg, domain.NetworkFlowTestnet, []string{"second", addrC, "second"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Deployment{{Address: addrB, Tag: "second"}, {Address: addrC}}, selected)
}

func TestDeploymentRegistryLoader_LoadParseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockFS.EXPECT().Exists("deployed-addresses.json").Return(true)
	mockFS.EXPECT().ReadFile("deployed-addresses.json").Return([]byte(`{}`), nil)
	mockJSON.EXPECT().Unmarshal([]byte(`{}`), gomock.Any()).Return(errors.New("unexpected end of input"))

	reg, err := registry.NewDeploymentRegistryLoader(mockFS, mockJSON).Load("deployed-addresses.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse registry JSON")
	assert.Nil(t, reg)
}
