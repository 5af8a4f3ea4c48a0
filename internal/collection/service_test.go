package collection_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-flow-nft/internal/collection"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/mocks"
)

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

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

type testServiceMocks struct {
	client      *mocks.MockERC721Client
	uriResolver *mocks.MockURIResolver
	fetcher     *mocks.MockMetadataFetcher
}

func TestService_Get(t *testing.T) {
	link := "https://example.com"

	tests := []struct {
		name        string
		address     string
		setupMocks  func(*testServiceMocks)
		expected    *domain.CollectionMetadata
		expectedErr error
	}{
		{
			name:    "contract metadata",
			address: contract,
			setupMocks: func(m *testServiceMocks) {
				m.client.EXPECT().HasCode(gomock.Any(), contract).Return(true, nil)
				m.client.EXPECT().ContractURI(gomock.Any(), contract).Return("ipfs://QmCollection", nil)
				m.uriResolver.EXPECT().Resolve(gomock.Any(), "ipfs://QmCollection").Return("https://ipfs.io/ipfs/QmCollection", nil)
				m.fetcher.EXPECT().FetchJSON(gomock.Any(), "https://ipfs.io/ipfs/QmCollection").Return(map[string]interface{}{
					"name":          "Dawn",
					"description":   "Morning series",
					"image":         "ar://cover",
					"external_link": link,
				}, nil)
				m.uriResolver.EXPECT().Resolve(gomock.Any(), "ar://cover").Return("", errors.New("no Arweave gateways configured"))
			},
			expected: &domain.CollectionMetadata{
				Name:         "Dawn",
				Description:  "Morning series",
				Image:        "https://arweave.net/cover",
				ExternalLink: &link,
			},
		},
		{
			name:    "empty contractURI yields the placeholder",
			address: contract,
			setupMocks: func(m *testServiceMocks) {
				m.client.EXPECT().HasCode(gomock.Any(), contract).Return(true, nil)
				m.client.EXPECT().ContractURI(gomock.Any(), contract).Return("", nil)
			},
			expected: collection.Pending(),
		},
		{
			name:    "reverting contractURI yields the placeholder",
			address: contract,
			setupMocks: func(m *testServiceMocks) {
				m.client.EXPECT().HasCode(gomock.Any(), contract).Return(true, nil)
				m.client.EXPECT().ContractURI(gomock.Any(), contract).Return("", errors.New("execution reverted"))
			},
			expected: collection.Pending(),
		},
		{
			name:    "no code at address",
			address: contract,
			setupMocks: func(m *testServiceMocks) {
				m.client.EXPECT().HasCode(gomock.Any(), contract).Return(false, nil)
			},
			expectedErr: domain.ErrContractNotFound,
		},
		{
			name:        "invalid address",
			address:     "0x123",
			setupMocks:  func(m *testServiceMocks) {},
			expectedErr: domain.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &testServiceMocks{
				client:      mocks.NewMockERC721Client(ctrl),
				uriResolver: mocks.NewMockURIResolver(ctrl),
				fetcher:     mocks.NewMockMetadataFetcher(ctrl),
			}
			tt.setupMocks(m)

			service := collection.NewService(m.uriResolver, m.fetcher)
			result, err := service.Get(context.Background(), m.client, tt.address)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestService_GetFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockERC721Client(ctrl)
	uriResolver := mocks.NewMockURIResolver(ctrl)
	fetcher := mocks.NewMockMetadataFetcher(ctrl)

	client.EXPECT().HasCode(gomock.Any(), contract).Return(true, nil)
	client.EXPECT().ContractURI(gomock.Any(), contract).Return("https://example.com/contract.json", nil)
	uriResolver.EXPECT().Resolve(gomock.Any(), "https://example.com/contract.json").Return("https://example.com/contract.json", nil)
	fetcher.EXPECT().FetchJSON(gomock.Any(), "https://example.com/contract.json").Return(nil, errors.New("unexpected status code 404"))

	result, err := collection.NewService(uriResolver, fetcher).Get(context.Background(), client, contract)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch collection metadata")
	assert.Nil(t, result)
}
