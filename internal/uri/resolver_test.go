package uri_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/mocks"
	"github.com/feral-file/ff-flow-nft/internal/uri"
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

func headResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		setupMocks  func(*mocks.MockHTTPClient)
		config      *uri.Config
		expected    string
		expectedErr string // Error message to assert, empty means no error expected
	}{
		{
			name: "regular HTTPS URL",
			uri:  "https://example.com/path/to/resource",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			expected: "https://example.com/path/to/resource",
		},
		{
			name: "data URI passes through",
			uri:  "data:application/json;base64,e30=",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			expected: "data:application/json;base64,e30=",
		},
		{
			name: "IPFS URI uses the first gateway without probing",
			uri:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.json",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud"},
			},
			expected: "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.json",
		},
		{
			name: "IPFS URI with redundant ipfs path",
			uri:  "ipfs://ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io/"},
			},
			expected: "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		},
		{
			name: "IPFS URI with probing",
			uri:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways:  []string{"https://ipfs.io", "https://gateway.pinata.cloud"},
				ProbeGateways: true,
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				// First gateway fails
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(headResponse(http.StatusNotFound), nil)

				// Second gateway succeeds
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(headResponse(http.StatusOK), nil)
			},
			expected: "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		},
		{
			name: "Arweave URI with probing",
			uri:  "ar://abc123",
			config: &uri.Config{
				ArweaveGateways: []string{"https://arweave.net", "https://ar-io.net"},
				ProbeGateways:   true,
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://arweave.net/abc123").
					Return(headResponse(http.StatusOK), nil)

				// Use AnyTimes() since the resolver may return early when first gateway succeeds
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ar-io.net/abc123").
					Return(nil, errors.New("connection refused")).
					AnyTimes()
			},
			expected: "https://arweave.net/abc123",
		},
		{
			name: "Arweave URI without probing",
			uri:  "ar://abc123",
			config: &uri.Config{
				ArweaveGateways: []string{"https://arweave.net"},
			},
			expected: "https://arweave.net/abc123",
		},
		{
			name: "IPFS URI - all gateways fail",
			uri:  "ipfs://QmHash",
			config: &uri.Config{
				IPFSGateways:  []string{"https://ipfs.io"},
				ProbeGateways: true,
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmHash").
					Return(headResponse(http.StatusGatewayTimeout), nil)
			},
			expectedErr: "failed to resolve IPFS URI: no working gateway found among 1 candidates",
		},
		{
			name: "IPFS URI - no gateways configured",
			uri:  "ipfs://QmHash",
			config: &uri.Config{
				IPFSGateways: []string{},
			},
			expectedErr: "no IPFS gateways configured",
		},
		{
			name:        "empty URI",
			uri:         "  ",
			config:      &uri.Config{},
			expectedErr: uri.ErrEmptyURI.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			resolver := uri.NewResolver(mockHTTP, tt.config)
			result, err := resolver.Resolve(context.Background(), tt.uri)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Empty(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToGateway(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ipfs://QmHash/1.png", "https://ipfs.io/ipfs/QmHash/1.png"},
		{"ipfs://ipfs/QmHash", "https://ipfs.io/ipfs/QmHash"},
		{"ar://tx", "https://arweave.net/tx"},
		{"https://example.com/a.png", "https://example.com/a.png"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, uri.ToGateway(tt.input))
		})
	}
}
