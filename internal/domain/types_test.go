package domain

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNetwork(t *testing.T) {
	tests := []struct {
		name        string
		network     Network
		expectedID  uint64
		expectedErr bool
	}{
		{
			name:       "flow mainnet",
			network:    NetworkFlowMainnet,
			expectedID: 747,
		},
		{
			name:       "flow testnet",
			network:    NetworkFlowTestnet,
			expectedID: 545,
		},
		{
			name:        "unknown network",
			network:     Network("polygon"),
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := LookupNetwork(tt.network)
			if tt.expectedErr {
				assert.ErrorIs(t, err, ErrUnknownNetwork)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, info.ChainID)
			assert.Equal(t, tt.network, info.Name)
		})
	}
}

func TestNetworkByChainID(t *testing.T) {
	network, ok := NetworkByChainID(545)
	assert.True(t, ok)
	assert.Equal(t, NetworkFlowTestnet, network)

	_, ok = NetworkByChainID(1)
	assert.False(t, ok)
}

func TestDeployment_Label(t *testing.T) {
	tests := []struct {
		name       string
		deployment Deployment
		expected   string
	}{
		{
			name:       "tagged deployment",
			deployment: Deployment{Address: "0x1234567890abcdef1234567890abcdef12345678", Tag: "genesis"},
			expected:   "genesis",
		},
		{
			name:       "untagged deployment",
			deployment: Deployment{Address: "0x1234567890abcdef1234567890abcdef12345678"},
			expected:   "0x1234...5678",
		},
		{
			name:       "short address kept as is",
			deployment: Deployment{Address: "0x1234"},
			expected:   "0x1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.deployment.Label())
		})
	}
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress("0xAbCdEf0000000000000000000000000000000001", "0xabcdef0000000000000000000000000000000001"))
	assert.True(t, SameAddress(" 0xabc ", "0xABC"))
	assert.False(t, SameAddress("0xabcdef0000000000000000000000000000000001", "0xabcdef0000000000000000000000000000000002"))
	assert.True(t, SameAddress("f39fd6e51aad88f6f4ce6ab8827279cfffb92266", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.True(t, SameAddress("0XF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.False(t, SameAddress("f39fd6e51aad88f6f4ce6ab8827279cfffb92266", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x457ee5f723C7606c12a7264b52e285906F91eEA6"))
	assert.True(t, IsValidAddress("457ee5f723C7606c12a7264b52e285906F91eEA6"))
	assert.False(t, IsValidAddress("0x1234"))
	assert.False(t, IsValidAddress("not-an-address"))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x457ee5f723C7606c12a7264b52e285906F91eEA6",
		NormalizeAddress("0x457ee5f723c7606c12a7264b52e285906f91eea6"),
	)
	assert.Equal(t, "KT1abc", NormalizeAddress("KT1abc"))
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", NormalizeAddress("f39fd6e51aad88f6f4ce6ab8827279cfffb92266"))
}

func TestTokenRecord_MarshalJSON(t *testing.T) {
	tokenID, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)

	record := TokenRecord{
		Collection:      "genesis",
		ContractAddress: "0x1234567890abcdef1234567890abcdef12345678",
		TokenID:         tokenID,
		Name:            stringPtr("Token"),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tokenID.String(), decoded["token_id"])
	assert.Equal(t, "genesis", decoded["collection"])
	assert.Equal(t, "Token", decoded["name"])
	assert.NotContains(t, decoded, "description")
	assert.NotContains(t, decoded, "image")
	assert.NotContains(t, decoded, "token_uri")
}

func TestTokenRecord_ApplyMetadata(t *testing.T) {
	record := TokenRecord{TokenID: big.NewInt(1)}
	record.ApplyMetadata(nil)
	assert.Nil(t, record.Name)

	record.ApplyMetadata(&TokenMetadata{
		Name:        stringPtr("name"),
		Description: stringPtr("description"),
		Image:       stringPtr("https://example.com/1.png"),
		LastUpdated: stringPtr("2024-01-01T00:00:00Z"),
	})
	assert.Equal(t, "name", *record.Name)
	assert.Equal(t, "description", *record.Description)
	assert.Equal(t, "https://example.com/1.png", *record.Image)
	assert.Equal(t, "2024-01-01T00:00:00Z", *record.LastUpdated)
}

func stringPtr(s string) *string {
	return &s
}
