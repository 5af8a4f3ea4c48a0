package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Network represents the name of an EVM network as used by the deployment registry
type Network string

const (
	NetworkFlowMainnet Network = "evmFlowMainnet"
	NetworkFlowTestnet Network = "evmFlowTestnet"
	NetworkHardhat     Network = "hardhat"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainFlowEVMMainnet Chain = "eip155:747"
	ChainFlowEVMTestnet Chain = "eip155:545"
	ChainHardhat        Chain = "eip155:31337"
)

// NetworkInfo describes a supported network
type NetworkInfo struct {
	Name        Network `json:"name"`
	DisplayName string  `json:"display_name"`
	Chain       Chain   `json:"chain"`
	ChainID     uint64  `json:"chain_id"`
	RPCURL      string  `json:"rpc_url"`
	ExplorerURL string  `json:"explorer_url,omitempty"`
}

var knownNetworks = map[Network]NetworkInfo{
	NetworkFlowMainnet: {
		Name:        NetworkFlowMainnet,
		DisplayName: "Flow EVM Mainnet",
		Chain:       ChainFlowEVMMainnet,
		ChainID:     747,
		RPCURL:      "https://mainnet.evm.nodes.onflow.org",
		ExplorerURL: "https://evm.flowscan.io",
	},
	NetworkFlowTestnet: {
		Name:        NetworkFlowTestnet,
		DisplayName: "Flow EVM Testnet",
		Chain:       ChainFlowEVMTestnet,
		ChainID:     545,
		RPCURL:      "https://testnet.evm.nodes.onflow.org",
		ExplorerURL: "https://evm-testnet.flowscan.io",
	},
	NetworkHardhat: {
		Name:        NetworkHardhat,
		DisplayName: "Hardhat",
		Chain:       ChainHardhat,
		ChainID:     31337,
		RPCURL:      "http://127.0.0.1:8545",
	},
}

// LookupNetwork returns the static information of a known network
func LookupNetwork(network Network) (NetworkInfo, error) {
	info, ok := knownNetworks[network]
	if !ok {
		return NetworkInfo{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}
	return info, nil
}

// NetworkByChainID maps a chain ID reported by a node back to its network
func NetworkByChainID(chainID uint64) (Network, bool) {
	for name, info := range knownNetworks {
		if info.ChainID == chainID {
			return name, true
		}
	}
	return "", false
}

// Deployment is a deployed token contract together with its collection tag
type Deployment struct {
	Address    string `json:"address"`
	Tag        string `json:"tag,omitempty"`
	DeployedAt string `json:"deployed_at,omitempty"`
}

// Label returns the collection label shown to users.
// Untagged deployments are labelled with a shortened address, e.g. 0x1234...abcd
func (d Deployment) Label() string {
	if d.Tag != "" {
		return d.Tag
	}
	return ShortAddress(d.Address)
}

// TokenMetadata is the normalized subset of token metadata the service cares about.
// Every field is optional.
type TokenMetadata struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	LastUpdated *string `json:"last_updated,omitempty"`
}

// TokenRecord is one owned token row
type TokenRecord struct {
	Collection      string   `json:"collection"`
	ContractAddress string   `json:"contract_address"`
	TokenID         *big.Int `json:"-"`
	TokenURI        *string  `json:"token_uri,omitempty"`
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Image           *string  `json:"image,omitempty"`
	LastUpdated     *string  `json:"last_updated,omitempty"`
}

// MarshalJSON renders the token ID as a decimal string so uint256 values survive JSON clients
func (r TokenRecord) MarshalJSON() ([]byte, error) {
	type alias TokenRecord
	tokenID := ""
	if r.TokenID != nil {
		tokenID = r.TokenID.String()
	}
	return json.Marshal(struct {
		alias
		TokenID string `json:"token_id"`
	}{
		alias:   alias(r),
		TokenID: tokenID,
	})
}

// ApplyMetadata copies the metadata fields onto the record
func (r *TokenRecord) ApplyMetadata(m *TokenMetadata) {
	if m == nil {
		return
	}
	r.Name = m.Name
	r.Description = m.Description
	r.Image = m.Image
	r.LastUpdated = m.LastUpdated
}

// CollectionMetadata is the contract-level metadata served by contractURI()
type CollectionMetadata struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	ExternalLink *string `json:"external_link,omitempty"`
	Pending      bool    `json:"pending"`
}

// IsValidAddress checks whether the value is a 20-byte hex address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress normalizes an address to its checksummed form.
// Values that are not hex addresses are returned unchanged.
func NormalizeAddress(address string) string {
	if !common.IsHexAddress(address) {
		return address
	}
	return common.HexToAddress(address).Hex()
}

// SameAddress reports whether a and b name the same address.
// Hex addresses are compared by value, so letter case and the 0x prefix do not matter.
func SameAddress(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if common.IsHexAddress(a) && common.IsHexAddress(b) {
		return common.HexToAddress(a) == common.HexToAddress(b)
	}
	return strings.EqualFold(a, b)
}

// ShortAddress shortens an address to its first 6 and last 4 characters
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}
