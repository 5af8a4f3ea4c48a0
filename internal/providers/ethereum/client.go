package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
)

// ErrEmptyResult is returned when a call comes back with no data, which is what
// an address without code (or without the function) answers to eth_call
var ErrEmptyResult = errors.New("empty call result")

// erc721ABI covers the read-only surface of ERC721 + ERC721Enumerable + ERC7572 contractURI
const erc721ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],"name":"tokenOfOwnerByIndex","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"contractURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

// ERC721Client reads token state from an ERC721 contract
//
//go:generate mockgen -source=client.go -destination=../../mocks/erc721_client.go -package=mocks -mock_names=ERC721Client=MockERC721Client
type ERC721Client interface {
	// BalanceOf returns the number of tokens held by owner
	BalanceOf(ctx context.Context, contractAddress, owner string) (*big.Int, error)

	// TokenOfOwnerByIndex returns the token ID at index of owner's token list (ERC721Enumerable)
	TokenOfOwnerByIndex(ctx context.Context, contractAddress, owner string, index *big.Int) (*big.Int, error)

	// OwnerOf returns the hex address of the current owner of a token
	// Reverts for nonexistent or burned tokens
	OwnerOf(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error)

	// TokenURI returns the metadata pointer of a token
	TokenURI(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error)

	// ContractURI returns the collection-level metadata pointer
	ContractURI(ctx context.Context, contractAddress string) (string, error)

	// HasCode reports whether there is bytecode deployed at the address
	HasCode(ctx context.Context, contractAddress string) (bool, error)

	// ChainID returns the chain ID reported by the node
	ChainID(ctx context.Context) (uint64, error)

	// Close closes the underlying connection
	Close()
}

type erc721Client struct {
	client      adapter.EthClient
	abi         abi.ABI
	callTimeout time.Duration
}

// NewERC721Client creates an ERC721 client on top of a dialed EVM client.
// callTimeout bounds every single contract read; zero disables the bound.
func NewERC721Client(client adapter.EthClient, callTimeout time.Duration) (ERC721Client, error) {
	parsed, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &erc721Client{
		client:      client,
		abi:         parsed,
		callTimeout: callTimeout,
	}, nil
}

// call packs the method call, executes it against the latest block and unpacks the single return value into out
func (c *erc721Client) call(ctx context.Context, contractAddress string, out interface{}, method string, args ...interface{}) error {
	if !domain.IsValidAddress(contractAddress) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAddress, contractAddress)
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(result) == 0 {
		return fmt.Errorf("failed to call %s: %w", method, ErrEmptyResult)
	}

	if err := c.abi.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return nil
}

// BalanceOf returns the number of tokens held by owner
func (c *erc721Client) BalanceOf(ctx context.Context, contractAddress, owner string) (*big.Int, error) {
	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, owner)
	}

	var balance *big.Int
	if err := c.call(ctx, contractAddress, &balance, "balanceOf", common.HexToAddress(owner)); err != nil {
		return nil, err
	}
	return balance, nil
}

// TokenOfOwnerByIndex returns the token ID at index of owner's token list
func (c *erc721Client) TokenOfOwnerByIndex(ctx context.Context, contractAddress, owner string, index *big.Int) (*big.Int, error) {
	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, owner)
	}

	var tokenID *big.Int
	if err := c.call(ctx, contractAddress, &tokenID, "tokenOfOwnerByIndex", common.HexToAddress(owner), index); err != nil {
		return nil, err
	}
	return tokenID, nil
}

// OwnerOf returns the current owner of a token
func (c *erc721Client) OwnerOf(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error) {
	var owner common.Address
	if err := c.call(ctx, contractAddress, &owner, "ownerOf", tokenID); err != nil {
		return "", err
	}
	return owner.Hex(), nil
}

// TokenURI returns the metadata pointer of a token
func (c *erc721Client) TokenURI(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error) {
	var uri string
	if err := c.call(ctx, contractAddress, &uri, "tokenURI", tokenID); err != nil {
		return "", err
	}
	return uri, nil
}

// ContractURI returns the collection-level metadata pointer
func (c *erc721Client) ContractURI(ctx context.Context, contractAddress string) (string, error) {
	var uri string
	if err := c.call(ctx, contractAddress, &uri, "contractURI"); err != nil {
		return "", err
	}
	return uri, nil
}

// HasCode reports whether there is bytecode deployed at the address
func (c *erc721Client) HasCode(ctx context.Context, contractAddress string) (bool, error) {
	if !domain.IsValidAddress(contractAddress) {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, contractAddress)
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	code, err := c.client.CodeAt(ctx, common.HexToAddress(contractAddress), nil)
	if err != nil {
		return false, fmt.Errorf("failed to get code: %w", err)
	}
	return len(code) > 0, nil
}

// ChainID returns the chain ID reported by the node
func (c *erc721Client) ChainID(ctx context.Context) (uint64, error) {
	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if !chainID.IsUint64() {
		return 0, fmt.Errorf("chain ID out of range: %s", chainID)
	}
	return chainID.Uint64(), nil
}

// Close closes the underlying connection
func (c *erc721Client) Close() {
	c.client.Close()
}
