package ratelimit

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
)

// Config holds the request budget of a single RPC endpoint
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether a limit is configured
func (c Config) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// limitedClient throttles every contract read of the wrapped client through a token bucket
type limitedClient struct {
	ethereum.ERC721Client
	limiter *rate.Limiter
}

// Wrapper returns an ethereum.ClientWrapper that rate limits each dialed client.
// A disabled config returns clients untouched.
func Wrapper(cfg Config) ethereum.ClientWrapper {
	return func(client ethereum.ERC721Client) ethereum.ERC721Client {
		if !cfg.Enabled() {
			return client
		}
		return NewClient(client, cfg)
	}
}

// NewClient wraps client with a limiter of cfg.RequestsPerSecond and cfg.Burst (minimum 1)
func NewClient(client ethereum.ERC721Client, cfg Config) ethereum.ERC721Client {
	burst := max(cfg.Burst, 1)

	logger.Debug("RPC rate limit enabled",
		zap.Float64("requestsPerSecond", cfg.RequestsPerSecond),
		zap.Int("burst", burst),
	)

	return &limitedClient{
		ERC721Client: client,
		limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
	}
}

// acquire blocks until a token is available or ctx is done
func (c *limitedClient) acquire(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

func (c *limitedClient) BalanceOf(ctx context.Context, contractAddress, owner string) (*big.Int, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	return c.ERC721Client.BalanceOf(ctx, contractAddress, owner)
}

func (c *limitedClient) TokenOfOwnerByIndex(ctx context.Context, contractAddress, owner string, index *big.Int) (*big.Int, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	return c.ERC721Client.TokenOfOwnerByIndex(ctx, contractAddress, owner, index)
}

func (c *limitedClient) OwnerOf(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error) {
	if err := c.acquire(ctx); err != nil {
		return "", err
	}
	return c.ERC721Client.OwnerOf(ctx, contractAddress, tokenID)
}

func (c *limitedClient) TokenURI(ctx context.Context, contractAddress string, tokenID *big.Int) (string, error) {
	if err := c.acquire(ctx); err != nil {
		return "", err
	}
	return c.ERC721Client.TokenURI(ctx, contractAddress, tokenID)
}

func (c *limitedClient) ContractURI(ctx context.Context, contractAddress string) (string, error) {
	if err := c.acquire(ctx); err != nil {
		return "", err
	}
	return c.ERC721Client.ContractURI(ctx, contractAddress)
}

func (c *limitedClient) HasCode(ctx context.Context, contractAddress string) (bool, error) {
	if err := c.acquire(ctx); err != nil {
		return false, err
	}
	return c.ERC721Client.HasCode(ctx, contractAddress)
}
