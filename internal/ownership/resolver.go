package ownership

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/metadata"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/uri"
)

const (
	// DEFAULT_MAX_CONSECUTIVE_MISSES stops the ownerOf scan after this many misses in a row
	DEFAULT_MAX_CONSECUTIVE_MISSES = 25
	// DEFAULT_MAX_TOKEN_SCAN is the exclusive ceiling of token IDs probed by the ownerOf scan
	DEFAULT_MAX_TOKEN_SCAN = 2000
	// DEFAULT_CONCURRENCY is the number of contracts resolved in parallel
	DEFAULT_CONCURRENCY = 4
	// DEFAULT_METADATA_CONCURRENCY is the number of metadata lookups in flight per contract
	DEFAULT_METADATA_CONCURRENCY = 8
)

// Config holds configuration for the owned-token resolver
type Config struct {
	MaxConsecutiveMisses int
	MaxTokenScan         uint64
	Concurrency          int
	MetadataConcurrency  int
}

// DefaultConfig returns the scan limits the dApp has always used
func DefaultConfig() Config {
	return Config{
		MaxConsecutiveMisses: DEFAULT_MAX_CONSECUTIVE_MISSES,
		MaxTokenScan:         DEFAULT_MAX_TOKEN_SCAN,
		Concurrency:          DEFAULT_CONCURRENCY,
		MetadataConcurrency:  DEFAULT_METADATA_CONCURRENCY,
	}
}

// Resolver discovers the tokens a wallet owns across a set of deployed contracts
//
//go:generate mockgen -source=resolver.go -destination=../mocks/ownership_resolver.go -package=mocks -mock_names=Resolver=MockOwnershipResolver
type Resolver interface {
	// Resolve returns the owner's tokens across all deployments, sorted by token ID descending.
	// A failing contract is skipped; only an invalid owner or a cancelled context is returned as an error.
	Resolve(ctx context.Context, client ethereum.ERC721Client, owner string, deployments []domain.Deployment) ([]domain.TokenRecord, error)
}

type resolver struct {
	uriResolver uri.Resolver
	fetcher     metadata.Fetcher
	config      Config
}

// NewResolver creates an owned-token resolver. Zero config values fall back to the defaults.
func NewResolver(uriResolver uri.Resolver, fetcher metadata.Fetcher, config Config) Resolver {
	defaults := DefaultConfig()
	if config.MaxConsecutiveMisses <= 0 {
		config.MaxConsecutiveMisses = defaults.MaxConsecutiveMisses
	}
	if config.MaxTokenScan == 0 {
		config.MaxTokenScan = defaults.MaxTokenScan
	}
	if config.Concurrency <= 0 {
		config.Concurrency = defaults.Concurrency
	}
	if config.MetadataConcurrency <= 0 {
		config.MetadataConcurrency = defaults.MetadataConcurrency
	}

	return &resolver{
		uriResolver: uriResolver,
		fetcher:     fetcher,
		config:      config,
	}
}

func (r *resolver) Resolve(ctx context.Context, client ethereum.ERC721Client, owner string, deployments []domain.Deployment) ([]domain.TokenRecord, error) {
	if len(deployments) == 0 {
		return []domain.TokenRecord{}, nil
	}

	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: owner %q", domain.ErrInvalidAddress, owner)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Tasks check ctx themselves; the pool is not bound to it
	pool := pond.NewPool(r.config.Concurrency)
	defer pool.StopAndWait()

	perContract := make([][]domain.TokenRecord, len(deployments))
	tasks := make([]pond.Task, len(deployments))
	for i, deployment := range deployments {
		tasks[i] = pool.SubmitErr(func() error {
			records, err := r.resolveContract(ctx, client, owner, deployment)
			if err != nil {
				return err
			}
			perContract[i] = records
			return nil
		})
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.WarnCtx(ctx, "Unable to enumerate tokens for contract, skipping",
				zap.String("contract", deployments[i].Address),
				zap.Error(err),
			)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]domain.TokenRecord, 0)
	for _, list := range perContract {
		records = append(records, list...)
	}

	// Global order across collections, ties keep discovery order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TokenID.Cmp(records[j].TokenID) > 0
	})

	return records, nil
}

// resolveContract discovers and enriches the owner's tokens of a single deployment
func (r *resolver) resolveContract(ctx context.Context, client ethereum.ERC721Client, owner string, deployment domain.Deployment) ([]domain.TokenRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.IsValidAddress(deployment.Address) {
		return nil, fmt.Errorf("%w: contract %q", domain.ErrInvalidAddress, deployment.Address)
	}

	tokenIDs, err := r.ownedTokenIDs(ctx, client, owner, deployment.Address)
	if err != nil {
		return nil, err
	}
	if len(tokenIDs) == 0 {
		return nil, nil
	}

	return r.enrich(ctx, client, deployment, tokenIDs), nil
}

// ownedTokenIDs tries the enumerable fast path first and falls back to the ownerOf scan
func (r *resolver) ownedTokenIDs(ctx context.Context, client ethereum.ERC721Client, owner, contract string) ([]*big.Int, error) {
	tokenIDs, err := r.enumerate(ctx, client, owner, contract)
	if err == nil {
		return tokenIDs, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	logger.WarnCtx(ctx, "Enumerable lookup failed, falling back to ownerOf scan",
		zap.String("contract", contract),
		zap.Error(err),
	)

	return r.scan(ctx, client, owner, contract)
}

// enumerate reads the owner's tokens through balanceOf + tokenOfOwnerByIndex.
// Any failing index discards everything collected so far.
func (r *resolver) enumerate(ctx context.Context, client ethereum.ERC721Client, owner, contract string) ([]*big.Int, error) {
	balance, err := client.BalanceOf(ctx, contract, owner)
	if err != nil {
		return nil, fmt.Errorf("balanceOf failed: %w", err)
	}

	if balance == nil || balance.Sign() == 0 {
		logger.DebugCtx(ctx, "balanceOf indicates zero balance",
			zap.String("contract", contract),
			zap.String("owner", owner),
		)
		return nil, nil
	}

	tokenIDs := make([]*big.Int, 0)
	for index := new(big.Int); index.Cmp(balance) < 0; index.Add(index, big.NewInt(1)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tokenID, err := client.TokenOfOwnerByIndex(ctx, contract, owner, new(big.Int).Set(index))
		if err != nil {
			return nil, fmt.Errorf("tokenOfOwnerByIndex failed at index %s: %w", index, err)
		}
		if tokenID == nil {
			return nil, fmt.Errorf("tokenOfOwnerByIndex returned no token at index %s", index)
		}
		tokenIDs = append(tokenIDs, tokenID)
	}

	return dedupe(tokenIDs), nil
}

// scan probes ownerOf from token 0 upward until MaxConsecutiveMisses misses in a row
// or the MaxTokenScan ceiling. Probes stay sequential so misses are genuinely consecutive.
func (r *resolver) scan(ctx context.Context, client ethereum.ERC721Client, owner, contract string) ([]*big.Int, error) {
	logger.DebugCtx(ctx, "Entering ownerOf scan fallback",
		zap.String("contract", contract),
		zap.Uint64("maxScan", r.config.MaxTokenScan),
	)

	owned := make([]*big.Int, 0)
	misses := 0
	var tokenID uint64
	for ; misses < r.config.MaxConsecutiveMisses && tokenID < r.config.MaxTokenScan; tokenID++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := new(big.Int).SetUint64(tokenID)
		tokenOwner, err := client.OwnerOf(ctx, contract, id)
		switch {
		case err != nil:
			misses++
			logger.DebugCtx(ctx, "ownerOf scan miss",
				zap.String("contract", contract),
				zap.Uint64("tokenID", tokenID),
				zap.Int("misses", misses),
				zap.Error(err),
			)
		case domain.SameAddress(tokenOwner, owner):
			owned = append(owned, id)
			misses = 0
		default:
			misses++
		}
	}

	logger.DebugCtx(ctx, "ownerOf scan completed",
		zap.String("contract", contract),
		zap.Int("ownedCount", len(owned)),
		zap.Uint64("finalTokenID", tokenID),
		zap.Int("misses", misses),
	)

	return dedupe(owned), nil
}

// enrich builds the token records of a contract, fetching metadata on a bounded pool.
// Records keep the order of tokenIDs.
func (r *resolver) enrich(ctx context.Context, client ethereum.ERC721Client, deployment domain.Deployment, tokenIDs []*big.Int) []domain.TokenRecord {
	pool := pond.NewResultPool[domain.TokenRecord](r.config.MetadataConcurrency)
	defer pool.StopAndWait()

	tasks := make([]pond.Result[domain.TokenRecord], len(tokenIDs))
	for i, tokenID := range tokenIDs {
		tasks[i] = pool.Submit(func() domain.TokenRecord {
			return r.tokenRecord(ctx, client, deployment, tokenID)
		})
	}

	records := make([]domain.TokenRecord, 0, len(tokenIDs))
	for i, task := range tasks {
		record, err := task.Wait()
		if err != nil {
			logger.WarnCtx(ctx, "Metadata task failed", zap.String("tokenID", tokenIDs[i].String()), zap.Error(err))
			record = newRecord(deployment, tokenIDs[i])
		}
		records = append(records, record)
	}

	return records
}

// tokenRecord reads tokenURI and the metadata behind it. Every failure leaves fields nil.
func (r *resolver) tokenRecord(ctx context.Context, client ethereum.ERC721Client, deployment domain.Deployment, tokenID *big.Int) domain.TokenRecord {
	record := newRecord(deployment, tokenID)
	if ctx.Err() != nil {
		return record
	}

	fields := []zap.Field{
		zap.String("contract", deployment.Address),
		zap.String("tokenID", tokenID.String()),
	}

	rawURI, err := client.TokenURI(ctx, deployment.Address, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "Unable to read tokenURI", append(fields, zap.Error(err))...)
		return record
	}
	if strings.TrimSpace(rawURI) == "" {
		return record
	}

	resolvedURI := r.resolveURI(ctx, rawURI)
	record.TokenURI = &resolvedURI

	meta, err := r.fetcher.Fetch(ctx, resolvedURI)
	if err != nil {
		logger.WarnCtx(ctx, "Unable to fetch metadata", append(fields, zap.String("uri", resolvedURI), zap.Error(err))...)
		return record
	}

	if meta.Image != nil {
		image := r.resolveURI(ctx, *meta.Image)
		meta.Image = &image
	}
	record.ApplyMetadata(meta)

	return record
}

// resolveURI resolves through the URI resolver, falling back to the default gateway rewrite
func (r *resolver) resolveURI(ctx context.Context, raw string) string {
	resolved, err := r.uriResolver.Resolve(ctx, raw)
	if err != nil {
		logger.DebugCtx(ctx, "URI resolution failed, using default gateway", zap.String("uri", raw), zap.Error(err))
		return uri.ToGateway(raw)
	}
	return resolved
}

func newRecord(deployment domain.Deployment, tokenID *big.Int) domain.TokenRecord {
	return domain.TokenRecord{
		Collection:      deployment.Label(),
		ContractAddress: deployment.Address,
		TokenID:         tokenID,
	}
}

// dedupe removes repeated token IDs by numeric value, keeping first occurrences
func dedupe(tokenIDs []*big.Int) []*big.Int {
	seen := make(map[string]struct{}, len(tokenIDs))
	unique := make([]*big.Int, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		key := tokenID.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tokenID)
	}
	return unique
}
