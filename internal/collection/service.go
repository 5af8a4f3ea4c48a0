package collection

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/metadata"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/uri"
)

// Service reads contract-level metadata of a deployed collection
//
//go:generate mockgen -source=service.go -destination=../mocks/collection_service.go -package=mocks -mock_names=Service=MockCollectionService
type Service interface {
	// Get returns the collection metadata behind contractURI().
	// Contracts without a contractURI yield the pending placeholder.
	Get(ctx context.Context, client ethereum.ERC721Client, contractAddress string) (*domain.CollectionMetadata, error)
}

type service struct {
	uriResolver uri.Resolver
	fetcher     metadata.Fetcher
}

// NewService creates a new collection metadata service
func NewService(uriResolver uri.Resolver, fetcher metadata.Fetcher) Service {
	return &service{
		uriResolver: uriResolver,
		fetcher:     fetcher,
	}
}

func (s *service) Get(ctx context.Context, client ethereum.ERC721Client, contractAddress string) (*domain.CollectionMetadata, error) {
	if !domain.IsValidAddress(contractAddress) {
		return nil, fmt.Errorf("%w: contract %q", domain.ErrInvalidAddress, contractAddress)
	}

	hasCode, err := client.HasCode(ctx, contractAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check contract code: %w", err)
	}
	if !hasCode {
		return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, contractAddress)
	}

	contractURI, err := client.ContractURI(ctx, contractAddress)
	if err != nil {
		logger.WarnCtx(ctx, "Unable to read contractURI, using placeholder",
			zap.String("contract", contractAddress),
			zap.Error(err),
		)
		return Pending(), nil
	}
	if strings.TrimSpace(contractURI) == "" {
		return Pending(), nil
	}

	resolvedURI, err := s.uriResolver.Resolve(ctx, contractURI)
	if err != nil {
		resolvedURI = uri.ToGateway(contractURI)
	}

	raw, err := s.fetcher.FetchJSON(ctx, resolvedURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection metadata: %w", err)
	}

	result := &domain.CollectionMetadata{
		Name:        stringField(raw, "name"),
		Description: stringField(raw, "description"),
	}

	if image := stringField(raw, "image"); image != "" {
		resolvedImage, err := s.uriResolver.Resolve(ctx, image)
		if err != nil {
			resolvedImage = uri.ToGateway(image)
		}
		result.Image = resolvedImage
	}

	if link := stringField(raw, "external_link"); link != "" {
		result.ExternalLink = &link
	}

	return result, nil
}

// Pending returns the placeholder shown while a collection has no contractURI
func Pending() *domain.CollectionMetadata {
	return &domain.CollectionMetadata{
		Name:        domain.PENDING_COLLECTION_NAME,
		Description: domain.PENDING_COLLECTION_DESCRIPTION,
		Image:       domain.PENDING_COLLECTION_IMAGE,
		Pending:     true,
	}
}

func stringField(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}
