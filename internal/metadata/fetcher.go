package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
	"github.com/feral-file/ff-flow-nft/internal/types"
)

// ErrUnsupportedScheme is returned for URIs that are neither http(s) nor data URIs.
// Content-addressed URIs must go through the URI resolver first.
var ErrUnsupportedScheme = errors.New("unsupported URI scheme")

// Fetcher defines the interface for fetching token and collection metadata
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// Fetch downloads the metadata at uri and normalizes it into TokenMetadata.
	// A media payload (image/video/audio) is treated as the token's image.
	Fetch(ctx context.Context, uri string) (*domain.TokenMetadata, error)

	// FetchJSON downloads the JSON document at uri
	FetchJSON(ctx context.Context, uri string) (map[string]interface{}, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	base64     adapter.Base64
}

// NewFetcher creates a metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, json adapter.JSON, base64 adapter.Base64) Fetcher {
	return &fetcher{
		httpClient: httpClient,
		json:       json,
		base64:     base64,
	}
}

func (f *fetcher) Fetch(ctx context.Context, uri string) (*domain.TokenMetadata, error) {
	body, err := f.fetchBody(ctx, uri)
	if err != nil {
		return nil, err
	}

	if mimeType := detectMimeType(body); isMediaMimeType(mimeType) {
		logger.DebugCtx(ctx, "Token URI points at media, using it as the image",
			zap.String("uri", uri),
			zap.String("mimeType", mimeType))
		return &domain.TokenMetadata{Image: types.StringPtr(uri)}, nil
	}

	raw, err := f.decode(body)
	if err != nil {
		return nil, err
	}

	return Normalize(raw), nil
}

func (f *fetcher) FetchJSON(ctx context.Context, uri string) (map[string]interface{}, error) {
	body, err := f.fetchBody(ctx, uri)
	if err != nil {
		return nil, err
	}
	return f.decode(body)
}

func (f *fetcher) decode(body []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := f.json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("metadata is not a JSON object")
	}
	return raw, nil
}

// fetchBody returns the payload behind a data URI or an http(s) URL
func (f *fetcher) fetchBody(ctx context.Context, uri string) ([]byte, error) {
	switch {
	case types.IsDataURI(uri):
		parsed, err := types.ParseDataURI(uri)
		if err != nil {
			return nil, err
		}
		if !parsed.Base64 {
			return []byte(parsed.Data), nil
		}
		decoded, err := f.base64.Decode(parsed.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		return decoded, nil
	case types.IsHTTPURL(uri):
		body, err := f.httpClient.GetBytes(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch URL: %w", err)
		}
		return body, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, uri)
	}
}

// Normalize extracts the fields of interest from a metadata document.
// Top-level OpenSea fields win over the nested "Asset Metadata" properties.
func Normalize(raw map[string]interface{}) *domain.TokenMetadata {
	return &domain.TokenMetadata{
		Name:        field(raw, "name"),
		Description: field(raw, "description"),
		Image:       field(raw, "image"),
		LastUpdated: firstString(raw, "updated_at", "lastUpdated"),
	}
}

// field reads key from the top level, falling back to properties.<key>.value
func field(raw map[string]interface{}, key string) *string {
	if v := firstString(raw, key); v != nil {
		return v
	}

	properties, ok := raw["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	switch property := properties[key].(type) {
	case map[string]interface{}:
		return firstString(property, "value")
	case string:
		return &property
	}
	return nil
}

// firstString returns the first key holding a non-blank string
func firstString(raw map[string]interface{}, keys ...string) *string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
			return &s
		}
	}
	return nil
}
