package uri

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
)

// ErrEmptyURI is returned when there is nothing to resolve
var ErrEmptyURI = errors.New("empty URI")

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try
	ArweaveGateways []string
	// ProbeGateways makes the resolver HEAD-probe every gateway and pick the first reachable one.
	// When false the first configured gateway is used as is.
	ProbeGateways bool
}

// Resolver defines the interface for resolving URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve rewrites content-addressed URIs (ipfs://, ar://) to fetchable HTTP URLs.
	// http(s) and data URIs are returned unchanged.
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

// NewResolver creates a URI resolver
func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", ErrEmptyURI
	}

	if cid, ok := ipfsPath(uri); ok {
		return r.resolve(ctx, "IPFS", r.config.IPFSGateways, func(gateway string) string {
			return ipfsGatewayURL(gateway, cid)
		})
	}

	if txID, ok := strings.CutPrefix(uri, arweaveScheme); ok {
		return r.resolve(ctx, "Arweave", r.config.ArweaveGateways, func(gateway string) string {
			return arweaveGatewayURL(gateway, txID)
		})
	}

	return uri, nil
}

// resolve builds the gateway URL, probing the gateways when configured to
func (r *resolver) resolve(ctx context.Context, kind string, gateways []string, build func(string) string) (string, error) {
	if len(gateways) == 0 {
		return "", fmt.Errorf("no %s gateways configured", kind)
	}

	if !r.config.ProbeGateways {
		return build(gateways[0]), nil
	}

	candidates := make([]string, len(gateways))
	for i, gateway := range gateways {
		candidates[i] = build(gateway)
	}

	url, err := FindWorkingGateway(ctx, r.httpClient, candidates)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s URI: %w", kind, err)
	}
	return url, nil
}
