package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
)

const (
	ipfsScheme    = "ipfs://"
	arweaveScheme = "ar://"
)

// ToGateway rewrites ipfs:// and ar:// URIs to the default public gateways without any I/O.
// Other URIs are returned unchanged.
func ToGateway(uri string) string {
	if cid, ok := ipfsPath(uri); ok {
		return ipfsGatewayURL(domain.DEFAULT_IPFS_GATEWAY, cid)
	}
	if txID, ok := strings.CutPrefix(uri, arweaveScheme); ok {
		return arweaveGatewayURL(domain.DEFAULT_ARWEAVE_GATEWAY, txID)
	}
	return uri
}

// ipfsPath extracts the CID path of an ipfs:// URI; ipfs://ipfs/<cid> is accepted too
func ipfsPath(uri string) (string, bool) {
	path, ok := strings.CutPrefix(uri, ipfsScheme)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(path, "ipfs/"), true
}

func ipfsGatewayURL(gateway, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", strings.TrimRight(gateway, "/"), cid)
}

func arweaveGatewayURL(gateway, txID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(gateway, "/"), txID)
}

// FindWorkingGateway HEAD-probes the candidate URLs in parallel and returns the first one answering 200
func FindWorkingGateway(ctx context.Context, httpClient adapter.HTTPClient, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no gateways configured")
	}

	logger.DebugCtx(ctx, "Probing gateways", zap.Strings("candidates", candidates))

	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(candidates))
	var wg sync.WaitGroup

	for _, candidate := range candidates {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			resp, err := httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "Found working gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working gateway found among %d candidates", len(candidates))
}
