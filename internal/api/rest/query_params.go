package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-flow-nft/internal/api/shared/constants"
)

// OwnedTokensQueryParams holds query parameters for GET /networks/:network/owners/:address/tokens
type OwnedTokensQueryParams struct {
	// Tags accepts both repeated (?tags=a&tags=b) and comma separated (?tags=a,b) values
	Tags []string `form:"tags"`
}

// ParseOwnedTokensQuery parses query parameters for GET /networks/:network/owners/:address/tokens
func ParseOwnedTokensQuery(c *gin.Context) (*OwnedTokensQueryParams, error) {
	var params OwnedTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Tags = splitCommaValues(params.Tags)

	return &params, nil
}

// Validate validates the query parameters
func (p *OwnedTokensQueryParams) Validate() error {
	if len(p.Tags) > constants.MAX_TAGS_PER_REQUEST {
		return fmt.Errorf("at most %d tags are allowed", constants.MAX_TAGS_PER_REQUEST)
	}
	return nil
}

// splitCommaValues flattens comma separated values and drops blanks
func splitCommaValues(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
