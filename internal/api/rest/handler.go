package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-flow-nft/internal/api/shared/constants"
	"github.com/feral-file/ff-flow-nft/internal/api/shared/dto"
	"github.com/feral-file/ff-flow-nft/internal/api/shared/executor"
	"github.com/feral-file/ff-flow-nft/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListNetworks returns the networks that have deployments
	// GET /api/v1/networks
	ListNetworks(c *gin.Context)

	// ListDeployments returns the deployments of a network
	// GET /api/v1/networks/:network/deployments
	ListDeployments(c *gin.Context)

	// GetOwnedTokens returns the tokens an address owns on a network
	// GET /api/v1/networks/:network/owners/:address/tokens?tags=<tag1>,<tag2>
	GetOwnedTokens(c *gin.Context)

	// GetCollection returns the collection metadata of a deployment
	// GET /api/v1/networks/:network/collections/:tag
	GetCollection(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// ListNetworks returns the networks that have deployments
func (h *handler) ListNetworks(c *gin.Context) {
	networks := h.executor.ListNetworks(c.Request.Context())
	c.JSON(http.StatusOK, dto.NetworkListResponse{Networks: networks})
}

// ListDeployments returns the deployments of a network
func (h *handler) ListDeployments(c *gin.Context) {
	network := domain.Network(c.Param("network"))

	deployments, err := h.executor.ListDeployments(c.Request.Context(), network)
	if err != nil {
		respondExecutorError(c, err, "Failed to list deployments")
		return
	}

	c.JSON(http.StatusOK, dto.MapDeployments(network, deployments))
}

// GetOwnedTokens returns the tokens an address owns on a network
func (h *handler) GetOwnedTokens(c *gin.Context) {
	network := domain.Network(c.Param("network"))
	address := c.Param("address")

	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid address", address)
		return
	}

	queryParams, err := ParseOwnedTokensQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tokens, err := h.executor.GetOwnedTokens(c.Request.Context(), network, address, queryParams.Tags)
	if err != nil {
		respondExecutorError(c, err, "Failed to resolve owned tokens")
		return
	}

	c.JSON(http.StatusOK, dto.OwnedTokensResponse{
		Owner:  address,
		Tokens: tokens,
		Count:  len(tokens),
	})
}

// GetCollection returns the collection metadata of a deployment
func (h *handler) GetCollection(c *gin.Context) {
	network := domain.Network(c.Param("network"))
	tag := c.Param("tag")

	collection, err := h.executor.GetCollection(c.Request.Context(), network, tag)
	if err != nil {
		respondExecutorError(c, err, "Failed to get collection metadata")
		return
	}

	c.JSON(http.StatusOK, collection)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: constants.SERVICE_NAME,
	})
}
