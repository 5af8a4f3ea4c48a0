package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/networks", handler.ListNetworks)
		v1.GET("/networks/:network/deployments", handler.ListDeployments)
		v1.GET("/networks/:network/owners/:address/tokens", handler.GetOwnedTokens)
		v1.GET("/networks/:network/collections/:tag", handler.GetCollection)
	}
}
