package dto

import "github.com/feral-file/ff-flow-nft/internal/domain"

// HealthResponse represents the response of the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NetworkListResponse represents the networks that have deployments
type NetworkListResponse struct {
	Networks []domain.NetworkInfo `json:"networks"`
}

// DeploymentListResponse represents the deployments of a network
type DeploymentListResponse struct {
	Network     domain.Network       `json:"network"`
	Deployments []DeploymentResponse `json:"deployments"`
}

// DeploymentResponse represents a single deployment together with its display label
type DeploymentResponse struct {
	domain.Deployment
	Collection string `json:"collection"`
}

// OwnedTokensResponse represents the tokens held by an owner
type OwnedTokensResponse struct {
	Owner  string               `json:"owner"`
	Tokens []domain.TokenRecord `json:"tokens"`
	Count  int                  `json:"count"`
}

// MapDeployments maps registry deployments to their response form
func MapDeployments(network domain.Network, deployments []domain.Deployment) *DeploymentListResponse {
	items := make([]DeploymentResponse, 0, len(deployments))
	for _, d := range deployments {
		items = append(items, DeploymentResponse{Deployment: d, Collection: d.Label()})
	}
	return &DeploymentListResponse{
		Network:     network,
		Deployments: items,
	}
}
