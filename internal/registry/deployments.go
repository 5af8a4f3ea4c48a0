package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/logger"
)

// DeploymentRegistry defines the interface for looking up deployed contracts
//
//go:generate mockgen -source=deployments.go -destination=../mocks/deployment_registry.go -package=mocks -mock_names=DeploymentRegistry=MockDeploymentRegistry,DeploymentRegistryLoader=MockDeploymentRegistryLoader
type DeploymentRegistry interface {
	// Networks returns the networks that have at least one deployment, sorted by name
	Networks() []domain.Network

	// Deployments returns the deployments of a network in registry order
	Deployments(network domain.Network) []domain.Deployment

	// Lookup finds a deployment of a network by tag or by contract address
	Lookup(network domain.Network, tag string) (domain.Deployment, error)
}

// DeploymentRegistryLoader defines the interface for loading deployment registries from files
type DeploymentRegistryLoader interface {
	// Load loads the deployment registry from a JSON file
	Load(filePath string) (DeploymentRegistry, error)
}

// contractEntry is one contract of a network in the registry file.
// The file holds either a bare address string or an object with the deployment history.
type contractEntry struct {
	Address string         `json:"address"`
	History []historyEntry `json:"history"`
}

type historyEntry struct {
	Address    string `json:"address"`
	Tag        string `json:"tag"`
	DeployedAt string `json:"deployedAt"`
}

// deploymentRegistry is the internal implementation of DeploymentRegistry interface
type deploymentRegistry struct {
	deployments map[domain.Network][]domain.Deployment
}

// deploymentRegistryLoader is the internal implementation of DeploymentRegistryLoader interface
type deploymentRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewDeploymentRegistryLoader creates a new DeploymentRegistryLoader with injected dependencies
func NewDeploymentRegistryLoader(fs adapter.FileSystem, json adapter.JSON) DeploymentRegistryLoader {
	return &deploymentRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// NewDeploymentRegistry creates a registry from in-memory deployments
func NewDeploymentRegistry(deployments map[domain.Network][]domain.Deployment) DeploymentRegistry {
	registry := &deploymentRegistry{deployments: make(map[domain.Network][]domain.Deployment)}
	for network, list := range deployments {
		registry.deployments[network] = dedupe(list)
	}
	return registry
}

// Load loads the deployment registry from a JSON file.
// A missing file yields an empty registry: nothing has been deployed yet.
func (l *deploymentRegistryLoader) Load(filePath string) (DeploymentRegistry, error) {
	if !l.fs.Exists(filePath) {
		logger.Warn("Deployment registry file not found, starting empty", zap.String("path", filePath))
		return NewDeploymentRegistry(nil), nil
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var networks map[string]map[string]json.RawMessage
	if err := l.json.Unmarshal(data, &networks); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	deployments := make(map[domain.Network][]domain.Deployment)
	for network, contracts := range networks {
		// contract names are sorted so the order does not depend on map iteration
		names := make([]string, 0, len(contracts))
		for name := range contracts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			entries, err := l.parseContract(contracts[name])
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s.%s: %w", network, name, err)
			}
			deployments[domain.Network(network)] = append(deployments[domain.Network(network)], entries...)
		}
	}

	return NewDeploymentRegistry(deployments), nil
}

// parseContract accepts either "0x..." or {"address": "0x..", "history": [...]}
func (l *deploymentRegistryLoader) parseContract(raw json.RawMessage) ([]domain.Deployment, error) {
	var address string
	if err := l.json.Unmarshal(raw, &address); err == nil {
		return []domain.Deployment{{Address: address}}, nil
	}

	var entry contractEntry
	if err := l.json.Unmarshal(raw, &entry); err != nil {
		return nil, err
	}

	if len(entry.History) == 0 {
		if entry.Address == "" {
			return nil, nil
		}
		return []domain.Deployment{{Address: entry.Address}}, nil
	}

	deployments := make([]domain.Deployment, 0, len(entry.History))
	for _, h := range entry.History {
		deployments = append(deployments, domain.Deployment{
			Address:    h.Address,
			Tag:        h.Tag,
			DeployedAt: h.DeployedAt,
		})
	}
	return deployments, nil
}

// dedupe drops invalid addresses and repeated addresses, keeping the first occurrence
func dedupe(list []domain.Deployment) []domain.Deployment {
	seen := make(map[string]struct{}, len(list))
	result := make([]domain.Deployment, 0, len(list))
	for _, d := range list {
		if !domain.IsValidAddress(d.Address) {
			logger.Warn("Skipping deployment with invalid address", zap.String("address", d.Address), zap.String("tag", d.Tag))
			continue
		}
		key := strings.ToLower(d.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, d)
	}
	return result
}

// Networks returns the networks that have at least one deployment
func (r *deploymentRegistry) Networks() []domain.Network {
	networks := make([]domain.Network, 0, len(r.deployments))
	for network, list := range r.deployments {
		if len(list) > 0 {
			networks = append(networks, network)
		}
	}
	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })
	return networks
}

// Deployments returns a copy of the deployments of a network
func (r *deploymentRegistry) Deployments(network domain.Network) []domain.Deployment {
	list := r.deployments[network]
	result := make([]domain.Deployment, len(list))
	copy(result, list)
	return result
}

// Lookup finds a deployment by tag, falling back to a case-insensitive address match
func (r *deploymentRegistry) Lookup(network domain.Network, tag string) (domain.Deployment, error) {
	for _, d := range r.deployments[network] {
		if d.Tag != "" && d.Tag == tag {
			return d, nil
		}
	}
	for _, d := range r.deployments[network] {
		if domain.SameAddress(d.Address, tag) {
			return d, nil
		}
	}
	return domain.Deployment{}, fmt.Errorf("%w: %s on %s", domain.ErrDeploymentNotFound, tag, network)
}

// Select returns every deployment of the network, or only those matching tags when any are given.
// Tags are resolved with Lookup; a tag naming an already selected contract is ignored.
func Select(registry DeploymentRegistry, network domain.Network, tags []string) ([]domain.Deployment, error) {
	if len(tags) == 0 {
		return registry.Deployments(network), nil
	}

	selected := make([]domain.Deployment, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		deployment, err := registry.Lookup(network, tag)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(deployment.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, deployment)
	}
	return selected, nil
}
