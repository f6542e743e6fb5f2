package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// probeTimeout bounds each endpoint check
const probeTimeout = 3 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe asks each endpoint for its chain ID
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Network *config.Network
	Current bool
	// ReportedChainID is what the node answered, 0 when not probed
	ReportedChainID uint64
	Error           error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
	probe    ChainProbe
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, probe ChainProbe) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
		probe:    probe,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	current := ""
	if uc.config.Network != nil {
		current = uc.config.Network.Name
	}

	networks := lo.Map(uc.resolver.Names(), func(name string, _ int) NetworkStatus {
		status := NetworkStatus{Current: name == current}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Network = &config.Network{Name: name}
			status.Error = err
			return status
		}
		status.Network = network

		if params.Probe {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()
			status.ReportedChainID, status.Error = uc.probe.ProbeChainID(probeCtx, network.RPCURL)
		}
		return status
	})

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
