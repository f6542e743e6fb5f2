package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

const (
	// DevPrivateKey is account 0 of the standard hardhat/anvil test mnemonic.
	// It is only ever used for networks that point at a local node.
	DevPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	// DevChainID is the chain ID hardhat and anvil use by default
	DevChainID = 31337

	DefaultConfirmTimeout = 2 * time.Minute
	DefaultLocalRPC       = "http://127.0.0.1:8545"
)

// builtInNetworks are always available unless sling.toml redefines them
var builtInNetworks = []string{"localhost", "hardhat", "anvil"}

// NetworkResolver resolves network names against sling.toml and the built-in dev networks
type NetworkResolver struct {
	project *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	if project == nil {
		project = config.DefaultProjectConfig()
	}
	return &NetworkResolver{project: project}
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if nc, ok := r.project.Networks[networkName]; ok {
		return r.fromConfig(networkName, nc)
	}

	if lo.Contains(builtInNetworks, networkName) {
		return &config.Network{
			Name:           networkName,
			RPCURL:         DefaultLocalRPC,
			ChainID:        DevChainID,
			PrivateKey:     DevPrivateKey,
			ConfirmTimeout: DefaultConfirmTimeout,
			BuiltIn:        true,
		}, nil
	}

	return nil, domain.NotFoundErr{
		Kind:        domain.ErrNetworkNotFound,
		Name:        networkName,
		Suggestions: r.Names(),
	}
}

// Names returns every resolvable network name, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Union(lo.Keys(r.project.Networks), builtInNetworks)
	sort.Strings(names)
	return names
}

func (r *NetworkResolver) fromConfig(name string, nc config.NetworkConfig) (*config.Network, error) {
	if nc.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url in %s", name, ProjectFile)
	}

	timeout := DefaultConfirmTimeout
	if nc.ConfirmTimeout != "" {
		d, err := time.ParseDuration(nc.ConfirmTimeout)
		if err != nil {
			return nil, fmt.Errorf("network '%s': invalid confirm_timeout %q: %w", name, nc.ConfirmTimeout, err)
		}
		timeout = d
	}

	key := nc.PrivateKey
	if key == "" && IsLocalRPC(nc.RPCURL) {
		key = DevPrivateKey
	}

	return &config.Network{
		Name:           name,
		RPCURL:         nc.RPCURL,
		ChainID:        nc.ChainID,
		PrivateKey:     key,
		ConfirmTimeout: timeout,
	}, nil
}

// IsLocalRPC reports whether the RPC URL points at this machine
func IsLocalRPC(rpcURL string) bool {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "localhost" || host == "127.0.0.1" || host == "::1" || host == "0.0.0.0"
}
