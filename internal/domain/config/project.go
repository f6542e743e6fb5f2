package config

// ProjectConfig represents sling.toml
type ProjectConfig struct {
	Artifacts      string                   `toml:"artifacts"`
	BuildCommand   string                   `toml:"build_command,omitempty"`
	DefaultNetwork string                   `toml:"default_network,omitempty"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// NetworkConfig represents a [networks.<name>] table
type NetworkConfig struct {
	RPCURL         string `toml:"rpc_url"`
	ChainID        uint64 `toml:"chain_id,omitempty"`
	PrivateKey     string `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	ConfirmTimeout string `toml:"confirm_timeout,omitempty"`
}

// DefaultProjectConfig is used when no sling.toml exists
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Artifacts:      "artifacts",
		DefaultNetwork: "localhost",
		Networks:       map[string]NetworkConfig{},
	}
}
