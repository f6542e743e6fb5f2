package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string // absolute
	BuildCommand string

	// Network is the resolved network every command talks to
	Network *Network

	// Execution settings
	Debug   bool
	Timeout time.Duration

	// Config source tracking
	ConfigFile string // empty when running on built-in defaults

	// Resolved project file
	Project *ProjectConfig
}

// Network represents a resolved network
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`
	// ChainID is the expected chain ID, 0 means accept whatever the node reports
	ChainID        uint64        `json:"chainId,omitempty"`
	PrivateKey     string        `json:"-"`
	ConfirmTimeout time.Duration `json:"confirmTimeout"`
	BuiltIn        bool          `json:"builtIn,omitempty"`
}
