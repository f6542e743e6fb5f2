package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/scripts"
)

// RunScriptParams contains parameters for running a script
type RunScriptParams struct {
	Name string
	// Out receives the script's console output
	Out io.Writer
}

// RunScriptResult contains the result of a script run
type RunScriptResult struct {
	Script   *scripts.Script
	Network  string
	ChainID  uint64
	Deployer common.Address
	Duration time.Duration
}

// RunScript executes one registered script against the configured network
type RunScript struct {
	config   *config.RuntimeConfig
	registry *scripts.Registry
	harness  *Harness
	log      *slog.Logger
}

// NewRunScript creates a new RunScript use case
func NewRunScript(cfg *config.RuntimeConfig, registry *scripts.Registry, harness *Harness, log *slog.Logger) *RunScript {
	return &RunScript{
		config:   cfg,
		registry: registry,
		harness:  harness,
		log:      log,
	}
}

// Run resolves the script and executes it to completion. The first failing
// step aborts the script; its error is wrapped with the script name and stays
// reachable through errors.As.
func (uc *RunScript) Run(ctx context.Context, params RunScriptParams) (*RunScriptResult, error) {
	script, err := uc.registry.Get(params.Name)
	if err != nil {
		return nil, err
	}

	out := params.Out
	if out == nil {
		out = io.Discard
	}

	log := uc.log.With("script", script.Name)
	log.Info("running script", "network", uc.config.Network.Name)

	start := time.Now()
	if err := script.Run(ctx, uc.harness, out); err != nil {
		log.Debug("script failed", "error", err)
		return nil, fmt.Errorf("script %s failed: %w", script.Name, err)
	}

	result := &RunScriptResult{
		Script:   script,
		Network:  uc.config.Network.Name,
		ChainID:  uc.harness.ChainID(),
		Deployer: uc.harness.Deployer(),
		Duration: time.Since(start),
	}
	log.Info("script completed", "duration", result.Duration)
	return result, nil
}
