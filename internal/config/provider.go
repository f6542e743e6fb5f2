package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	project, configFile, err := LoadProject(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:  projectRoot,
		BuildCommand: project.BuildCommand,
		Debug:        v.GetBool("debug"),
		Timeout:      v.GetDuration("timeout"),
		ConfigFile:   configFile,
		Project:      project,
	}

	artifacts := v.GetString("artifacts")
	if artifacts == "" {
		artifacts = project.Artifacts
	}
	if !filepath.IsAbs(artifacts) {
		artifacts = filepath.Join(projectRoot, artifacts)
	}
	cfg.ArtifactsDir = artifacts

	// Resolve network: flag/env, then sling.toml default, then localhost
	networkName := v.GetString("network")
	if networkName == "" {
		networkName = project.DefaultNetwork
	}
	if networkName == "" {
		networkName = "localhost"
	}

	network, err := NewNetworkResolver(project).Resolve(networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	if key := v.GetString("private_key"); key != "" {
		network.PrivateKey = key
	}
	cfg.Network = network

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find sling.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SLING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "10m")
	v.SetDefault("debug", false)
	v.SetDefault("project_root", projectRoot)

	// Flags use dashes, keys use underscores
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
