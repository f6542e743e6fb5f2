package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// ProjectFile is the name of the project configuration file
const ProjectFile = "sling.toml"

// LoadProject loads sling.toml from projectRoot. A missing file is not an
// error: the defaults are returned with an empty path.
func LoadProject(projectRoot string) (*config.ProjectConfig, string, error) {
	loadDotEnv(projectRoot)

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), "", nil
	}

	cfg := config.DefaultProjectConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]config.NetworkConfig{}
	}

	cfg.Artifacts = os.ExpandEnv(cfg.Artifacts)
	cfg.BuildCommand = os.ExpandEnv(cfg.BuildCommand)
	for name, n := range cfg.Networks {
		n.RPCURL = os.ExpandEnv(n.RPCURL)
		n.PrivateKey = os.ExpandEnv(n.PrivateKey)
		cfg.Networks[name] = n
	}

	return cfg, path, nil
}

// loadDotEnv loads .env files first so ${VAR} references in sling.toml expand
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
