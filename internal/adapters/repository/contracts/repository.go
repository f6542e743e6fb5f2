package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// Repository indexes Hardhat and Foundry artifacts below the artifacts directory
type Repository struct {
	projectRoot   string
	artifactsDir  string
	buildCommand  string
	contracts     map[string]*models.Contract   // key: "source:Name"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new contract repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot:   cfg.ProjectRoot,
		artifactsDir:  cfg.ArtifactsDir,
		buildCommand:  cfg.BuildCommand,
		log:           log,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
	}
}

// Index runs the build command, if any, and reads every artifact
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.contracts = make(map[string]*models.Contract)
	r.contractNames = make(map[string][]*models.Contract)

	if r.buildCommand != "" {
		if err := r.runBuild(); err != nil {
			return fmt.Errorf("failed to build contracts: %w", err)
		}
	}

	if _, err := os.Stat(r.artifactsDir); os.IsNotExist(err) {
		return fmt.Errorf("artifacts directory %s not found, compile your contracts first", r.artifactsDir)
	}

	err := filepath.Walk(r.artifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Hardhat and Foundry both keep solc build info here
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}
		return r.processArtifact(path)
	})
	if err != nil {
		return err
	}

	r.log.Debug("indexed artifacts", "dir", r.artifactsDir, "contracts", len(r.contracts))
	r.indexed = true
	return nil
}

func (r *Repository) runBuild() error {
	r.log.Debug("running build command", "command", r.buildCommand)
	cmd := exec.Command("sh", "-c", r.buildCommand)
	cmd.Dir = r.projectRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", r.buildCommand, err, string(output))
	}
	return nil
}

func (r *Repository) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Not every JSON file under the artifacts directory is an artifact
		r.log.Debug("skipping unreadable artifact", "path", artifactPath, "error", err)
		return nil
	}
	if len(artifact.ABI) == 0 {
		return nil
	}

	sourceName, contractName := artifact.Identity()
	if contractName == "" {
		// Foundry without metadata: out/IfElse.sol/IfElse.json
		contractName = strings.TrimSuffix(filepath.Base(artifactPath), ".json")
		sourceName = filepath.Base(filepath.Dir(artifactPath))
	}

	relArtifactPath, err := filepath.Rel(r.projectRoot, artifactPath)
	if err != nil {
		relArtifactPath = artifactPath
	}

	contract := &models.Contract{
		Name:         contractName,
		Path:         sourceName,
		ArtifactPath: relArtifactPath,
		Artifact:     &artifact,
	}

	if _, exists := r.contracts[contract.Key()]; exists {
		// Foundry writes one artifact per compiler version; the first one wins
		return nil
	}
	r.contracts[contract.Key()] = contract
	r.contractNames[contract.Name] = append(r.contractNames[contract.Name], contract)

	r.log.Debug("indexed artifact", "contract", contract.Key(), "path", relArtifactPath)
	return nil
}

// GetContract retrieves a contract by name or source:Name
func (r *Repository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if contract, exists := r.contracts[key]; exists {
		return contract, nil
	}

	matches := r.contractNames[key]
	switch len(matches) {
	case 0:
		return nil, domain.NotFoundErr{
			Kind:        domain.ErrContractNotFound,
			Name:        key,
			Suggestions: domain.Suggest(key, lo.Keys(r.contractNames)),
		}
	case 1:
		return matches[0], nil
	default:
		return nil, domain.AmbiguousContractErr{
			Name:    key,
			Matches: lo.Map(matches, func(c *models.Contract, _ int) string { return c.Key() }),
		}
	}
}

// ListContracts returns every indexed contract ordered by source:Name
func (r *Repository) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := lo.Values(r.contracts)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key() < result[j].Key()
	})
	return result, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractRepository = (*Repository)(nil)
