package usecase

import (
	"context"

	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// DeployContractParams contains parameters for a one-off deployment
type DeployContractParams struct {
	Contract string
	// Args are constructor arguments as typed on the command line
	Args []string
}

// DeployContractResult contains the deployed instance
type DeployContractResult struct {
	Instance *models.Instance
	Args     []any
}

// DeployContract deploys a single contract with command-line constructor arguments
type DeployContract struct {
	contracts ContractRepository
	harness   *Harness
	codec     ArgCodec
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(contracts ContractRepository, harness *Harness, codec ArgCodec) *DeployContract {
	return &DeployContract{
		contracts: contracts,
		harness:   harness,
		codec:     codec,
	}
}

// Run parses the constructor arguments against the artifact's ABI and deploys it
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	contract, err := uc.contracts.GetContract(ctx, params.Contract)
	if err != nil {
		return nil, &domain.DeploymentError{Contract: params.Contract, Stage: domain.StageLookup, Err: err}
	}

	parsed, err := contract.Artifact.ParsedABI()
	if err != nil {
		return nil, &domain.DeploymentError{Contract: contract.Name, Stage: domain.StageEncode, Err: err}
	}

	args, err := uc.codec.ParseArgs(parsed.Constructor.Inputs, params.Args)
	if err != nil {
		return nil, &domain.DeploymentError{Contract: contract.Name, Stage: domain.StageEncode, Err: err}
	}

	// Resolve by full key so the harness sees the same artifact
	instance, err := uc.harness.Deploy(ctx, contract.Key(), args...)
	if err != nil {
		return nil, err
	}

	return &DeployContractResult{Instance: instance, Args: args}, nil
}
