package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// ListContractsParams contains parameters for listing contracts
type ListContractsParams struct {
	// Filter keeps contracts whose name or source contains it, case-insensitively
	Filter string
}

// ListContractsResult contains the indexed contracts
type ListContractsResult struct {
	Contracts []*models.Contract
}

// ListContracts is a use case for listing compiled contracts
type ListContracts struct {
	contracts ContractRepository
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(contracts ContractRepository) *ListContracts {
	return &ListContracts{contracts: contracts}
}

// Run returns the contracts from the artifacts directory, sorted by key
func (uc *ListContracts) Run(ctx context.Context, params ListContractsParams) (*ListContractsResult, error) {
	all, err := uc.contracts.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(params.Filter)
	return &ListContractsResult{
		Contracts: lo.Filter(all, func(c *models.Contract, _ int) bool {
			return filter == "" || strings.Contains(strings.ToLower(c.Key()), filter)
		}),
	}, nil
}
