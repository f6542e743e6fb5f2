package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/testutil"
	"github.com/trebuchet-org/sling/internal/usecase"
)

type failingContracts struct{ testutil.Contracts }

func (failingContracts) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	return nil, errors.New("artifacts directory out not found")
}

func TestListContracts(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewListContracts(testutil.NewContracts())

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"all", "", []string{"IfElse", "Mapping", "Reverter"}},
		{"by name", "map", []string{"Mapping"}},
		{"by source", "IFELSE.sol", []string{"IfElse"}},
		{"no match", "Token", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Run(ctx, usecase.ListContractsParams{Filter: tt.filter})
			require.NoError(t, err)

			names := lo.Map(result.Contracts, func(c *models.Contract, _ int) string { return c.Name })
			if tt.want == nil {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		_, err := usecase.NewListContracts(failingContracts{}).Run(ctx, usecase.ListContractsParams{})
		assert.EqualError(t, err, "artifacts directory out not found")
	})
}
