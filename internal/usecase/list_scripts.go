package usecase

import (
	"context"

	"github.com/trebuchet-org/sling/internal/scripts"
)

// ListScripts is a use case for listing the built-in scripts
type ListScripts struct {
	registry *scripts.Registry
}

// NewListScripts creates a new ListScripts use case
func NewListScripts(registry *scripts.Registry) *ListScripts {
	return &ListScripts{registry: registry}
}

// Run returns every registered script sorted by name
func (uc *ListScripts) Run(ctx context.Context) []*scripts.Script {
	return uc.registry.List()
}
