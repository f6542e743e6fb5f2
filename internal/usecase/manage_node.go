package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/sling/internal/domain"
)

// ManageNode handles local anvil node management operations
type ManageNode struct {
	anvilManager AnvilManager
	progress     ProgressSink
}

// NewManageNode creates a new node management use case
func NewManageNode(anvilManager AnvilManager, progress ProgressSink) *ManageNode {
	return &ManageNode{
		anvilManager: anvilManager,
		progress:     progress,
	}
}

// ManageNodeParams contains parameters for node operations
type ManageNodeParams struct {
	Operation string // start, stop, status
	Name      string
	Port      string
	ChainID   string
}

// ManageNodeResult contains the result of node operations
type ManageNodeResult struct {
	Operation string
	Instance  *domain.AnvilInstance
	Status    *domain.AnvilStatus
	Message   string
}

// Execute performs the node management operation
func (m *ManageNode) Execute(ctx context.Context, params ManageNodeParams) (*ManageNodeResult, error) {
	instance := &domain.AnvilInstance{
		Name:    params.Name,
		Port:    params.Port,
		ChainID: params.ChainID,
	}

	switch params.Operation {
	case "start":
		return m.start(ctx, instance)
	case "stop":
		return m.stop(ctx, instance)
	case "status":
		return m.status(ctx, instance)
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
}

func (m *ManageNode) start(ctx context.Context, instance *domain.AnvilInstance) (*ManageNodeResult, error) {
	m.progress.Info(fmt.Sprintf("Starting local anvil node '%s' on port %s...", instance.Name, instance.Port))

	if err := m.anvilManager.Start(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to start anvil: %w", err)
	}

	status, err := m.anvilManager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status after start: %w", err)
	}

	return &ManageNodeResult{
		Operation: "start",
		Instance:  instance,
		Status:    status,
		Message:   fmt.Sprintf("Anvil '%s' started with PID %d", instance.Name, status.PID),
	}, nil
}

func (m *ManageNode) stop(ctx context.Context, instance *domain.AnvilInstance) (*ManageNodeResult, error) {
	status, err := m.anvilManager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	if !status.Running {
		return &ManageNodeResult{
			Operation: "stop",
			Instance:  instance,
			Status:    status,
			Message:   fmt.Sprintf("Anvil '%s' is not running", instance.Name),
		}, nil
	}

	m.progress.Info(fmt.Sprintf("Stopping anvil '%s'...", instance.Name))
	if err := m.anvilManager.Stop(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to stop anvil: %w", err)
	}

	return &ManageNodeResult{
		Operation: "stop",
		Instance:  instance,
		Message:   fmt.Sprintf("Anvil '%s' stopped", instance.Name),
	}, nil
}

func (m *ManageNode) status(ctx context.Context, instance *domain.AnvilInstance) (*ManageNodeResult, error) {
	status, err := m.anvilManager.GetStatus(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return &ManageNodeResult{
		Operation: "status",
		Instance:  instance,
		Status:    status,
	}, nil
}
