package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// MockAnvilManager is a mock implementation of AnvilManager
type MockAnvilManager struct {
	mock.Mock
}

func (m *MockAnvilManager) Start(ctx context.Context, instance *domain.AnvilInstance) error {
	return m.Called(ctx, instance).Error(0)
}

func (m *MockAnvilManager) Stop(ctx context.Context, instance *domain.AnvilInstance) error {
	return m.Called(ctx, instance).Error(0)
}

func (m *MockAnvilManager) GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error) {
	args := m.Called(ctx, instance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnvilStatus), args.Error(1)
}

func TestManageNode(t *testing.T) {
	ctx := context.Background()

	t.Run("start", func(t *testing.T) {
		anvil := &MockAnvilManager{}
		anvil.On("Start", ctx, mock.MatchedBy(func(i *domain.AnvilInstance) bool {
			return i.Name == "anvil" && i.Port == "8545" && i.ChainID == "31337"
		})).Return(nil)
		anvil.On("GetStatus", ctx, mock.Anything).Return(&domain.AnvilStatus{Running: true, PID: 42}, nil)

		uc := usecase.NewManageNode(anvil, &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "start", Name: "anvil", Port: "8545", ChainID: "31337"})
		require.NoError(t, err)
		assert.Equal(t, "Anvil 'anvil' started with PID 42", result.Message)
		anvil.AssertExpectations(t)
	})

	t.Run("start failure", func(t *testing.T) {
		anvil := &MockAnvilManager{}
		anvil.On("Start", ctx, mock.Anything).Return(errors.New("already running"))

		uc := usecase.NewManageNode(anvil, &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "start", Name: "anvil"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start anvil: already running")
	})

	t.Run("stop when not running", func(t *testing.T) {
		anvil := &MockAnvilManager{}
		anvil.On("GetStatus", ctx, mock.Anything).Return(&domain.AnvilStatus{Running: false}, nil)

		uc := usecase.NewManageNode(anvil, &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "stop", Name: "anvil"})
		require.NoError(t, err)
		assert.Equal(t, "Anvil 'anvil' is not running", result.Message)
		anvil.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
	})

	t.Run("stop", func(t *testing.T) {
		anvil := &MockAnvilManager{}
		anvil.On("GetStatus", ctx, mock.Anything).Return(&domain.AnvilStatus{Running: true, PID: 42}, nil)
		anvil.On("Stop", ctx, mock.Anything).Return(nil)

		uc := usecase.NewManageNode(anvil, &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "stop", Name: "anvil"})
		require.NoError(t, err)
		assert.Equal(t, "Anvil 'anvil' stopped", result.Message)
	})

	t.Run("status", func(t *testing.T) {
		anvil := &MockAnvilManager{}
		status := &domain.AnvilStatus{Running: true, RPCHealthy: true, ChainID: 31337}
		anvil.On("GetStatus", ctx, mock.Anything).Return(status, nil)

		uc := usecase.NewManageNode(anvil, &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "status"})
		require.NoError(t, err)
		assert.Same(t, status, result.Status)
	})

	t.Run("unknown operation", func(t *testing.T) {
		uc := usecase.NewManageNode(&MockAnvilManager{}, &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ManageNodeParams{Operation: "restart"})
		assert.EqualError(t, err, "unknown operation: restart")
	})
}
