package scripts

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// MockHarness is a mock implementation of Harness
type MockHarness struct {
	mock.Mock
}

func (m *MockHarness) Deploy(ctx context.Context, contractName string, args ...any) (*models.Instance, error) {
	ret := m.Called(ctx, contractName)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*models.Instance), ret.Error(1)
}

func (m *MockHarness) Invoke(ctx context.Context, instance *models.Instance, method string, args ...any) (*models.InvocationResult, error) {
	ret := m.Called(ctx, instance, method, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*models.InvocationResult), ret.Error(1)
}

func (m *MockHarness) Deployer() common.Address {
	return m.Called().Get(0).(common.Address)
}

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

func value(v int64) *models.InvocationResult {
	return &models.InvocationResult{Kind: models.KindCall, Values: []any{big.NewInt(v)}}
}

func TestFooIfElse(t *testing.T) {
	ctx := context.Background()
	h := &MockHarness{}
	instance := &models.Instance{Address: contractAddr, Confirmed: true}

	h.On("Deploy", ctx, "IfElse").Return(instance, nil).Once()
	h.On("Invoke", ctx, instance, "foo", []any{big.NewInt(5)}).Return(value(0), nil).Once()
	h.On("Invoke", ctx, instance, "foo", []any{big.NewInt(11)}).Return(value(1), nil).Once()
	h.On("Invoke", ctx, instance, "foo", []any{big.NewInt(30)}).Return(value(2), nil).Once()

	var out bytes.Buffer
	require.NoError(t, FooIfElse().Run(ctx, h, &out))

	assert.Equal(t, `IfElse Contract deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3
Calling foo(5)
foo(5) output (input < 10): 0

Calling foo(11)
foo(11) output (input > 10 and < 20): 1

Calling foo(30)
foo(30) output (input > 20): 2
`, out.String())
	h.AssertExpectations(t)
}

func TestFooIfElse_StopsOnError(t *testing.T) {
	ctx := context.Background()
	h := &MockHarness{}
	instance := &models.Instance{Address: contractAddr, Confirmed: true}
	invErr := &domain.InvocationError{Contract: "IfElse", Method: "foo", Err: errors.New("connection refused")}

	h.On("Deploy", ctx, "IfElse").Return(instance, nil)
	h.On("Invoke", ctx, instance, "foo", []any{big.NewInt(5)}).Return(value(0), nil)
	h.On("Invoke", ctx, instance, "foo", []any{big.NewInt(11)}).Return(nil, invErr)

	var out bytes.Buffer
	err := FooIfElse().Run(ctx, h, &out)
	assert.Same(t, invErr, err)
	assert.NotContains(t, out.String(), "foo(30)")
	h.AssertNotCalled(t, "Invoke", ctx, instance, "foo", []any{big.NewInt(30)})
}

func TestFooIfElse_DeployFailure(t *testing.T) {
	ctx := context.Background()
	h := &MockHarness{}
	deployErr := &domain.DeploymentError{Contract: "IfElse", Stage: domain.StageLookup, Err: domain.ErrContractNotFound}
	h.On("Deploy", ctx, "IfElse").Return(nil, deployErr)

	var out bytes.Buffer
	err := FooIfElse().Run(ctx, h, &out)
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
	assert.Empty(t, out.String())
}

func TestSetMapping(t *testing.T) {
	ctx := context.Background()
	h := &MockHarness{}
	instance := &models.Instance{Address: contractAddr, Confirmed: true}

	h.On("Deploy", ctx, "Mapping").Return(instance, nil)
	h.On("Deployer").Return(deployerAddr)
	get := h.On("Invoke", ctx, instance, "get", []any{deployerAddr}).Return(value(0), nil).Once()
	set := h.On("Invoke", ctx, instance, "set", []any{deployerAddr, big.NewInt(3)}).
		Return(&models.InvocationResult{Kind: models.KindTransaction}, nil).Once().NotBefore(get)
	h.On("Invoke", ctx, instance, "get", []any{deployerAddr}).Return(value(3), nil).Once().NotBefore(set)

	var out bytes.Buffer
	require.NoError(t, SetMapping().Run(ctx, h, &out))

	d := deployerAddr.Hex()
	assert.Equal(t, "Mapping Contract deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n"+
		"Calling get("+d+") before set("+d+", 3)...\n"+
		"get("+d+") output before set: 0\n"+
		"\n"+
		"Calling set("+d+", 3)...\n"+
		"\n"+
		"Calling get("+d+") after set("+d+", 3)...\n"+
		"get("+d+") output after set("+d+", 3): 3\n", out.String())
	h.AssertExpectations(t)
}
