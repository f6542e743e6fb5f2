package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// CallContractParams contains parameters for invoking a method on a deployed contract
type CallContractParams struct {
	Contract string
	Address  string
	Method   string
	Args     []string
}

// CallContractResult contains the invocation result and its display form
type CallContractResult struct {
	Instance *models.Instance
	Result   *models.InvocationResult
	// Outputs are the returned values rendered for display
	Outputs []string
}

// CallContract invokes one method on an already deployed contract
type CallContract struct {
	harness *Harness
	codec   ArgCodec
}

// NewCallContract creates a new CallContract use case
func NewCallContract(harness *Harness, codec ArgCodec) *CallContract {
	return &CallContract{
		harness: harness,
		codec:   codec,
	}
}

// Run binds the address to the contract's ABI, parses the arguments and invokes the method
func (uc *CallContract) Run(ctx context.Context, params CallContractParams) (*CallContractResult, error) {
	fail := func(err error) error {
		return &domain.InvocationError{
			Contract: params.Contract,
			Method:   params.Method,
			Address:  params.Address,
			Err:      err,
		}
	}

	if !common.IsHexAddress(params.Address) {
		return nil, fail(fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Address))
	}

	instance, err := uc.harness.At(ctx, params.Contract, common.HexToAddress(params.Address))
	if err != nil {
		return nil, fail(err)
	}

	method, ok := instance.ABI.Methods[params.Method]
	if !ok {
		return nil, fail(domain.NotFoundErr{
			Kind:        domain.ErrMethodNotFound,
			Name:        params.Method,
			Suggestions: domain.Suggest(params.Method, lo.Keys(instance.ABI.Methods)),
		})
	}

	args, err := uc.codec.ParseArgs(method.Inputs, params.Args)
	if err != nil {
		return nil, fail(err)
	}

	result, err := uc.harness.Invoke(ctx, instance, params.Method, args...)
	if err != nil {
		return nil, err
	}

	return &CallContractResult{
		Instance: instance,
		Result:   result,
		Outputs:  lo.Map(result.Values, func(v any, _ int) string { return uc.codec.FormatValue(v) }),
	}, nil
}
