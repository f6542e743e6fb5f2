package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// Progress stages reported by the harness
const (
	StageLoading    = "loading"
	StageDeploying  = "deploying"
	StageConfirming = "confirming"
	StageDeployed   = "deployed"
	StageCalling    = "calling"
	StageSending    = "sending"
	StageMining     = "mining"
	StageDone       = "done"
)

// Harness deploys contracts and invokes their methods, one step at a time.
// It is not safe for concurrent use: every operation runs to completion
// before the next one starts.
type Harness struct {
	contracts ContractRepository
	chain     ChainClient
	sink      ProgressSink
	log       *slog.Logger
	chainID   uint64
}

// NewHarness creates a new Harness
func NewHarness(contracts ContractRepository, chain ChainClient, sink ProgressSink, log *slog.Logger) *Harness {
	return &Harness{
		contracts: contracts,
		chain:     chain,
		sink:      sink,
		log:       log,
	}
}

// Deployer returns the address deployments and transactions are sent from
func (h *Harness) Deployer() common.Address {
	return h.chain.Sender()
}

// ChainID returns the chain ID of the connected node, 0 before the first connection
func (h *Harness) ChainID() uint64 {
	return h.chainID
}

// Connect dials the network. It is called implicitly by Deploy and At.
func (h *Harness) Connect(ctx context.Context) error {
	if h.chainID != 0 {
		return nil
	}
	chainID, err := h.chain.Connect(ctx)
	if err != nil {
		return err
	}
	h.chainID = chainID
	h.log.Debug("connected to network", "chain_id", chainID, "sender", h.chain.Sender().Hex())
	return nil
}

// Deploy looks up the named artifact, submits its deployment and blocks until
// the network confirms it. The returned instance is ready for Invoke.
func (h *Harness) Deploy(ctx context.Context, contractName string, args ...any) (*models.Instance, error) {
	fail := func(stage domain.DeploymentStage, txHash string, err error) error {
		h.log.Debug("deployment failed", "contract", contractName, "stage", stage, "error", err)
		h.sink.OnProgress(ctx, ProgressEvent{Stage: StageDone})
		h.sink.Error(fmt.Sprintf("%s deployment failed (%s)", contractName, stage))
		return &domain.DeploymentError{Contract: contractName, Stage: stage, TxHash: txHash, Err: err}
	}

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoading,
		Message: fmt.Sprintf("Loading artifact %s", contractName),
		Spinner: true,
	})

	contract, err := h.contracts.GetContract(ctx, contractName)
	if err != nil {
		return nil, fail(domain.StageLookup, "", err)
	}
	if contract.Artifact == nil || contract.Artifact.Bytecode.Empty() {
		return nil, fail(domain.StageLookup, "", domain.ErrNoBytecode)
	}

	parsed, err := contract.Artifact.ParsedABI()
	if err != nil {
		return nil, fail(domain.StageEncode, "", err)
	}
	if _, err := parsed.Pack("", args...); err != nil {
		return nil, fail(domain.StageEncode, "", fmt.Errorf("invalid constructor arguments: %w", err))
	}

	if err := h.Connect(ctx); err != nil {
		return nil, fail(domain.StageSubmit, "", err)
	}

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s", contract.Name),
		Spinner: true,
	})

	instance, err := h.chain.SendDeployment(ctx, contract, parsed, args...)
	if err != nil {
		if reason, ok := h.chain.RevertReason(err); ok {
			err = fmt.Errorf("%w: %s", err, reason)
		}
		return nil, fail(domain.StageSubmit, "", err)
	}
	txHash := instance.DeployTx.Hash().Hex()
	h.log.Debug("deployment submitted", "contract", contract.Name, "tx", txHash)

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %s deployment (tx %s)", contract.Name, shortHash(txHash)),
		Spinner: true,
	})

	if err := h.chain.WaitDeployed(ctx, instance); err != nil {
		return nil, fail(domain.StageConfirm, txHash, err)
	}

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:    StageDeployed,
		Message:  fmt.Sprintf("%s deployed at %s", contract.Name, instance.Address.Hex()),
		Metadata: instance,
	})
	h.log.Info("contract deployed",
		"contract", contract.Name,
		"address", instance.Address.Hex(),
		"block", instance.BlockNumber,
		"gas_used", instance.GasUsed,
	)

	return instance, nil
}

// At binds an existing on-chain address to a contract's interface
func (h *Harness) At(ctx context.Context, contractName string, address common.Address) (*models.Instance, error) {
	contract, err := h.contracts.GetContract(ctx, contractName)
	if err != nil {
		return nil, err
	}
	parsed, err := contract.Artifact.ParsedABI()
	if err != nil {
		return nil, err
	}

	if err := h.Connect(ctx); err != nil {
		return nil, err
	}

	code, err := h.chain.CodeAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("no code at %s: %w", address.Hex(), domain.ErrNotDeployed)
	}

	return &models.Instance{
		Contract:  contract,
		ABI:       parsed,
		Address:   address,
		Confirmed: true,
	}, nil
}

// Invoke calls a method on a deployed instance. view and pure methods are
// executed as calls; anything else is sent as a transaction and waited on.
func (h *Harness) Invoke(ctx context.Context, instance *models.Instance, methodName string, args ...any) (*models.InvocationResult, error) {
	fail := func(err error) error {
		invErr := &domain.InvocationError{Method: methodName, Err: err}
		if instance != nil {
			invErr.Contract = instance.Name()
			invErr.Address = instance.Address.Hex()
		}
		if reason, ok := h.chain.RevertReason(err); ok {
			invErr.Reason = reason
		}
		h.log.Debug("invocation failed", "contract", invErr.Contract, "method", methodName, "error", err)
		h.sink.OnProgress(ctx, ProgressEvent{Stage: StageDone})
		h.sink.Error(fmt.Sprintf("%s failed", formatCall(methodName, args)))
		return invErr
	}

	if instance == nil || !instance.Confirmed {
		return nil, fail(domain.ErrNotDeployed)
	}

	method, ok := instance.ABI.Methods[methodName]
	if !ok {
		return nil, fail(domain.ErrMethodNotFound)
	}
	if len(args) != len(method.Inputs) {
		return nil, fail(fmt.Errorf("%s expects %d arguments, got %d", method.Sig, len(method.Inputs), len(args)))
	}

	call := formatCall(methodName, args)
	result := &models.InvocationResult{Method: methodName, Args: args}

	if method.IsConstant() {
		h.sink.OnProgress(ctx, ProgressEvent{
			Stage:   StageCalling,
			Message: fmt.Sprintf("Calling %s", call),
			Spinner: true,
		})

		values, err := h.chain.Call(ctx, instance, methodName, args...)
		if err != nil {
			return nil, fail(err)
		}
		result.Kind = models.KindCall
		result.Values = values

		h.sink.OnProgress(ctx, ProgressEvent{Stage: StageDone, Metadata: result})
		h.log.Debug("call returned", "method", call, "values", values)
		return result, nil
	}

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageSending,
		Message: fmt.Sprintf("Sending %s", call),
		Spinner: true,
	})

	tx, err := h.chain.SendTransaction(ctx, instance, methodName, args...)
	if err != nil {
		return nil, fail(err)
	}

	h.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageMining,
		Message: fmt.Sprintf("Waiting for %s (tx %s)", call, shortHash(tx.Hash().Hex())),
		Spinner: true,
	})

	receipt, err := h.chain.WaitMined(ctx, tx)
	if err != nil {
		return nil, fail(err)
	}
	if !receipt.Succeeded() {
		return nil, fail(fmt.Errorf("%w in tx %s", domain.ErrReverted, receipt.TxHash.Hex()))
	}
	result.Kind = models.KindTransaction
	result.Receipt = receipt

	h.sink.OnProgress(ctx, ProgressEvent{Stage: StageDone, Metadata: result})
	h.log.Debug("transaction mined", "method", call, "tx", receipt.TxHash.Hex(), "block", receipt.BlockNumber)
	return result, nil
}

// formatCall renders name(arg1, arg2) for progress messages
func formatCall(method string, args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if addr, ok := a.(common.Address); ok {
			parts[i] = addr.Hex()
			continue
		}
		parts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s(%s)", method, strings.Join(parts, ", "))
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:10] + "…" + h[len(h)-4:]
}
