package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrAmbiguousContract is returned when a bare name matches several artifacts
	ErrAmbiguousContract = errors.New("ambiguous contract name")

	// ErrNoBytecode is returned for abstract contracts and interfaces
	ErrNoBytecode = errors.New("artifact has no creation bytecode")

	// ErrScriptNotFound is returned when a script name is not registered
	ErrScriptNotFound = errors.New("script not found")

	// ErrMethodNotFound is returned when the ABI has no method with the given name
	ErrMethodNotFound = errors.New("method not found")

	// ErrNotDeployed is returned when a handle is used before its deployment is confirmed
	ErrNotDeployed = errors.New("contract instance is not deployed")

	// ErrReverted is returned when a call or transaction reverts
	ErrReverted = errors.New("execution reverted")

	// ErrNetworkNotFound is returned when a network name can't be resolved
	ErrNetworkNotFound = errors.New("network not found")

	// ErrChainIDMismatch is returned when the node reports an unexpected chain ID
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// DeploymentStage names the step at which a deployment failed
type DeploymentStage string

const (
	StageLookup  DeploymentStage = "lookup"
	StageEncode  DeploymentStage = "encode"
	StageSubmit  DeploymentStage = "submit"
	StageConfirm DeploymentStage = "confirm"
)

// DeploymentError is returned by every failed deployment
type DeploymentError struct {
	Contract string
	Stage    DeploymentStage
	TxHash   string
	Err      error
}

func (e *DeploymentError) Error() string {
	msg := fmt.Sprintf("failed to deploy %s (%s)", e.Contract, e.Stage)
	if e.TxHash != "" {
		msg += fmt.Sprintf(" tx %s", e.TxHash)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

// InvocationError is returned by every failed method invocation
type InvocationError struct {
	Contract string
	Method   string
	Address  string
	// Reason is the decoded revert reason, if the node returned one
	Reason string
	Err    error
}

func (e *InvocationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to invoke %s.%s", e.Contract, e.Method)
	if e.Address != "" {
		fmt.Fprintf(&b, " at %s", e.Address)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": reverted with %q", e.Reason)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NotFoundErr carries the name that failed to resolve and close matches
type NotFoundErr struct {
	Kind        error
	Name        string
	Suggestions []string
}

func (e NotFoundErr) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e NotFoundErr) Unwrap() error {
	return e.Kind
}

type AmbiguousContractErr struct {
	Name    string
	Matches []string // source:Name keys
}

func (e AmbiguousContractErr) Error() string {
	sorted := make([]string, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Strings(sorted)

	var suggestions []string
	for _, m := range sorted {
		suggestions = append(suggestions, "  - "+m)
	}

	return fmt.Sprintf("multiple contracts named %s - use source:Name to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}

func (e AmbiguousContractErr) Unwrap() error {
	return ErrAmbiguousContract
}
