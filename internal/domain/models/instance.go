package models

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Instance is a handle binding a deployed address to its contract interface.
// It lives for the duration of a single run.
type Instance struct {
	Contract *Contract
	ABI      abi.ABI
	Address  common.Address

	// Deployment details, zero for instances attached to an existing address
	DeployTx    *types.Transaction
	BlockNumber uint64
	GasUsed     uint64

	// Confirmed is set once the deployment receipt is seen and code exists at Address
	Confirmed bool
}

// Name returns the contract name the instance was created from
func (i *Instance) Name() string {
	if i.Contract == nil {
		return ""
	}
	return i.Contract.Name
}

// InvocationKind distinguishes read-only calls from transactions
type InvocationKind string

const (
	KindCall        InvocationKind = "call"
	KindTransaction InvocationKind = "transaction"
)

// Receipt is the part of a transaction receipt the harness reports
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64
}

// Succeeded reports whether the transaction executed without reverting
func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// InvocationResult is the outcome of a single method invocation
type InvocationResult struct {
	Method string
	Kind   InvocationKind
	Args   []any

	// Values holds decoded return values for calls
	Values []any

	// Receipt is set for transactions
	Receipt *Receipt
}

// Value returns the first return value, or nil
func (r *InvocationResult) Value() any {
	if len(r.Values) == 0 {
		return nil
	}
	return r.Values[0]
}
