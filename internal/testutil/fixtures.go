// Package testutil holds contract fixtures and an in-process chain for tests.
package testutil

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// The fixtures below are minimal hand-assembled contracts with the same ABI
// and observable behaviour as the reference Solidity sources in
// examples/demo/contracts. They keep tests free of a solc dependency.
const (
	// foo(uint256 x) returns 0 for x < 10, 1 for x < 20 and 2 otherwise
	IfElseBytecode = "0x6028600c60003960286000f360043580600a11601557601411601c576002601f565b506000601f565b60015b60005260206000f3"
	IfElseABI      = `[{"type":"function","name":"foo","stateMutability":"pure","inputs":[{"name":"x","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}]`

	// get(address) / set(address,uint256) over a single address => uint256 map
	MappingBytecode = "0x601c600c600039601c6000f3366044146013576004355460005260206000f35b6024356004355500"
	MappingABI      = `[{"type":"function","name":"get","stateMutability":"view","inputs":[{"name":"_addr","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},{"type":"function","name":"set","stateMutability":"nonpayable","inputs":[{"name":"_addr","type":"address"},{"name":"_i","type":"uint256"}],"outputs":[]}]`

	// Every call reverts without data
	ReverterBytecode = "0x6005600c60003960056000f360006000fd"
	ReverterABI      = `[{"type":"function","name":"check","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},{"type":"function","name":"fail","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`
)

// Contract builds a models.Contract the way the repository would after reading a Hardhat artifact
func Contract(name, abiJSON, bytecode string) *models.Contract {
	source := "contracts/" + name + ".sol"
	return &models.Contract{
		Name:         name,
		Path:         source,
		ArtifactPath: "artifacts/" + source + "/" + name + ".json",
		Artifact: &models.Artifact{
			ContractName: name,
			SourceName:   source,
			ABI:          json.RawMessage(abiJSON),
			Bytecode:     models.BytecodeObject{Object: bytecode},
		},
	}
}

func IfElse() *models.Contract   { return Contract("IfElse", IfElseABI, IfElseBytecode) }
func Mapping() *models.Contract  { return Contract("Mapping", MappingABI, MappingBytecode) }
func Reverter() *models.Contract { return Contract("Reverter", ReverterABI, ReverterBytecode) }

// Contracts is an in-memory contract repository over the fixtures
type Contracts map[string]*models.Contract

// NewContracts returns a repository holding IfElse, Mapping and Reverter
func NewContracts() Contracts {
	return Contracts{
		"IfElse":   IfElse(),
		"Mapping":  Mapping(),
		"Reverter": Reverter(),
	}
}

// GetContract looks a fixture up by name or source:Name
func (c Contracts) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if contract, ok := c[key]; ok {
		return contract, nil
	}
	for _, contract := range c {
		if contract.Key() == key {
			return contract, nil
		}
	}
	return nil, domain.NotFoundErr{Kind: domain.ErrContractNotFound, Name: key}
}

// ListContracts returns the fixtures sorted by name
func (c Contracts) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	var out []*models.Contract
	for _, contract := range c {
		out = append(out, contract)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
