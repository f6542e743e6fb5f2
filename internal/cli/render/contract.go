package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// ContractRenderer renders deploy and call results
type ContractRenderer struct {
	out io.Writer
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer) *ContractRenderer {
	return &ContractRenderer{out: out}
}

// RenderDeployment renders a confirmed deployment
func (r *ContractRenderer) RenderDeployment(result *usecase.DeployContractResult) error {
	instance := result.Instance
	fmt.Fprintf(r.out, "%s Contract deployed to: %s\n", instance.Name(), instance.Address.Hex())
	if instance.DeployTx != nil {
		fmt.Fprintln(r.out, faint.Sprintf("Transaction: %s", instance.DeployTx.Hash().Hex()))
	}
	fmt.Fprintln(r.out, faint.Sprintf("Block: %d  Gas used: %d", instance.BlockNumber, instance.GasUsed))
	return nil
}

// RenderCall renders the outcome of a method invocation
func (r *ContractRenderer) RenderCall(result *usecase.CallContractResult) error {
	res := result.Result
	switch res.Kind {
	case models.KindCall:
		if len(result.Outputs) == 0 {
			fmt.Fprintf(r.out, "%s() returned no values\n", res.Method)
			return nil
		}
		fmt.Fprintf(r.out, "%s output: %s\n", res.Method, strings.Join(result.Outputs, ", "))
	case models.KindTransaction:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s executed", res.Method)))
		if res.Receipt != nil {
			fmt.Fprintln(r.out, faint.Sprintf("Transaction: %s", res.Receipt.TxHash.Hex()))
			fmt.Fprintln(r.out, faint.Sprintf("Block: %d  Gas used: %d", res.Receipt.BlockNumber, res.Receipt.GasUsed))
		}
	}
	return nil
}

// RenderList renders the indexed contracts as a table
func (r *ContractRenderer) RenderList(result *usecase.ListContractsResult) error {
	if len(result.Contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader([]any{"CONTRACT", "SOURCE", "DEPLOYABLE"})
	for _, c := range result.Contracts {
		deployable := green.Sprint("yes")
		if c.Artifact == nil || c.Artifact.Bytecode.Empty() {
			deployable = faint.Sprint("no (abstract or interface)")
		}
		t.AppendRow([]any{cyan.Sprint(c.Name), c.Path, deployable})
	}
	t.Render()
	return nil
}
