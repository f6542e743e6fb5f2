package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/trebuchet-org/sling/internal/scripts"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// ScriptRenderer renders script listings and run summaries
type ScriptRenderer struct {
	out io.Writer
}

// NewScriptRenderer creates a new script renderer
func NewScriptRenderer(out io.Writer) *ScriptRenderer {
	return &ScriptRenderer{out: out}
}

// RenderList renders the built-in scripts as a table
func (r *ScriptRenderer) RenderList(list []*scripts.Script) error {
	if len(list) == 0 {
		fmt.Fprintln(r.out, "No scripts registered")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader([]any{"SCRIPT", "CONTRACTS", "DESCRIPTION"})
	for _, s := range list {
		t.AppendRow([]any{cyan.Sprint(s.Name), strings.Join(s.Contracts, ", "), s.Description})
	}
	t.Render()
	return nil
}

// RenderResult renders the summary line printed after a successful run
func (r *ScriptRenderer) RenderResult(result *usecase.RunScriptResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf(
		"Script %s completed on %s (chain %d) in %s",
		result.Script.Name,
		result.Network,
		result.ChainID,
		result.Duration.Round(time.Millisecond),
	)))
	fmt.Fprintln(r.out, faint.Sprintf("Deployer: %s", result.Deployer.Hex()))
	return nil
}
