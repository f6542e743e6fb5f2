package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/sling/internal/usecase"
)

// NodeRenderer renders local node operation results
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

// Render renders the node operation result
func (r *NodeRenderer) Render(result *usecase.ManageNodeResult) error {
	switch result.Operation {
	case "start":
		return r.renderStart(result)
	case "stop":
		fmt.Fprintln(r.out, FormatSuccess(result.Message))
		return nil
	case "status":
		return r.renderStatus(result)
	default:
		return fmt.Errorf("unknown operation: %s", result.Operation)
	}
}

func (r *NodeRenderer) renderStart(result *usecase.ManageNodeResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	yellow.Fprintf(r.out, "📋 Logs: %s\n", result.Instance.LogFile)
	cyan.Fprintf(r.out, "🌐 RPC URL: %s\n", result.Instance.RPCURL())
	return nil
}

func (r *NodeRenderer) renderStatus(result *usecase.ManageNodeResult) error {
	bold.Fprintf(r.out, "📊 %s Status ('%s'):\n", title("anvil"), result.Instance.Name)

	status := result.Status
	if !status.Running {
		red.Fprintln(r.out, "Status: 🔴 Not running")
		faint.Fprintf(r.out, "PID file: %s\n", result.Instance.PidFile)
		faint.Fprintf(r.out, "Log file: %s\n", result.Instance.LogFile)
		return nil
	}

	green.Fprintf(r.out, "Status: 🟢 Running (PID %d)\n", status.PID)
	cyan.Fprintf(r.out, "RPC URL: %s\n", status.RPCURL)
	yellow.Fprintf(r.out, "Log file: %s\n", status.LogFile)
	if status.RPCHealthy {
		green.Fprintf(r.out, "RPC Health: ✅ Responding (chain %d)\n", status.ChainID)
	} else {
		red.Fprintln(r.out, "RPC Health: ❌ Not responding")
		if status.Error != "" {
			faint.Fprintf(r.out, "Error: %s\n", status.Error)
		}
	}
	return nil
}
