package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/sling/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders configured networks, marking the selected one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in sling.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader([]any{"", "NETWORK", "RPC URL", "CHAIN ID", "STATUS"})
	for _, status := range result.Networks {
		marker := ""
		if status.Current {
			marker = green.Sprint("*")
		}

		chainID := "any"
		if status.Network.ChainID != 0 {
			chainID = fmt.Sprintf("%d", status.Network.ChainID)
		}

		t.AppendRow([]any{marker, status.Network.Name, status.Network.RPCURL, chainID, networkState(status)})
	}
	t.Render()
	return nil
}

func networkState(status usecase.NetworkStatus) string {
	switch {
	case status.Error != nil:
		return red.Sprintf("❌ %v", status.Error)
	case status.ReportedChainID == 0:
		if status.Network.BuiltIn {
			return faint.Sprint("built-in")
		}
		return ""
	case status.Network.ChainID != 0 && status.ReportedChainID != status.Network.ChainID:
		return yellow.Sprintf("⚠️  node reports %d", status.ReportedChainID)
	default:
		return green.Sprintf("✅ chain %d", status.ReportedChainID)
	}
}
