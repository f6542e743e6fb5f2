package render

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/domain/models"
	"github.com/trebuchet-org/sling/internal/scripts"
	"github.com/trebuchet-org/sling/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Connection refused", FormatError("failed to connect: dial tcp: connection refused"))
	assert.Equal(t, "❌ Boom", FormatError("boom"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("script foo-ifelse failed: boom"))
	assert.Equal(t, "Error: script foo-ifelse failed: boom\n", buf.String())
}

func TestScriptRenderer(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewScriptRenderer(&buf).RenderList(scripts.DefaultRegistry().List())
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "SCRIPT")
		assert.Contains(t, out, "foo-ifelse")
		assert.Contains(t, out, "set-mapping")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("foo-ifelse")), bytes.Index(buf.Bytes(), []byte("set-mapping")))
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewScriptRenderer(&buf).RenderList(nil))
		assert.Equal(t, "No scripts registered\n", buf.String())
	})

	t.Run("result", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewScriptRenderer(&buf).RenderResult(&usecase.RunScriptResult{
			Script:   scripts.FooIfElse(),
			Network:  "localhost",
			ChainID:  31337,
			Deployer: common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
			Duration: 1234567 * time.Microsecond,
		})
		require.NoError(t, err)
		assert.Equal(t,
			"✅ Script foo-ifelse completed on localhost (chain 31337) in 1.235s\n"+
				"Deployer: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n",
			buf.String())
	})
}

func TestContractRenderer(t *testing.T) {
	instance := &models.Instance{
		Contract:    &models.Contract{Name: "IfElse"},
		Address:     common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		BlockNumber: 1,
		GasUsed:     90000,
	}

	t.Run("deployment", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewContractRenderer(&buf).RenderDeployment(&usecase.DeployContractResult{Instance: instance})
		require.NoError(t, err)
		assert.Equal(t,
			"IfElse Contract deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n"+
				"Block: 1  Gas used: 90000\n",
			buf.String())
	})

	t.Run("call", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewContractRenderer(&buf).RenderCall(&usecase.CallContractResult{
			Instance: instance,
			Result: &models.InvocationResult{
				Method: "foo",
				Kind:   models.KindCall,
				Values: []any{big.NewInt(1)},
			},
			Outputs: []string{"1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "foo output: 1\n", buf.String())
	})

	t.Run("transaction", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewContractRenderer(&buf).RenderCall(&usecase.CallContractResult{
			Instance: instance,
			Result: &models.InvocationResult{
				Method: "set",
				Kind:   models.KindTransaction,
				Receipt: &models.Receipt{
					TxHash:      common.HexToHash("0x01"),
					BlockNumber: 2,
					GasUsed:     43000,
					Status:      1,
				},
			},
		})
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "✅ set executed")
		assert.Contains(t, out, "Block: 2  Gas used: 43000")
	})
}

func TestContractRenderer_List(t *testing.T) {
	t.Run("contracts", func(t *testing.T) {
		var buf bytes.Buffer
		iface := &models.Contract{Name: "IToken", Path: "contracts/IToken.sol", Artifact: &models.Artifact{}}
		err := NewContractRenderer(&buf).RenderList(&usecase.ListContractsResult{
			Contracts: []*models.Contract{
				{Name: "IfElse", Path: "contracts/IfElse.sol", Artifact: &models.Artifact{Bytecode: models.BytecodeObject{Object: "0x6000"}}},
				iface,
			},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "CONTRACT")
		assert.Contains(t, out, "contracts/IfElse.sol")
		assert.Contains(t, out, "yes")
		assert.Contains(t, out, "no (abstract or interface)")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewContractRenderer(&buf).RenderList(&usecase.ListContractsResult{}))
		assert.Equal(t, "No contracts found\n", buf.String())
	})
}

func TestNetworksRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{}))
		assert.Equal(t, "No networks configured in sling.toml [networks]\n", buf.String())
	})

	t.Run("statuses", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{
			Networks: []usecase.NetworkStatus{
				{Network: &config.Network{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337, BuiltIn: true}, Current: true, ReportedChainID: 31337},
				{Network: &config.Network{Name: "sepolia", RPCURL: "https://rpc.example", ChainID: 11155111}, ReportedChainID: 1},
				{Network: &config.Network{Name: "broken"}, Error: domain.ErrNetworkNotFound},
			},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "✅ chain 31337")
		assert.Contains(t, out, "node reports 1")
		assert.Contains(t, out, "❌ network not found")
		assert.Contains(t, out, "*")
	})
}

func TestNodeRenderer(t *testing.T) {
	instance := &domain.AnvilInstance{
		Name:    "anvil",
		Port:    "8545",
		PidFile: "/tmp/sling-anvil.pid",
		LogFile: "/tmp/sling-anvil.log",
	}

	tests := []struct {
		name     string
		result   *usecase.ManageNodeResult
		contains []string
	}{
		{
			name: "start",
			result: &usecase.ManageNodeResult{
				Operation: "start",
				Instance:  instance,
				Status:    &domain.AnvilStatus{Running: true, PID: 42},
				Message:   "Anvil 'anvil' started with PID 42",
			},
			contains: []string{"✅ Anvil 'anvil' started with PID 42", "Logs: /tmp/sling-anvil.log", "RPC URL: http://127.0.0.1:8545"},
		},
		{
			name:     "stop",
			result:   &usecase.ManageNodeResult{Operation: "stop", Instance: instance, Message: "Anvil 'anvil' stopped"},
			contains: []string{"✅ Anvil 'anvil' stopped"},
		},
		{
			name: "status running",
			result: &usecase.ManageNodeResult{
				Operation: "status",
				Instance:  instance,
				Status:    &domain.AnvilStatus{Running: true, PID: 42, RPCURL: instance.RPCURL(), LogFile: instance.LogFile, RPCHealthy: true, ChainID: 31337},
			},
			contains: []string{"Anvil Status ('anvil')", "Running (PID 42)", "Responding (chain 31337)"},
		},
		{
			name: "status unhealthy",
			result: &usecase.ManageNodeResult{
				Operation: "status",
				Instance:  instance,
				Status:    &domain.AnvilStatus{Running: true, PID: 42, Error: "connection refused"},
			},
			contains: []string{"Not responding", "Error: connection refused"},
		},
		{
			name: "status stopped",
			result: &usecase.ManageNodeResult{
				Operation: "status",
				Instance:  instance,
				Status:    &domain.AnvilStatus{},
			},
			contains: []string{"Not running", "PID file: /tmp/sling-anvil.pid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewNodeRenderer(&buf).Render(tt.result))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}

	t.Run("unknown operation", func(t *testing.T) {
		err := NewNodeRenderer(&bytes.Buffer{}).Render(&usecase.ManageNodeResult{Operation: "restart"})
		assert.EqualError(t, err, "unknown operation: restart")
	})
}
