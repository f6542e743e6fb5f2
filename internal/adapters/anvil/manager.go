package anvil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/usecase"
)

const (
	DefaultAnvilName = "anvil"
	DefaultAnvilPort = "8545"

	stopTimeout = 5 * time.Second
)

// Manager starts and stops local anvil nodes, tracking them through PID files
type Manager struct {
	binary       string
	tmpDir       string
	client       *http.Client
	startTimeout time.Duration
}

// NewManager creates a new anvil manager
func NewManager() *Manager {
	return &Manager{
		binary:       "anvil",
		tmpDir:       "/tmp",
		client:       &http.Client{Timeout: 2 * time.Second},
		startTimeout: 10 * time.Second,
	}
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Jsonrpc string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
	ID      int       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// setFilePaths fills in defaults and per-instance PID and log files
func (m *Manager) setFilePaths(instance *domain.AnvilInstance) {
	if strings.TrimSpace(instance.Name) == "" {
		instance.Name = DefaultAnvilName
	}
	if strings.TrimSpace(instance.Port) == "" {
		instance.Port = DefaultAnvilPort
	}
	if instance.PidFile == "" {
		instance.PidFile = filepath.Join(m.tmpDir, fmt.Sprintf("sling-%s.pid", instance.Name))
	}
	if instance.LogFile == "" {
		instance.LogFile = filepath.Join(m.tmpDir, fmt.Sprintf("sling-%s.log", instance.Name))
	}
}

func buildAnvilArgs(instance *domain.AnvilInstance) []string {
	args := []string{"--port", instance.Port, "--host", "127.0.0.1"}
	if instance.ChainID != "" {
		args = append(args, "--chain-id", instance.ChainID)
	}
	return args
}

// Start launches anvil in the background and waits for its RPC to answer
func (m *Manager) Start(ctx context.Context, instance *domain.AnvilInstance) error {
	m.setFilePaths(instance)

	if pid, running := m.isRunning(instance); running {
		return fmt.Errorf("anvil '%s' is already running (PID %d, PID file %s)", instance.Name, pid, instance.PidFile)
	}

	logFile, err := os.Create(instance.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(m.binary, buildAnvilArgs(instance)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	// Keep the node alive after sling exits
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start anvil: %w", err)
	}

	if err := os.WriteFile(instance.PidFile, []byte(strconv.Itoa(cmd.Process.Pid)), 0644); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	_ = cmd.Process.Release()

	if err := m.waitHealthy(ctx, instance); err != nil {
		return fmt.Errorf("anvil '%s' did not become ready, see %s: %w", instance.Name, instance.LogFile, err)
	}
	return nil
}

func (m *Manager) waitHealthy(ctx context.Context, instance *domain.AnvilInstance) error {
	ctx, cancel := context.WithTimeout(ctx, m.startTimeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if _, err := m.chainID(ctx, instance); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Stop sends SIGTERM to a running instance and removes its PID file
func (m *Manager) Stop(ctx context.Context, instance *domain.AnvilInstance) error {
	m.setFilePaths(instance)

	pid, running := m.isRunning(instance)
	if !running {
		// Clean up a stale PID file
		_ = os.Remove(instance.PidFile)
		return fmt.Errorf("anvil '%s' is not running", instance.Name)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}

	deadline := time.Now().Add(stopTimeout)
	for processAlive(process) {
		if time.Now().After(deadline) {
			_ = process.Kill()
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if err := os.Remove(instance.PidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// GetStatus reports whether the instance is running and answering RPC
func (m *Manager) GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error) {
	m.setFilePaths(instance)

	status := &domain.AnvilStatus{
		RPCURL:  instance.RPCURL(),
		LogFile: instance.LogFile,
	}

	pid, running := m.isRunning(instance)
	if !running {
		return status, nil
	}
	status.Running = true
	status.PID = pid

	chainID, err := m.chainID(ctx, instance)
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.RPCHealthy = true
	status.ChainID = chainID
	return status, nil
}

func (m *Manager) isRunning(instance *domain.AnvilInstance) (int, bool) {
	data, err := os.ReadFile(instance.PidFile)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, false
	}
	return pid, processAlive(process)
}

func processAlive(process *os.Process) bool {
	return process.Signal(syscall.Signal(0)) == nil
}

// chainID asks the node for eth_chainId
func (m *Manager) chainID(ctx context.Context, instance *domain.AnvilInstance) (uint64, error) {
	resp, err := m.rpcCall(ctx, instance, "eth_chainId")
	if err != nil {
		return 0, err
	}
	hex, ok := resp.Result.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected eth_chainId result: %v", resp.Result)
	}
	return hexutil.DecodeUint64(hex)
}

func (m *Manager) rpcCall(ctx context.Context, instance *domain.AnvilInstance, method string, params ...any) (*rpcResponse, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{Jsonrpc: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, instance.RPCURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RPC not responding: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", httpResp.StatusCode)
	}

	var resp rpcResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("RPC error: %s", resp.Error.Message)
	}
	return &resp, nil
}

// Ensure the adapter implements the interface
var _ usecase.AnvilManager = (*Manager)(nil)
