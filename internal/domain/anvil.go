package domain

// AnvilInstance describes a local anvil node managed by `sling node`
type AnvilInstance struct {
	Name    string `json:"name"`
	Port    string `json:"port"`
	ChainID string `json:"chainId,omitempty"`
	PidFile string `json:"pidFile"`
	LogFile string `json:"logFile"`
}

// RPCURL returns the local HTTP endpoint of the instance
func (a *AnvilInstance) RPCURL() string {
	return "http://127.0.0.1:" + a.Port
}

// AnvilStatus represents the status of an anvil instance
type AnvilStatus struct {
	Running    bool   `json:"running"`
	PID        int    `json:"pid,omitempty"`
	RPCURL     string `json:"rpcUrl,omitempty"`
	LogFile    string `json:"logFile"`
	RPCHealthy bool   `json:"rpcHealthy"`
	ChainID    uint64 `json:"chainId,omitempty"`
	Error      string `json:"error,omitempty"`
}
