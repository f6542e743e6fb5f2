package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract represents a compiled contract discovered in the artifacts directory
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"` // source file, e.g. contracts/IfElse.sol
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// Key returns the fully qualified source:Name identifier
func (c *Contract) Key() string {
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// BytecodeObject holds bytecode in either the Foundry object form or the
// Hardhat plain string form
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap,omitempty"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// UnmarshalJSON accepts both `"0x6080..."` and `{"object": "0x6080..."}`
func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b.Object = s
		return nil
	}
	type plain BytecodeObject
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = BytecodeObject(p)
	return nil
}

// Empty reports whether there is no code to deploy
func (b BytecodeObject) Empty() bool {
	return b.Object == "" || b.Object == "0x"
}

// Artifact is a compilation artifact as written by Hardhat or Foundry
type Artifact struct {
	// Hardhat only
	ContractName string `json:"contractName,omitempty"`
	SourceName   string `json:"sourceName,omitempty"`

	ABI              json.RawMessage  `json:"abi"`
	Bytecode         BytecodeObject   `json:"bytecode"`
	DeployedBytecode BytecodeObject   `json:"deployedBytecode"`
	Metadata         ArtifactMetadata `json:"metadata"`
}

// ArtifactMetadata is the subset of Foundry metadata used to name a contract
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// UnmarshalJSON tolerates older Foundry artifacts that store metadata as a string
func (m *ArtifactMetadata) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		data = []byte(raw)
	}
	type plain ArtifactMetadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = ArtifactMetadata(p)
	return nil
}

// Identity returns the source path and contract name the artifact was compiled from
func (a *Artifact) Identity() (source, name string) {
	if a.ContractName != "" && a.SourceName != "" {
		return a.SourceName, a.ContractName
	}
	for s, n := range a.Metadata.Settings.CompilationTarget {
		return s, n
	}
	return "", ""
}

// ParsedABI decodes the JSON ABI
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	if len(a.ABI) == 0 {
		return abi.ABI{}, fmt.Errorf("artifact has no ABI")
	}
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return parsed, nil
}

// CreationCode decodes the creation bytecode
func (a *Artifact) CreationCode() ([]byte, error) {
	obj := a.Bytecode.Object
	if strings.Contains(obj, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	if !strings.HasPrefix(obj, "0x") {
		obj = "0x" + obj
	}
	code, err := hexutil.Decode(obj)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return code, nil
}
