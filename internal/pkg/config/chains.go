package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ChainIDEthereum int64 = 1
	ChainIDBSC      int64 = 56
	ChainIDPolygon  int64 = 137
)

// ChainEndpoint is one entry of the chain registry.
type ChainEndpoint struct {
	ID      int64         `yaml:"id"`
	Name    string        `yaml:"name"`
	RPCURL  string        `yaml:"rpc_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type chainRegistryFile struct {
	Chains []ChainEndpoint `yaml:"chains"`
}

// Endpoints merges the built-in env endpoints with the optional registry file.
// File entries override env entries with the same id. The result is sorted by id.
func (c ChainConfig) Endpoints() ([]ChainEndpoint, error) {
	byID := map[int64]ChainEndpoint{}
	builtin := []ChainEndpoint{
		{ID: ChainIDEthereum, Name: "ethereum", RPCURL: c.EthereumRPCURL},
		{ID: ChainIDBSC, Name: "bsc", RPCURL: c.BSCRPCURL},
		{ID: ChainIDPolygon, Name: "polygon", RPCURL: c.PolygonRPCURL},
	}
	for _, ep := range builtin {
		if ep.RPCURL != "" {
			byID[ep.ID] = ep
		}
	}

	if c.RegistryFile != "" {
		fromFile, err := LoadChainRegistryFile(c.RegistryFile)
		if err != nil {
			return nil, err
		}
		for _, ep := range fromFile {
			byID[ep.ID] = ep
		}
	}

	out := make([]ChainEndpoint, 0, len(byID))
	for _, ep := range byID {
		if ep.Timeout <= 0 {
			ep.Timeout = c.CallTimeout
		}
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func LoadChainRegistryFile(path string) ([]ChainEndpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain registry file: %w", err)
	}
	return ParseChainRegistry(raw)
}

func ParseChainRegistry(raw []byte) ([]ChainEndpoint, error) {
	var file chainRegistryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse chain registry: %w", err)
	}
	seen := map[int64]struct{}{}
	for i, ep := range file.Chains {
		if ep.ID <= 0 {
			return nil, fmt.Errorf("chain registry entry %d: id must be positive", i)
		}
		if ep.RPCURL == "" {
			return nil, fmt.Errorf("chain registry entry %d (id %d): rpc_url is required", i, ep.ID)
		}
		if _, dup := seen[ep.ID]; dup {
			return nil, fmt.Errorf("chain registry: duplicate id %d", ep.ID)
		}
		seen[ep.ID] = struct{}{}
	}
	return file.Chains, nil
}
