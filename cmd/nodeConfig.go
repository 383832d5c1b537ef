package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// nodeConfig identifies the node-context file uploaded to the target as
// dna.json.
type nodeConfig struct {
	path      string
	generated bool
}

// resolveNodeName picks the chef node name: the explicit flag when given,
// otherwise the target hostname.
func resolveNodeName(opts *runOptions, tgt *target) string {
	if opts.nodeName != "" {
		return opts.nodeName
	}
	return tgt.hostname()
}

// resolveNodeConfig picks the node-context source. An explicit attributes
// file always wins and must exist; otherwise nodes/<name>.json is used,
// scaffolded with an empty run list on first cook so it can be committed and
// grown.
func resolveNodeConfig(ws *workspace, opts *runOptions, nodeName string) (*nodeConfig, error) {
	if opts.jsonAttributes != "" {
		if !isFile(opts.jsonAttributes) {
			return nil, fmt.Errorf("node attributes file %s not found", opts.jsonAttributes)
		}
		return &nodeConfig{path: opts.jsonAttributes}, nil
	}
	path := ws.nodeFile(nodeName)
	if isFile(path) {
		return &nodeConfig{path: path}, nil
	}
	if err := writeNodeSkeleton(path); err != nil {
		return nil, err
	}
	return &nodeConfig{path: path, generated: true}, nil
}

func writeNodeSkeleton(path string) error {
	body, err := json.MarshalIndent(map[string][]string{"run_list": {}}, "", "  ")
	if err != nil {
		return fmt.Errorf("create node config %s: %w", path, err)
	}
	body = append(body, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create node config %s: %w", path, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("create node config %s: %w", path, err)
	}
	return nil
}
