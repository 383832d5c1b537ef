package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// verifyCmd validates the local kitchen without touching the network: layout,
// workspace config, node files and chefignore are all checked exactly as a
// cook would read them.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate the local kitchen without connecting to a host",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := newWorkspace(".")
		if err := ws.validate(); err != nil {
			return err
		}

		opts := newRunOptionsFromFlags()
		wc, meta, err := loadWorkspaceConfig(ws.configPath())
		if err != nil {
			return err
		}
		applyWorkspaceConfig(opts, cmd.Flags(), wc, meta)
		if err := opts.validate(); err != nil {
			return err
		}
		if err := verifyNodeFiles(ws); err != nil {
			return err
		}
		if _, err := renderSoloRb(ws, opts, opts.nodeName); err != nil {
			return err
		}

		excludes := buildExcludeSet(chefignoreFile{path: ws.chefignorePath()})
		summary := fmt.Sprintf("Kitchen OK (%d sync excludes", len(excludes))
		switch {
		case isFile(ws.berksfilePath()):
			summary += ", Berksfile managed"
		case isFile(ws.cheffilePath()):
			summary += ", Cheffile managed"
		}
		_, _ = fmt.Fprintln(os.Stdout, summary+")")
		return nil
	},
}

// verifyNodeFiles checks that every node definition parses as JSON before a
// cook ships one of them to a host.
func verifyNodeFiles(ws *workspace) error {
	entries, err := os.ReadDir(ws.nodesDir())
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(ws.nodesDir(), e.Name())
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(body) {
			return fmt.Errorf("node file %s is not valid JSON", path)
		}
	}
	return nil
}
