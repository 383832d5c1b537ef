package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// workspaceConfig carries per-kitchen defaults from .solorun.toml. Explicit
// CLI flags always win; file values fill in whatever the operator left unset.
type workspaceConfig struct {
	ProvisionPath  string `toml:"provision_path"`
	NodeName       string `toml:"node_name"`
	SecretFile     string `toml:"secret_file"`
	WindowsHost    bool   `toml:"windows_host"`
	MinChefVersion string `toml:"min_chef_version"`
	RsyncBin       string `toml:"rsync_bin"`
	BerksBin       string `toml:"berks_bin"`
	LibrarianBin   string `toml:"librarian_bin"`
}

// loadWorkspaceConfig reads .solorun.toml from the workspace root. A missing
// file is not an error; a malformed one is.
func loadWorkspaceConfig(path string) (*workspaceConfig, toml.MetaData, error) {
	var wc workspaceConfig
	meta, err := toml.DecodeFile(path, &wc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, toml.MetaData{}, nil
		}
		return nil, toml.MetaData{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return &wc, meta, nil
}

// applyWorkspaceConfig folds file defaults into the run options for every
// field whose flag the operator did not set on the command line. Bools are
// gated on meta.IsDefined so `windows_host = false` in the file is
// distinguishable from the key being absent.
func applyWorkspaceConfig(opts *runOptions, flags *pflag.FlagSet, wc *workspaceConfig, meta toml.MetaData) {
	if wc == nil {
		return
	}
	if !flags.Changed("provision-path") && wc.ProvisionPath != "" {
		opts.provisionPath = wc.ProvisionPath
	}
	if !flags.Changed("node-name") && wc.NodeName != "" {
		opts.nodeName = wc.NodeName
	}
	if !flags.Changed("secret-file") && wc.SecretFile != "" {
		opts.secretFile = wc.SecretFile
	}
	if !flags.Changed("windows-host") && meta.IsDefined("windows_host") {
		opts.windowsHost = wc.WindowsHost
	}
	if wc.MinChefVersion != "" {
		opts.minChefVersion = wc.MinChefVersion
	}
	if wc.RsyncBin != "" {
		opts.rsyncBin = wc.RsyncBin
	}
	if wc.BerksBin != "" {
		opts.berksBin = wc.BerksBin
	}
	if wc.LibrarianBin != "" {
		opts.librarianBin = wc.LibrarianBin
	}
}
