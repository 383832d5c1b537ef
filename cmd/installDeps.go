package cmd

import (
	"fmt"
	"io"
	"os"
)

// depInstallStatus tags the outcome of the dependency-install step.
type depInstallStatus int

const (
	depInstalled depInstallStatus = iota
	depSkipped
	depUnavailable
	depFailed
)

type depInstallResult struct {
	tool   string
	status depInstallStatus
	detail string
}

// installDependencies vendors third-party cookbooks before the kitchen is
// mirrored. Berksfile takes precedence over Cheffile when both exist. A
// missing tool or a failing tool run degrades to a tagged result the caller
// can surface as a warning; only local filesystem trouble is an error.
func installDependencies(ws *workspace, opts *runOptions, runner localRunner, stdout, stderr io.Writer) (*depInstallResult, error) {
	if opts.skipBerkshelf {
		return &depInstallResult{tool: "dependencies", status: depSkipped, detail: "disabled by --skip-berkshelf"}, nil
	}
	switch {
	case isFile(ws.berksfilePath()):
		return installBerkshelf(ws, opts, runner, stdout, stderr)
	case isFile(ws.cheffilePath()):
		return installLibrarian(ws, opts, runner, stdout, stderr)
	}
	return &depInstallResult{tool: "dependencies", status: depSkipped, detail: "no Berksfile or Cheffile"}, nil
}

func installBerkshelf(ws *workspace, opts *runOptions, runner localRunner, stdout, stderr io.Writer) (*depInstallResult, error) {
	if _, err := runner.lookPath(opts.berksBin); err != nil {
		return &depInstallResult{
			tool:   opts.berksBin,
			status: depUnavailable,
			detail: fmt.Sprintf("%s not found on PATH; using berks-cookbooks as-is", opts.berksBin),
		}, nil
	}
	if err := os.MkdirAll(ws.berksCookbooksDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", ws.berksCookbooksDir(), err)
	}
	if err := runner.run(opts.berksBin, []string{"vendor", "berks-cookbooks"}, ws.root, stdout, stderr); err != nil {
		return &depInstallResult{
			tool:   opts.berksBin,
			status: depFailed,
			detail: fmt.Sprintf("%s vendor failed: %v", opts.berksBin, err),
		}, nil
	}
	return &depInstallResult{tool: opts.berksBin, status: depInstalled, detail: "vendored to berks-cookbooks"}, nil
}

func installLibrarian(ws *workspace, opts *runOptions, runner localRunner, stdout, stderr io.Writer) (*depInstallResult, error) {
	if _, err := runner.lookPath(opts.librarianBin); err != nil {
		return &depInstallResult{
			tool:   opts.librarianBin,
			status: depUnavailable,
			detail: fmt.Sprintf("%s not found on PATH; using cookbooks as-is", opts.librarianBin),
		}, nil
	}
	if err := runner.run(opts.librarianBin, []string{"install"}, ws.root, stdout, stderr); err != nil {
		return &depInstallResult{
			tool:   opts.librarianBin,
			status: depFailed,
			detail: fmt.Sprintf("%s install failed: %v", opts.librarianBin, err),
		}, nil
	}
	return &depInstallResult{tool: opts.librarianBin, status: depInstalled, detail: "installed from Cheffile"}, nil
}
