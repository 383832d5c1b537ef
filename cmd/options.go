package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// defaultMinChefVersion is the oldest chef-solo the pipeline supports; the
// run-list override flag (-o) first appeared there.
const defaultMinChefVersion = "0.10.4"

// defaultProvisionPath is the remote directory all synced content and the
// rendered run configuration live under. Home-relative so the remote shell
// expands it for the unprivileged SSH user.
const defaultProvisionPath = "~/chef-solo"

// runOptions collects every toggle the cook pipeline reads. Immutable once
// assembled; all components receive it by reference.
type runOptions struct {
	provisionPath   string
	nodeName        string
	jsonAttributes  string // local node-context file overriding nodes/<name>.json
	overrideRunlist string
	whyRun          bool
	syncOnly        bool
	skipChefCheck   bool
	legacySkipCheck bool // deprecated spelling recorded for the shim warning
	skipBerkshelf   bool
	secretFile      string
	windowsHost     bool
	verbosity       int
	timing          bool
	reportPath      string
	cmdTimeout      time.Duration

	minChefVersion string
	rsyncBin       string
	berksBin       string
	librarianBin   string
}

// newRunOptionsFromFlags assembles runOptions from the global flag state.
// Workspace-file defaults are applied separately before this is called.
func newRunOptionsFromFlags() *runOptions {
	return &runOptions{
		provisionPath:   cfgProvisionPath,
		nodeName:        cfgNodeName,
		jsonAttributes:  cfgJSONAttributes,
		overrideRunlist: cfgOverrideRunlist,
		whyRun:          cfgWhyRun,
		syncOnly:        cfgSyncOnly,
		skipChefCheck:   cfgNoChefCheck,
		legacySkipCheck: cfgSkipChefCheck,
		skipBerkshelf:   cfgSkipBerkshelf,
		secretFile:      cfgSecretFile,
		windowsHost:     cfgWindowsHost,
		verbosity:       cfgVerbosity,
		timing:          cfgTiming,
		reportPath:      cfgReportPath,
		cmdTimeout:      cfgCmdTimeout,
		minChefVersion:  defaultMinChefVersion,
		rsyncBin:        "rsync",
		berksBin:        "berks",
		librarianBin:    "librarian-chef",
	}
}

// applyLegacyToggles coerces deprecated flags into their modern equivalents
// and returns the warnings to surface. Runs first so every later phase sees
// only the modern toggles.
func (o *runOptions) applyLegacyToggles() []string {
	var warnings []string
	if o.legacySkipCheck {
		warnings = append(warnings, "--skip-chef-check is deprecated, please use --no-chef-check")
		o.skipChefCheck = true
	}
	return warnings
}

// validate enforces the option invariants shared by all components.
func (o *runOptions) validate() error {
	if strings.TrimSpace(o.provisionPath) == "" {
		return errors.New("--provision-path must not be empty")
	}
	if !semver.IsValid("v" + o.minChefVersion) {
		return fmt.Errorf("invalid minimum chef version %q", o.minChefVersion)
	}
	return nil
}

// remotePath roots a relative remote name under the provisioning path. Every
// remote location the pipeline references is derived through this single
// function so changing --provision-path never touches another component.
func (o *runOptions) remotePath(name string) string {
	return strings.TrimRight(o.provisionPath, "/") + "/" + name
}
