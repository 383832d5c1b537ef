package cmd

import "time"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags, environment variables and the
	// optional .solorun.toml workspace file. Declared here so they are
	// visible across subcommands.
	cfgTarget      string
	cfgUser        string
	cfgPassword    string
	cfgKeyPath     string
	cfgPassphrase  string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgCmdTimeout  time.Duration

	// cook pipeline toggles
	cfgProvisionPath   string
	cfgNodeName        string
	cfgJSONAttributes  string
	cfgOverrideRunlist string
	cfgWhyRun          bool
	cfgSyncOnly        bool
	cfgNoChefCheck     bool
	cfgSkipChefCheck   bool // legacy spelling, coerced into cfgNoChefCheck
	cfgSkipBerkshelf   bool
	cfgSecretFile      string
	cfgWindowsHost     bool
	cfgVerbosity       int
	cfgTiming          bool
	cfgReportPath      string

	// prepare subcommand
	cfgOmnibusURL     string
	cfgOmnibusVersion string
)

// Allow tests to stub dialing, remote execution and the mirror transport.
var (
	dialSSHFunc             = dialSSH
	runRemoteCommandFunc    = runRemoteCommand
	streamRemoteCommandFunc = streamRemoteCommand
	newTransferFunc         = func(tgt *target, opts *runOptions, runner localRunner) mirrorTransfer {
		return newRsyncTransfer(tgt, opts, runner)
	}
)
