package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the connection flags shared by every subcommand, binds them
// to SOLORUN_* environment variables via Viper, and registers all
// subcommands. This keeps the configuration surface consistent across
// cook/prepare/clean and makes environment overrides predictable for
// operators.
func init() {
	// Persistent flags (inherited by subcommands like `cook`)
	rootCmd.PersistentFlags().StringVarP(&cfgTarget, "target", "t", "", "Target host FQDN/IP[:port] (e.g., web1.example.com)")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "SSH username")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "SSH password (or set SOLORUN_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set SOLORUN_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "SSH connection timeout")
	rootCmd.PersistentFlags().DurationVar(&cfgCmdTimeout, "cmd-timeout", 0, "Per-command timeout for remote commands (e.g., 30s). 0 disables")
	rootCmd.PersistentFlags().StringVar(&cfgProvisionPath, "provision-path", defaultProvisionPath, "Remote directory the kitchen is mirrored into")
	rootCmd.PersistentFlags().CountVarP(&cfgVerbosity, "verbose", "V", "Verbose output (repeatable; passes -l debug to chef-solo)")

	// cook flags
	cookCmd.Flags().StringVarP(&cfgNodeName, "node-name", "N", "", "Chef node name (default: target hostname)")
	cookCmd.Flags().StringVarP(&cfgJSONAttributes, "json-attributes", "j", "", "Node attributes file uploaded instead of nodes/<name>.json")
	cookCmd.Flags().StringVarP(&cfgOverrideRunlist, "override-runlist", "o", "", "Replace the node run list for this run only")
	cookCmd.Flags().BoolVarP(&cfgWhyRun, "why-run", "W", false, "Enable chef-solo why-run (dry-run) mode")
	cookCmd.Flags().BoolVar(&cfgSyncOnly, "sync-only", false, "Only sync the kitchen; do not run chef-solo")
	cookCmd.Flags().BoolVar(&cfgNoChefCheck, "no-chef-check", false, "Skip the remote Chef version check")
	cookCmd.Flags().BoolVar(&cfgSkipChefCheck, "skip-chef-check", false, "Skip the remote Chef version check (deprecated: use --no-chef-check)")
	cookCmd.Flags().BoolVar(&cfgSkipBerkshelf, "skip-berkshelf", false, "Skip Berkshelf/Librarian dependency install")
	cookCmd.Flags().StringVar(&cfgSecretFile, "secret-file", "", "Encrypted data bag secret file to upload")
	cookCmd.Flags().BoolVar(&cfgWindowsHost, "windows-host", false, "Target host runs Windows (remote rsync paths use cygdrive form)")
	cookCmd.Flags().BoolVar(&cfgTiming, "timing", false, "Print per-phase timings")
	cookCmd.Flags().StringVar(&cfgReportPath, "report", "", "Write a YAML run report to this path")

	// prepare flags
	prepareCmd.Flags().StringVar(&cfgOmnibusURL, "omnibus-url", defaultOmnibusURL, "Omnibus installer script URL")
	prepareCmd.Flags().StringVar(&cfgOmnibusVersion, "omnibus-version", "", "Pin the Chef version the installer fetches")
	prepareCmd.Flags().BoolVar(&cfgNoChefCheck, "no-chef-check", false, "Skip the post-install Chef version check")

	// Bind env with Viper
	_ = viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.PersistentFlags().Lookup("cmd-timeout"))
	_ = viper.BindPFlag("provision-path", rootCmd.PersistentFlags().Lookup("provision-path"))

	viper.SetEnvPrefix("SOLORUN")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("target"); v != "" {
			cfgTarget = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgCmdTimeout = d
			}
		}
		if v := viper.GetString("provision-path"); v != "" {
			cfgProvisionPath = v
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(cookCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(initCmd)
}
