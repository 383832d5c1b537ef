package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultOmnibusURL is the upstream installer script prepare pipes to a
// remote shell.
const defaultOmnibusURL = "https://omnitruck.chef.io/install.sh"

// prepareCmd bootstraps a host: it runs the Chef omnibus installer there and
// confirms the installed version clears the minimum the cook pipeline
// requires.
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Install Chef on the target via the omnibus installer",
	RunE: func(cmd *cobra.Command, args []string) error {
		tgt := newTargetFromFlags()
		if err := tgt.validate(); err != nil {
			return err
		}

		raw, err := dialSSHFunc(tgt)
		if err != nil {
			return fmt.Errorf("ssh connection failed: %w", err)
		}
		defer func() {
			if raw != nil {
				_ = raw.Close()
			}
		}()
		client := sshClientWrapper{c: raw}

		printPhase("install chef")
		line := buildOmnibusCommand(cfgOmnibusURL, cfgOmnibusVersion)
		code, err := streamRemoteCommandFunc(client, line, os.Stdout, os.Stderr, cfgCmdTimeout)
		if err != nil {
			return fmt.Errorf("omnibus install on %s: %w", tgt.String(), err)
		}
		if code != 0 {
			return fmt.Errorf("omnibus install on %s failed with exit code %d", tgt.String(), code)
		}

		if !cfgNoChefCheck {
			printPhase("check chef version")
			if err := checkChefVersion(client, tgt, defaultMinChefVersion, cfgCmdTimeout); err != nil {
				return err
			}
		}
		printSuccess("%s is ready to cook", tgt.String())
		return nil
	},
}

// buildOmnibusCommand assembles the curl-pipe-bash installer line. A pinned
// version is passed through to the installer script's -v switch.
func buildOmnibusCommand(url, version string) string {
	line := "curl -L " + shellQuote(url) + " | sudo bash"
	if version != "" {
		line += " -s -- -v " + shellQuote(version)
	}
	return line
}
