package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// cleanCmd removes the provisioning directory from the target so the next
// cook starts from an empty mirror.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the provisioning directory from the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		tgt := newTargetFromFlags()
		if err := tgt.validate(); err != nil {
			return err
		}
		path := strings.TrimRight(strings.TrimSpace(cfgProvisionPath), "/")
		// Never aim rm -rf at a filesystem or home-directory root.
		switch path {
		case "", "/", "~":
			return fmt.Errorf("refusing to clean %q", cfgProvisionPath)
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

		out, code, err := runRemoteCommandFunc(client, "rm -rf "+shellQuote(path), cfgCmdTimeout)
		if code > 0 {
			return fmt.Errorf("clean %s on %s failed with exit code %d: %s", path, tgt.String(), code, strings.TrimSpace(string(out)))
		}
		if err != nil {
			return fmt.Errorf("clean %s on %s: %w", path, tgt.String(), err)
		}
		printSuccess("removed %s from %s", path, tgt.String())
		return nil
	},
}
