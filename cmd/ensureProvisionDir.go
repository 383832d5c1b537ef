package cmd

import (
	"fmt"
	"strings"
	"time"
)

// ensureProvisionDir creates the remote provisioning directory tree before
// the first mirror runs into it. rsync creates the final path element of a
// unit but not its parents, so a fresh host needs this once per run.
func ensureProvisionDir(client sessionClient, opts *runOptions, timeout time.Duration) error {
	cmd := "mkdir -p " + shellQuote(strings.TrimRight(opts.provisionPath, "/"))
	out, code, err := runRemoteCommandFunc(client, cmd, timeout)
	if code > 0 {
		return fmt.Errorf("create remote %s failed with exit code %d: %s",
			opts.provisionPath, code, strings.TrimSpace(string(out)))
	}
	if err != nil {
		return fmt.Errorf("create remote %s: %w", opts.provisionPath, err)
	}
	return nil
}
