package cmd

import (
	"fmt"
	"os"
	"time"
)

// runChefSolo executes the assembled chef-solo command on the target,
// streaming remote output live. A non-zero exit becomes a runFailureError so
// the caller aborts without retrying.
func runChefSolo(client sessionClient, tgt *target, command string, timeout time.Duration) error {
	if cfgVerbosity > 0 {
		printInfo("running %q on %s", command, tgt.String())
	}
	code, err := streamRemoteCommandFunc(client, command, os.Stdout, os.Stderr, timeout)
	if err != nil {
		return fmt.Errorf("chef-solo on %s: %w", tgt.String(), err)
	}
	if code != 0 {
		return &runFailureError{host: tgt.String(), exitCode: code}
	}
	return nil
}
