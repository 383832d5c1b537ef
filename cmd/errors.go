package cmd

import "fmt"

// versionMismatchError reports that the remote Chef runtime is missing or too
// old for the pipeline to proceed. Found is empty when no parseable version
// came back from the host.
type versionMismatchError struct {
	host    string
	minimum string
	found   string
}

func (e *versionMismatchError) Error() string {
	found := e.found
	if found == "" {
		found = "none"
	}
	return fmt.Sprintf("chef-solo >= %s is required on %s (found: %s); run `solorun prepare -t %s` to install or upgrade Chef",
		e.minimum, e.host, found, e.host)
}

// transferError reports a failed mirror transfer, naming the source/dest pair
// so the operator can re-run the failing unit by hand.
type transferError struct {
	source string
	dest   string
	err    error
}

func (e *transferError) Error() string {
	return fmt.Sprintf("mirror transfer %s -> %s failed: %v", e.source, e.dest, e.err)
}

func (e *transferError) Unwrap() error { return e.err }

// runFailureError reports a non-zero chef-solo exit. The remote run's own
// diagnostics are authoritative, so the message points at the streamed output
// instead of guessing a cause.
type runFailureError struct {
	host     string
	exitCode int
}

func (e *runFailureError) Error() string {
	return fmt.Sprintf("chef-solo run on %s failed with exit code %d; inspect the streamed output above for the cause",
		e.host, e.exitCode)
}
