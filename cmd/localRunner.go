package cmd

import (
	"io"
	"os/exec"
)

// localRunner executes local helper binaries (rsync, berks, librarian-chef).
// The narrow interface keeps command assembly testable without spawning
// processes.
type localRunner interface {
	run(name string, args []string, dir string, stdout, stderr io.Writer) error
	lookPath(name string) (string, error)
}

// execRunner is the production localRunner backed by os/exec.
type execRunner struct{}

func (execRunner) run(name string, args []string, dir string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if stdout != nil {
		cmd.Stdout = stdout
	}
	if stderr != nil {
		cmd.Stderr = stderr
	}
	return cmd.Run()
}

func (execRunner) lookPath(name string) (string, error) {
	return exec.LookPath(name)
}
