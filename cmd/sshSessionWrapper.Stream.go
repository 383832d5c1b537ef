package cmd

import "io"

// Stream executes cmd on the underlying ssh.Session with stdout and stderr
// wired straight to the given writers, so the caller sees remote output as it
// is produced rather than after completion.
func (w sshSessionWrapper) Stream(cmd string, stdout, stderr io.Writer) error {
	w.s.Stdout = stdout
	w.s.Stderr = stderr
	return w.s.Run(cmd)
}
