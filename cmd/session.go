package cmd

import "io"

// session is a minimal interface for running one remote command and closing.
// Stream writes remote stdout/stderr to the given writers as they arrive
// instead of buffering until completion.
type session interface {
	CombinedOutput(cmd string) ([]byte, error)
	Stream(cmd string, stdout, stderr io.Writer) error
	Close() error
}
