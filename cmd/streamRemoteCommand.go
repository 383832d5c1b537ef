package cmd

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/crypto/ssh"
)

// streamRemoteCommand executes a single command on a fresh session with its
// output streamed live to the given writers, and returns the remote exit
// code. Unlike runRemoteCommand nothing is buffered: the caller's writers see
// remote output as chef-solo produces it. A non-zero remote exit comes back
// through the exit code with a nil error; the error return covers session and
// transport failures only. A timeout of zero disables the deadline.
func streamRemoteCommand(client sessionClient, cmd string, stdout, stderr io.Writer, timeout time.Duration) (int, error) {
	type result struct {
		exitCode int
		err      error
	}

	run := func() result {
		sess, err := client.NewSession()
		if err != nil {
			return result{-1, err}
		}
		defer func() { _ = sess.Close() }()
		err = sess.Stream(cmd, stdout, stderr)
		if err == nil {
			return result{0, nil}
		}
		// The command ran and failed; its diagnostics already streamed.
		var ee *ssh.ExitError
		if errors.As(err, &ee) {
			return result{ee.ExitStatus(), nil}
		}
		return result{-1, err}
	}

	if timeout <= 0 {
		r := run()
		return r.exitCode, r.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan result, 1)
	go func() { ch <- run() }()

	select {
	case r := <-ch:
		return r.exitCode, r.err
	case <-ctx.Done():
		return -1, context.DeadlineExceeded
	}
}
