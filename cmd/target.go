package cmd

import (
	"errors"
	"net"
	"strings"
	"time"
)

// target identifies the remote host and the credentials needed to reach it.
// It is immutable for the duration of a run and shared read-only by every
// component that talks to the host.
type target struct {
	host           string // host or host:port
	user           string
	password       string
	keyPath        string
	passphrase     string
	knownHostsPath string
	strictHostKey  bool
	connTimeout    time.Duration
}

// newTargetFromFlags assembles a target from the global connection flags.
func newTargetFromFlags() *target {
	return &target{
		host:           cfgTarget,
		user:           cfgUser,
		password:       cfgPassword,
		keyPath:        cfgKeyPath,
		passphrase:     cfgPassphrase,
		knownHostsPath: cfgKnownHosts,
		strictHostKey:  cfgStrictHost,
		connTimeout:    cfgConnTimeout,
	}
}

// validate checks that the connection parameters are complete. It must pass
// before any remote work is attempted.
func (t *target) validate() error {
	if strings.TrimSpace(t.host) == "" {
		return errors.New("--target is required (FQDN/IP[:port])")
	}
	if strings.TrimSpace(t.user) == "" {
		return errors.New("--user is required for SSH authentication")
	}
	return nil
}

// address returns the dialable host:port, defaulting the SSH port.
func (t *target) address() string {
	if _, _, err := net.SplitHostPort(t.host); err == nil {
		return t.host
	}
	return net.JoinHostPort(t.host, "22")
}

// hostname returns the host without any port suffix, for user@host strings.
func (t *target) hostname() string {
	if host, _, err := net.SplitHostPort(t.host); err == nil {
		return host
	}
	return t.host
}

// port returns the SSH port as a string, defaulting to 22.
func (t *target) port() string {
	if _, port, err := net.SplitHostPort(t.host); err == nil {
		return port
	}
	return "22"
}

// String renders the user@host form used in messages and remediation hints.
func (t *target) String() string {
	if t.user == "" {
		return t.hostname()
	}
	return t.user + "@" + t.hostname()
}

// sshArgs builds the ssh(1) argument list rsync uses as its transport (-e).
// Token order is fixed so command construction stays reproducible.
func (t *target) sshArgs() []string {
	args := []string{"ssh"}
	if p := t.port(); p != "22" {
		args = append(args, "-p", p)
	}
	if t.keyPath != "" {
		args = append(args, "-i", t.keyPath)
	}
	if !t.strictHostKey {
		args = append(args, "-o", "StrictHostKeyChecking=no")
	} else if t.knownHostsPath != "" {
		args = append(args, "-o", "UserKnownHostsFile="+t.knownHostsPath)
	}
	return args
}
