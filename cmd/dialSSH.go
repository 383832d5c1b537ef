package cmd

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes an SSH client connection to the target. Authentication
// tries, in order: private key (when configured), password (when configured),
// and any keys offered by a running SSH agent.
func dialSSH(t *target) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if t.keyPath != "" {
		signer, err := loadSigner(t.keyPath, t.passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if t.password != "" {
		auths = append(auths, ssh.Password(t.password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if t.strictHostKey {
		// Try known_hosts file if present; else fail closed
		if _, err := os.Stat(t.knownHostsPath); err == nil {
			cb, err := knownhosts.New(t.knownHostsPath)
			if err != nil {
				return nil, fmt.Errorf("known_hosts: %w", err)
			}
			hostKeyCB = cb
		} else {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", t.knownHostsPath)
		}
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            t.user,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         t.connTimeout,
	}

	// Use explicit net.Dialer for connection timeout
	d := net.Dialer{Timeout: t.connTimeout}
	conn, err := d.Dial("tcp", t.address())
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, t.address(), cfg)
	if err != nil {
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
