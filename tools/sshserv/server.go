// Package sshserv hosts a minimal in-process SSH server for end-to-end
// tests. It accepts any user without authentication and answers exec
// requests from a canned response table.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Response is the canned result an exec request receives.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Start launches a test SSH server listening on listenAddr (e.g.,
// 127.0.0.1:20222). Each exec request is answered from the canned table: an
// exact command match wins, then the longest prefix match; unmatched commands
// exit 127. Returns a stop function that closes the listener and waits for
// shutdown.
func Start(listenAddr string, responses map[string]Response) (func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				continue
			}
			go handleConn(conn, cfg, responses)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig, responses map[string]Response) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, chReqs, responses)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request, responses map[string]Response) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		if req.Type != "exec" {
			_ = req.Reply(false, nil)
			continue
		}
		_ = req.Reply(true, nil)
		answer(ch, lookup(responses, parseExecPayload(req.Payload)))
		return
	}
}

// parseExecPayload extracts the command string from an exec request payload:
// a big-endian uint32 length followed by that many command bytes.
func parseExecPayload(p []byte) string {
	if len(p) < 4 {
		return ""
	}
	n := binary.BigEndian.Uint32(p)
	if uint64(n) > uint64(len(p)-4) {
		return ""
	}
	return string(p[4 : 4+n])
}

func lookup(responses map[string]Response, cmd string) Response {
	if r, ok := responses[cmd]; ok {
		return r
	}
	best := ""
	for k := range responses {
		if strings.HasPrefix(cmd, k) && len(k) > len(best) {
			best = k
		}
	}
	if best != "" {
		return responses[best]
	}
	return Response{Stderr: "sh: " + cmd + ": command not found\n", ExitCode: 127}
}

func answer(ch ssh.Channel, r Response) {
	if r.Stdout != "" {
		_, _ = ch.Write([]byte(r.Stdout))
	}
	if r.Stderr != "" {
		_, _ = ch.Stderr().Write([]byte(r.Stderr))
	}
	status := struct{ Status uint32 }{uint32(r.ExitCode)}
	_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
}
