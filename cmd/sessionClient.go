package cmd

// sessionClient is a minimal interface to obtain a command session, keeping
// the rest of the code transport-agnostic and easy to fake in tests.
type sessionClient interface {
	NewSession() (session, error)
}
