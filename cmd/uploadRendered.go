package cmd

import (
	"fmt"
	"os"
)

// uploadRendered ships in-memory rendered content to the remote provision
// tree through the same mirror transport as the workspace sync. The local
// staging file is removed on every exit path, including transfer failures.
func uploadRendered(transfer mirrorTransfer, label string, content []byte, dest string, normalizePerms bool) error {
	tmp, err := os.CreateTemp("", "solorun-"+label+"-*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", label, err)
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage %s: %w", label, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stage %s: %w", label, err)
	}
	return transfer.mirror(fileUnit(label, name, dest), nil, normalizePerms)
}
