package cmd

import (
	"bufio"
	"os"
	"strings"
)

// ignorePatternSource supplies extra exclusion patterns for mirrored
// transfers, typically from a chefignore file at the workspace root.
type ignorePatternSource interface {
	patterns() []string
}

// chefignoreFile reads patterns from a chefignore file once per run. A
// missing file simply yields no patterns.
type chefignoreFile struct {
	path string
}

func (c chefignoreFile) patterns() []string {
	f, err := os.Open(c.path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var out []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
