package cmd

import "strings"

// shellQuote quotes an argument for a remote POSIX shell. Arguments made of
// safe characters pass through unquoted; everything else is single-quoted
// with the standard `'\''` escape for embedded single quotes. `~` counts as
// safe so home-relative paths like ~/chef-solo keep their tilde expansion on
// the remote side.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, isUnsafeShellRune) == -1 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isUnsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	switch r {
	case '-', '_', '.', '/', '@', ':', ',', '+', '=', '~':
		return false
	}
	return true
}
