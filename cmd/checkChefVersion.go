package cmd

import (
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// chefVersionQuery is the fixed remote command the version gate runs. Its
// single-line response has the shape "Chef: X.Y.Z".
const chefVersionQuery = "sudo chef-solo --version"

// parseChefVersion extracts the version string from chef-solo's version
// output. Any response that does not match the "Chef: X.Y.Z" shape maps to
// the empty string, which fails every constraint downstream; malformed input
// is never an error here.
func parseChefVersion(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	label, rest, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(label) != "Chef" {
		return ""
	}
	version := strings.TrimSpace(rest)
	if !semver.IsValid("v" + version) {
		return ""
	}
	return version
}

// chefVersionSatisfies reports whether found meets the minimum constraint
// under semantic-version ordering (major, then minor, then patch). The empty
// version never satisfies anything.
func chefVersionSatisfies(found, minimum string) bool {
	if found == "" {
		return false
	}
	return semver.Compare("v"+found, "v"+minimum) >= 0
}

// checkChefVersion queries the remote Chef runtime and compares it against
// the minimum version the pipeline requires. A missing, unparseable or too
// old version yields a versionMismatchError carrying the remediation hint.
func checkChefVersion(client sessionClient, tgt *target, minimum string, timeout time.Duration) error {
	out, _, _ := runRemoteCommandFunc(client, chefVersionQuery, timeout)
	found := parseChefVersion(string(out))
	if !chefVersionSatisfies(found, minimum) {
		return &versionMismatchError{host: tgt.String(), minimum: minimum, found: found}
	}
	return nil
}
