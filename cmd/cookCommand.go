package cmd

import "strings"

// buildCookCommand assembles the remote chef-solo invocation. Token order is
// fixed: config and node-context files, log level, node name, why-run mode,
// run-list override. Only user-supplied values are quoted; the provision
// paths stay bare so the remote shell expands a leading tilde.
func buildCookCommand(opts *runOptions) string {
	parts := []string{
		"sudo", "chef-solo",
		"-c", shellQuote(opts.remotePath("solo.rb")),
		"-j", shellQuote(opts.remotePath("dna.json")),
	}
	if opts.verbosity > 0 {
		parts = append(parts, "-l", "debug")
	}
	if opts.nodeName != "" {
		parts = append(parts, "-N", shellQuote(opts.nodeName))
	}
	if opts.whyRun {
		parts = append(parts, "-W")
	}
	if opts.overrideRunlist != "" {
		parts = append(parts, "-o", shellQuote(opts.overrideRunlist))
	}
	return strings.Join(parts, " ")
}
