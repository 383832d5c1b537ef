package cmd

import (
	"io"
	"os"
	"strings"
)

// rsyncTransfer mirrors sync units with a locally executed rsync over the
// target's SSH transport. Command lines are assembled from an ordered token
// list so the exact invocation is reproducible and testable.
type rsyncTransfer struct {
	tgt     *target
	bin     string
	runner  localRunner
	verbose bool

	// Path adjustments are judged on independent platform facts: the source
	// side follows the client OS, the destination side follows the remote
	// host.
	clientWindows bool
	hostWindows   bool
}

func newRsyncTransfer(tgt *target, opts *runOptions, runner localRunner) *rsyncTransfer {
	return &rsyncTransfer{
		tgt:           tgt,
		bin:           opts.rsyncBin,
		runner:        runner,
		verbose:       opts.verbosity > 0,
		clientWindows: clientIsWindows(),
		hostWindows:   opts.windowsHost,
	}
}

// buildArgs renders the full rsync argument list for one unit. Token order is
// fixed: base flags, verbosity, excludes, permission override, per-unit
// extras, transport, then source and destination.
func (r *rsyncTransfer) buildArgs(u syncUnit, excludes []string, normalizePerms bool) []string {
	args := []string{"-rl", "--delete", "--rsync-path=sudo rsync"}
	if r.verbose {
		args = append(args, "-v")
	}
	for _, p := range excludes {
		args = append(args, "--exclude="+p)
	}
	if normalizePerms {
		// cygwin rsync writes new files with 0000 permissions unless told
		// otherwise.
		args = append(args, "--chmod=ugo=rwX")
	}
	args = append(args, u.extraArgs...)
	args = append(args, "-e", strings.Join(r.tgt.sshArgs(), " "))

	source := u.source
	if r.clientWindows {
		source = adjustCygwinPath(source)
	}
	if u.directory {
		source = strings.TrimRight(source, "/") + "/"
	}
	dest := u.dest
	if r.hostWindows {
		dest = adjustCygwinPath(dest)
	}
	return append(args, source, r.tgt.String()+":"+dest)
}

func (r *rsyncTransfer) mirror(u syncUnit, excludes []string, normalizePerms bool) error {
	args := r.buildArgs(u, excludes, normalizePerms)
	var stdout, stderr io.Writer
	if r.verbose {
		printInfo("%s %s", r.bin, strings.Join(args, " "))
		stdout, stderr = os.Stderr, os.Stderr
	}
	if err := r.runner.run(r.bin, args, "", stdout, stderr); err != nil {
		return &transferError{source: u.source, dest: u.dest, err: err}
	}
	return nil
}
