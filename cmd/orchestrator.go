package cmd

import "time"

// phaseOutcome carries a phase's reported status and detail when it finishes
// without an error. An empty status means ok.
type phaseOutcome struct {
	status string
	detail string
}

// orchestrator drives one cook run phase by phase against a single target.
// Phases execute in a fixed order; the first failure aborts the run so the
// remote host is never cooked from a half-synced kitchen.
type orchestrator struct {
	tgt  *target
	opts *runOptions
	ws   *workspace

	// Populated during run unless injected beforehand.
	client   sessionClient
	closeFn  func() error
	transfer mirrorTransfer
	runner   localRunner

	report *runReport
}

func newOrchestrator(tgt *target, opts *runOptions, ws *workspace) *orchestrator {
	return &orchestrator{
		tgt:    tgt,
		opts:   opts,
		ws:     ws,
		runner: execRunner{},
		report: newRunReport(tgt),
	}
}

// phase runs one pipeline step, records its outcome and timing in the run
// report, and passes the step's error through unchanged.
func (o *orchestrator) phase(name string, fn func() (phaseOutcome, error)) error {
	printPhase(name)
	start := time.Now()
	out, err := fn()
	elapsed := time.Since(start)
	switch {
	case err != nil:
		out = phaseOutcome{status: phaseFailed, detail: err.Error()}
	case out.status == "":
		out.status = phaseOK
	}
	o.report.add(name, out.status, elapsed, out.detail)
	if o.opts.timing {
		printTiming(name, elapsed)
	}
	return err
}

func (o *orchestrator) connect() (phaseOutcome, error) {
	if o.client != nil {
		return phaseOutcome{}, nil
	}
	raw, err := dialSSHFunc(o.tgt)
	if err != nil {
		return phaseOutcome{}, err
	}
	o.client = sshClientWrapper{c: raw}
	// Stubs may dial to a nil client; only a real one needs closing.
	if raw != nil {
		o.closeFn = raw.Close
	}
	return phaseOutcome{detail: o.tgt.address()}, nil
}

func (o *orchestrator) close() {
	if o.closeFn != nil {
		_ = o.closeFn()
		o.closeFn = nil
	}
}
