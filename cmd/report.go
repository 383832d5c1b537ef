package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Phase statuses recorded in the run report.
const (
	phaseOK      = "ok"
	phaseSkipped = "skipped"
	phaseWarning = "warning"
	phaseFailed  = "failed"
)

type phaseResult struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Duration string `yaml:"duration,omitempty"`
	Detail   string `yaml:"detail,omitempty"`
}

// runReport accumulates per-phase outcomes for one run and serializes them
// to YAML on request. Failed runs still produce a report so the aborting
// phase is visible.
type runReport struct {
	Name      string        `yaml:"name"`
	Target    string        `yaml:"target"`
	Generated time.Time     `yaml:"generated"`
	Phases    []phaseResult `yaml:"phases"`
}

func newRunReport(tgt *target) *runReport {
	return &runReport{Target: tgt.String(), Generated: time.Now().UTC()}
}

func (r *runReport) add(name, status string, elapsed time.Duration, detail string) {
	r.Phases = append(r.Phases, phaseResult{
		Name:     name,
		Status:   status,
		Duration: elapsed.Round(time.Millisecond).String(),
		Detail:   detail,
	})
}

func (r *runReport) write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
