package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	warnColor    = color.New(color.FgYellow, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	phaseColor   = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// printWarning emits a non-fatal diagnostic to stderr. fatih/color disables
// colors automatically when stderr is not a TTY.
func printWarning(format string, args ...any) {
	_, _ = warnColor.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
}

// printSuccess emits a completion line to stderr.
func printSuccess(format string, args ...any) {
	_, _ = successColor.Fprintf(os.Stderr, format+"\n", args...)
}

// printPhase announces a pipeline phase before it runs.
func printPhase(name string) {
	_, _ = phaseColor.Fprintf(os.Stderr, "==> %s\n", name)
}

// printTiming reports a phase duration when --timing is enabled.
func printTiming(name string, d time.Duration) {
	_, _ = dimColor.Fprintf(os.Stderr, "    %s took %s\n", name, d.Round(time.Millisecond))
}

// printInfo emits an informational line to stderr without coloring, matching
// the plain progress output style used for streamed remote data.
func printInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}
