package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		// A failed remote run surfaces chef-solo's own exit code so callers
		// in scripts can distinguish converge failures from CLI errors.
		var runErr *runFailureError
		if errors.As(err, &runErr) && runErr.exitCode > 0 {
			exitFunc(runErr.exitCode)
			return
		}
		exitFunc(1)
		return
	}
}
