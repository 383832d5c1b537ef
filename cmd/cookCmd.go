package cmd

import "github.com/spf13/cobra"

// cookCmd is the primary workflow: mirror the local kitchen to the target and
// run chef-solo there, streaming its output.
var cookCmd = &cobra.Command{
	Use:   "cook",
	Short: "Mirror the kitchen to the target and run chef-solo",
	Long: "Validates the local kitchen, checks the remote Chef runtime, installs cookbook dependencies, " +
		"mirrors the kitchen to the target over rsync+SSH, uploads the rendered solo.rb and node context, " +
		"and runs chef-solo with live output. Run it from the kitchen root.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tgt := newTargetFromFlags()
		ws := newWorkspace(".")

		opts := newRunOptionsFromFlags()
		wc, meta, err := loadWorkspaceConfig(ws.configPath())
		if err != nil {
			return err
		}
		applyWorkspaceConfig(opts, cmd.Flags(), wc, meta)

		orc := newOrchestrator(tgt, opts, ws)
		runErr := orc.run()
		if opts.reportPath != "" {
			// The report covers failed runs too; a report-write problem must
			// not mask the run's own outcome.
			if err := orc.report.write(opts.reportPath); err != nil {
				printWarning("%v", err)
			}
		}
		return runErr
	},
}
