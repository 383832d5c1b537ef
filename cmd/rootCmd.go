package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "solorun",
	Short: "Run chef-solo on remote hosts over SSH",
	Long: "solorun mirrors a local Chef kitchen to a remote host over rsync+SSH, renders the chef-solo " +
		"configuration, and runs chef-solo there with live output. It can also bootstrap hosts with the " +
		"Chef omnibus installer and scaffold new kitchens.",
	Version: Version,
}
