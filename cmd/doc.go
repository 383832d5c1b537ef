// Package cmd implements the solorun command-line interface.
//
// solorun drives a single chef-solo run on one remote host over SSH: it
// checks the installed Chef version, resolves cookbook dependencies with
// Berkshelf or Librarian, mirrors the local kitchen (cookbooks, roles,
// nodes, data bags) to the host with rsync, renders solo.rb, and invokes
// chef-solo while streaming its output.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, cookCmd.go and orchestrator.run.go for the main execution flow,
// rsyncTransfer.go for how mirrored transfers are assembled, and
// checkChefVersion.go for the remote version gate.
package cmd
