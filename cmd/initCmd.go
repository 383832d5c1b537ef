package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterChefignore = `# Patterns excluded from kitchen sync, one per line.
.DS_Store
*.swp
`

const starterConfig = `# Per-kitchen defaults for solorun. CLI flags always win.
# provision_path = "~/chef-solo"
# node_name = "web1"
# secret_file = ".chef/encrypted_data_bag_secret"
# windows_host = false
`

// initCmd scaffolds a kitchen: the directories every cook mirrors plus
// starter chefignore and .solorun.toml files. Existing files are never
// overwritten, so re-running it on a populated kitchen is safe.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new kitchen",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		ws := newWorkspace(root)

		dirs := append(ws.requiredDirs(), ws.siteCookbooksDir())
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			keep := filepath.Join(dir, ".gitkeep")
			if !isFile(keep) {
				if err := os.WriteFile(keep, nil, 0o644); err != nil {
					return err
				}
			}
		}
		if !isFile(ws.chefignorePath()) {
			if err := os.WriteFile(ws.chefignorePath(), []byte(starterChefignore), 0o644); err != nil {
				return err
			}
		}
		if !isFile(ws.configPath()) {
			if err := os.WriteFile(ws.configPath(), []byte(starterConfig), 0o644); err != nil {
				return err
			}
		}
		printSuccess("kitchen scaffolded in %s", root)
		return nil
	},
}
