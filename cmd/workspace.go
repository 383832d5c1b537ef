package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// workspace locates the pieces of a local kitchen: cookbook directories,
// roles, nodes, data bags, dependency manifests and the chefignore file.
type workspace struct {
	root string
}

func newWorkspace(root string) *workspace {
	if root == "" {
		root = "."
	}
	return &workspace{root: root}
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.root, name)
}

func (w *workspace) cookbooksDir() string      { return w.path("cookbooks") }
func (w *workspace) siteCookbooksDir() string  { return w.path("site-cookbooks") }
func (w *workspace) berksCookbooksDir() string { return w.path("berks-cookbooks") }
func (w *workspace) rolesDir() string          { return w.path("roles") }
func (w *workspace) nodesDir() string          { return w.path("nodes") }
func (w *workspace) dataBagsDir() string       { return w.path("data_bags") }
func (w *workspace) chefignorePath() string    { return w.path("chefignore") }
func (w *workspace) berksfilePath() string     { return w.path("Berksfile") }
func (w *workspace) cheffilePath() string      { return w.path("Cheffile") }
func (w *workspace) configPath() string        { return w.path(".solorun.toml") }

// requiredDirs are the kitchen directories every run mirrors; solorun init
// creates them.
func (w *workspace) requiredDirs() []string {
	return []string{w.cookbooksDir(), w.rolesDir(), w.nodesDir(), w.dataBagsDir()}
}

// validate checks the kitchen layout, failing before any remote work when a
// required directory is missing.
func (w *workspace) validate() error {
	for _, dir := range w.requiredDirs() {
		if !isDir(dir) {
			return fmt.Errorf("%s is missing or not a directory; run `solorun init` to scaffold the kitchen", dir)
		}
	}
	return nil
}

// nodeFile returns the node-definition path for the given node name.
func (w *workspace) nodeFile(nodeName string) string {
	return filepath.Join(w.nodesDir(), nodeName+".json")
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
