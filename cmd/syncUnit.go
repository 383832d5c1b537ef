package cmd

// syncUnit describes one mirrored transfer: a local source, its remote
// destination under the provisioning path, and any per-unit rsync arguments.
// Units are ephemeral: built fresh for each run and handed to the transfer
// one at a time.
type syncUnit struct {
	label     string
	source    string
	dest      string
	directory bool
	extraArgs []string
}

// fileUnit builds a single-file sync unit.
func fileUnit(label, source, dest string, extraArgs ...string) syncUnit {
	return syncUnit{label: label, source: source, dest: dest, extraArgs: extraArgs}
}

// dirUnit builds a directory sync unit whose contents mirror into dest.
func dirUnit(label, source, dest string) syncUnit {
	return syncUnit{label: label, source: source, dest: dest, directory: true}
}

// buildSyncUnits enumerates the workspace elements to mirror, in a fixed
// order. Required kitchen directories are always present (validated before
// any remote work); site-cookbooks, vendored berks-cookbooks and the
// encrypted data bag key join only when they exist locally; their absence is
// not an error.
func buildSyncUnits(ws *workspace, opts *runOptions) []syncUnit {
	units := []syncUnit{
		dirUnit("cookbooks", ws.cookbooksDir(), opts.remotePath("cookbooks")),
	}
	if isDir(ws.siteCookbooksDir()) {
		units = append(units, dirUnit("site-cookbooks", ws.siteCookbooksDir(), opts.remotePath("site-cookbooks")))
	}
	if isDir(ws.berksCookbooksDir()) {
		units = append(units, dirUnit("berks-cookbooks", ws.berksCookbooksDir(), opts.remotePath("berks-cookbooks")))
	}
	units = append(units,
		dirUnit("roles", ws.rolesDir(), opts.remotePath("roles")),
		dirUnit("nodes", ws.nodesDir(), opts.remotePath("nodes")),
		dirUnit("data_bags", ws.dataBagsDir(), opts.remotePath("data_bags")),
	)
	if opts.secretFile != "" && isFile(opts.secretFile) {
		// Keep the encryption key unreadable to other remote users.
		units = append(units, fileUnit("data_bag_key", opts.secretFile, opts.remotePath("data_bag_key"), "--chmod=go-rwx"))
	}
	return units
}
