package cmd

// mirrorTransfer performs a one-way mirrored transfer of one sync unit to the
// target host: destination files absent from the source are deleted so the
// remote side converges on exactly the tracked local content. Consumed by the
// workspace synchronizer and by the solo.rb upload.
type mirrorTransfer interface {
	mirror(u syncUnit, excludes []string, normalizePerms bool) error
}
