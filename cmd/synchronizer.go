package cmd

// synchronizer pushes the workspace mirror to the remote provision directory
// one unit at a time. The first failed unit aborts the whole sync so the
// remote tree is never silently half-updated past an error.
type synchronizer struct {
	transfer mirrorTransfer
	excludes []string
	perms    bool
}

func newSynchronizer(transfer mirrorTransfer, ignores ignorePatternSource, normalizePerms bool) *synchronizer {
	return &synchronizer{
		transfer: transfer,
		excludes: buildExcludeSet(ignores),
		perms:    normalizePerms,
	}
}

func (s *synchronizer) sync(units []syncUnit) error {
	for _, u := range units {
		if cfgVerbosity > 0 {
			printInfo("syncing %s", u.label)
		}
		if err := s.transfer.mirror(u, s.excludes, s.perms); err != nil {
			return err
		}
	}
	return nil
}
