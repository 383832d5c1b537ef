package cmd

// fixedExcludes are version-control and scratch directories that never belong
// on the remote host, regardless of chefignore contents.
var fixedExcludes = []string{"revision-deploys", "tmp", ".git", ".hg", ".svn", ".bzr"}

// buildExcludeSet merges the fixed exclusions with the patterns from the
// ignore source, deduplicated. Fixed entries come first, then ignore-file
// patterns in their original order, so the resulting argument list is stable
// across runs.
func buildExcludeSet(src ignorePatternSource) []string {
	seen := make(map[string]struct{}, len(fixedExcludes))
	out := make([]string, 0, len(fixedExcludes))
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, p := range fixedExcludes {
		add(p)
	}
	if src != nil {
		for _, p := range src.patterns() {
			add(p)
		}
	}
	return out
}
