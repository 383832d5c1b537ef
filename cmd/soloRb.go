package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// soloRbTemplate is the chef-solo configuration rendered for every run. All
// paths resolve relative to the file's own location, so the rendered config
// never bakes in the provisioning path.
const soloRbTemplate = `base = File.expand_path('..', __FILE__)
{{- if .NodeName }}
node_name       '{{ .NodeName }}'
{{- end }}
file_cache_path File.expand_path('cache', base)
cookbook_path   {{ .CookbookPath }}
role_path       File.expand_path('roles', base)
data_bag_path   File.expand_path('data_bags', base)
{{- if .IncludeSecret }}
encrypted_data_bag_secret File.expand_path('data_bag_key', base)
{{- end }}
`

var soloRbTmpl = template.Must(template.New("solo.rb").Parse(soloRbTemplate))

// cookbookDirNames lists the provision-relative cookbook directories in
// resolution order. Chef resolves duplicates toward the end of the list, so
// vendored berks-cookbooks sits first where anything checked in overrides it
// and site-cookbooks stays last as the local patch layer.
func cookbookDirNames(ws *workspace) []string {
	var names []string
	if isDir(ws.berksCookbooksDir()) {
		names = append(names, "berks-cookbooks")
	}
	names = append(names, "cookbooks")
	if isDir(ws.siteCookbooksDir()) {
		names = append(names, "site-cookbooks")
	}
	return names
}

// renderSoloRb produces the solo.rb body for this workspace, run options and
// resolved node name. An empty node name omits the node_name line and leaves
// the choice to chef-solo.
func renderSoloRb(ws *workspace, opts *runOptions, nodeName string) ([]byte, error) {
	names := cookbookDirNames(ws)
	entries := make([]string, len(names))
	for i, n := range names {
		entries[i] = fmt.Sprintf("File.expand_path('%s', base)", n)
	}
	data := struct {
		NodeName      string
		CookbookPath  string
		IncludeSecret bool
	}{
		NodeName:      nodeName,
		CookbookPath:  "[ " + strings.Join(entries, ", ") + " ]",
		IncludeSecret: opts.secretFile != "" && isFile(opts.secretFile),
	}
	var buf bytes.Buffer
	if err := soloRbTmpl.Execute(&buf, &data); err != nil {
		return nil, fmt.Errorf("render solo.rb: %w", err)
	}
	return buf.Bytes(), nil
}
