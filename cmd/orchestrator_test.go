package cmd

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func newTestRunOptions() *runOptions {
	return &runOptions{
		provisionPath:  defaultProvisionPath,
		minChefVersion: defaultMinChefVersion,
		rsyncBin:       "rsync",
		berksBin:       "berks",
		librarianBin:   "librarian-chef",
	}
}

// newTestOrchestrator wires an orchestrator with a fake SSH client, fake
// mirror transport and fake local runner, leaving the pipeline logic real.
func newTestOrchestrator(ws *workspace, opts *runOptions, sess *fakeSession) (*orchestrator, *fakeTransfer) {
	tgt := &target{host: "web1.example.com", user: "deploy"}
	o := newOrchestrator(tgt, opts, ws)
	o.client = &fakeClient{sess: sess}
	o.runner = &fakeRunner{}
	ft := &fakeTransfer{}
	o.transfer = ft
	return o, ft
}

func phaseNames(r *runReport) []string {
	names := make([]string, len(r.Phases))
	for i, p := range r.Phases {
		names[i] = p.Name
	}
	return names
}

func phaseStatus(r *runReport, name string) string {
	for _, p := range r.Phases {
		if p.Name == name {
			return p.Status
		}
	}
	return ""
}

func TestOrchestrator_HappyPath(t *testing.T) {
	ws := newTestKitchen(t)
	opts := newTestRunOptions()
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}
	o, ft := newTestOrchestrator(ws, opts, sess)

	require.NoError(t, o.run())

	// Remote commands in pipeline order: version gate, provision dir, cook.
	require.Equal(t, []string{
		chefVersionQuery,
		"mkdir -p ~/chef-solo",
		"sudo chef-solo -c ~/chef-solo/solo.rb -j ~/chef-solo/dna.json",
	}, sess.cmds)

	// Mirrors in pipeline order: kitchen units, then node context and config.
	require.Equal(t, []string{"cookbooks", "roles", "nodes", "data_bags", "dna.json", "solo.rb"}, unitLabels(ft.units))
	require.JSONEq(t, `{"run_list":[]}`, string(ft.sent["dna.json"]))
	require.Contains(t, string(ft.sent["solo.rb"]), "node_name       'web1.example.com'")

	// Node skeleton was generated into the kitchen for committing.
	require.True(t, isFile(ws.nodeFile("web1.example.com")))

	require.Equal(t, []string{
		"connect", "check chef version", "resolve node config",
		"install dependencies", "sync kitchen", "upload run config", "cook",
	}, phaseNames(o.report))
	require.Equal(t, "web1.example.com", o.report.Name)
	require.Equal(t, phaseSkipped, phaseStatus(o.report, "install dependencies"))
	require.Equal(t, phaseOK, phaseStatus(o.report, "cook"))
}

func TestOrchestrator_ValidatesBeforeAnyRemoteCall(t *testing.T) {
	ws := newTestKitchen(t)
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}

	// Bad target
	o, ft := newTestOrchestrator(ws, newTestRunOptions(), sess)
	o.tgt = &target{host: "web1"}
	err := o.run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "--user is required")
	require.Empty(t, sess.cmds)
	require.Empty(t, ft.units)

	// Bad options
	opts := newTestRunOptions()
	opts.provisionPath = ""
	o, _ = newTestOrchestrator(ws, opts, sess)
	require.Error(t, o.run())
	require.Empty(t, sess.cmds)

	// Broken kitchen layout
	require.NoError(t, os.RemoveAll(ws.rolesDir()))
	o, _ = newTestOrchestrator(ws, newTestRunOptions(), sess)
	err = o.run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "solorun init")
	require.Empty(t, sess.cmds)
}

func TestOrchestrator_DialFailureAbortsInConnectPhase(t *testing.T) {
	origDial := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = origDial })
	dialSSHFunc = func(tgt *target) (*ssh.Client, error) { return nil, errors.New("connection refused") }

	ws := newTestKitchen(t)
	o := newOrchestrator(&target{host: "web1", user: "deploy"}, newTestRunOptions(), ws)
	o.runner = &fakeRunner{}

	err := o.run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
	require.Equal(t, []string{"connect"}, phaseNames(o.report))
	require.Equal(t, phaseFailed, phaseStatus(o.report, "connect"))
}

// A version constraint violation aborts before any workspace element is
// touched or mirrored.
func TestOrchestrator_VersionGateAborts(t *testing.T) {
	ws := newTestKitchen(t)
	sess := &fakeSession{out: []byte("Chef: 0.9.12\n")}
	o, ft := newTestOrchestrator(ws, newTestRunOptions(), sess)

	err := o.run()
	require.Error(t, err)

	var mismatch *versionMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, []string{chefVersionQuery}, sess.cmds)
	require.Empty(t, ft.units)
	require.False(t, isFile(ws.nodeFile("web1.example.com")))
	require.Equal(t, phaseFailed, phaseStatus(o.report, "check chef version"))
}

func TestOrchestrator_SkipChefCheckTogglesGateOff(t *testing.T) {
	ws := newTestKitchen(t)
	opts := newTestRunOptions()
	opts.skipChefCheck = true
	sess := &fakeSession{out: []byte("junk")}
	o, _ := newTestOrchestrator(ws, opts, sess)

	require.NoError(t, o.run())
	require.Equal(t, "mkdir -p ~/chef-solo", sess.cmds[0])
	require.Equal(t, phaseSkipped, phaseStatus(o.report, "check chef version"))
}

// The deprecated toggle spelling behaves exactly like the modern one.
func TestOrchestrator_LegacySkipCheckCoerced(t *testing.T) {
	ws := newTestKitchen(t)
	opts := newTestRunOptions()
	opts.legacySkipCheck = true
	sess := &fakeSession{out: []byte("junk")}
	o, _ := newTestOrchestrator(ws, opts, sess)

	require.NoError(t, o.run())
	require.True(t, opts.skipChefCheck)
	require.Equal(t, phaseSkipped, phaseStatus(o.report, "check chef version"))
}

// A failing sync unit aborts the run: no later unit is attempted and the run
// configuration is never rendered or uploaded.
func TestOrchestrator_SyncFailureStopsPipeline(t *testing.T) {
	ws := newTestKitchen(t)
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}
	o, ft := newTestOrchestrator(ws, newTestRunOptions(), sess)
	ft.failOn = "nodes"

	err := o.run()
	require.Error(t, err)

	var te *transferError
	require.True(t, errors.As(err, &te))
	require.Equal(t, []string{"cookbooks", "roles", "nodes"}, unitLabels(ft.units))
	require.NotContains(t, sess.cmds, "sudo chef-solo -c ~/chef-solo/solo.rb -j ~/chef-solo/dna.json")
	require.Equal(t, phaseFailed, phaseStatus(o.report, "sync kitchen"))
	require.NotContains(t, phaseNames(o.report), "upload run config")
}

// sync-only runs everything through the config upload but never cooks.
func TestOrchestrator_SyncOnlySkipsCook(t *testing.T) {
	ws := newTestKitchen(t)
	opts := newTestRunOptions()
	opts.syncOnly = true
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}
	o, ft := newTestOrchestrator(ws, opts, sess)

	require.NoError(t, o.run())
	require.Equal(t, []string{chefVersionQuery, "mkdir -p ~/chef-solo"}, sess.cmds)
	require.Contains(t, unitLabels(ft.units), "solo.rb")
	require.Equal(t, phaseSkipped, phaseStatus(o.report, "cook"))
}

// A missing dependency tool is a warning, not a failure; the run continues.
func TestOrchestrator_DependencyToolMissingIsWarning(t *testing.T) {
	ws := newTestKitchen(t)
	writeTemp(t, ws.root, "Berksfile", "source 'https://supermarket.chef.io'\n")
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}
	o, ft := newTestOrchestrator(ws, newTestRunOptions(), sess)
	o.runner = &fakeRunner{missing: map[string]bool{"berks": true}}

	require.NoError(t, o.run())
	require.Equal(t, phaseWarning, phaseStatus(o.report, "install dependencies"))
	require.Equal(t, phaseOK, phaseStatus(o.report, "cook"))
	require.Contains(t, unitLabels(ft.units), "solo.rb")
}

func TestOrchestrator_ExplicitRunlistAndWhyRun(t *testing.T) {
	ws := newTestKitchen(t)
	opts := newTestRunOptions()
	opts.nodeName = "db9"
	opts.whyRun = true
	opts.overrideRunlist = "role[app]"
	sess := &fakeSession{out: []byte("Chef: 11.4.0\n")}
	o, ft := newTestOrchestrator(ws, opts, sess)

	require.NoError(t, o.run())
	require.Equal(t,
		"sudo chef-solo -c ~/chef-solo/solo.rb -j ~/chef-solo/dna.json -N db9 -W -o 'role[app]'",
		sess.cmds[len(sess.cmds)-1])
	require.True(t, isFile(ws.nodeFile("db9")))
	require.Contains(t, string(ft.sent["solo.rb"]), "node_name       'db9'")
}
