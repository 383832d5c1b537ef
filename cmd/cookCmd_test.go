package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
	"gopkg.in/yaml.v3"
)

// setupCookStubs replaces every remote seam so `cook` runs end to end against
// an in-memory transport: dialing succeeds, one-shot commands answer with the
// given chef version, streamed commands succeed, and mirrors are recorded.
func setupCookStubs(t *testing.T, chefVersion string) (*fakeTransfer, *[]string, *[]string) {
	t.Helper()
	resetConfig()

	origDial := dialSSHFunc
	origTransfer := newTransferFunc
	t.Cleanup(func() {
		dialSSHFunc = origDial
		newTransferFunc = origTransfer
	})
	dialSSHFunc = func(tgt *target) (*ssh.Client, error) { return nil, nil }

	ft := &fakeTransfer{}
	newTransferFunc = func(tgt *target, opts *runOptions, runner localRunner) mirrorTransfer { return ft }

	ran := stubRunRemote(t, func(cmd string) ([]byte, int, error) {
		return []byte(chefVersion), 0, nil
	})
	streamed := stubStreamRemote(t, func(cmd string, stdout, stderr io.Writer) (int, error) {
		return 0, nil
	})
	return ft, ran, streamed
}

func TestCookCmd_FullPipeline(t *testing.T) {
	ws := newTestKitchen(t)
	chdir(t, ws.root)
	ft, ran, streamed := setupCookStubs(t, "Chef: 11.4.0\n")

	reportPath := filepath.Join(t.TempDir(), "run.yaml")
	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy", "--report", reportPath})
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, []string{chefVersionQuery, "mkdir -p ~/chef-solo"}, *ran)
	require.Equal(t, []string{"sudo chef-solo -c ~/chef-solo/solo.rb -j ~/chef-solo/dna.json"}, *streamed)
	require.Equal(t, []string{"cookbooks", "roles", "nodes", "data_bags", "dna.json", "solo.rb"}, unitLabels(ft.units))
	require.True(t, isFile(filepath.Join(ws.root, "nodes", "web1.example.com.json")))

	body, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep runReport
	require.NoError(t, yaml.Unmarshal(body, &rep))
	require.Equal(t, "web1.example.com", rep.Name)
	require.Len(t, rep.Phases, 7)
}

func TestCookCmd_WorkspaceFileFillsUnsetFlags(t *testing.T) {
	ws := newTestKitchen(t)
	writeTemp(t, ws.root, ".solorun.toml", "provision_path = \"/srv/kitchen\"\nnode_name = \"app7\"\n")
	chdir(t, ws.root)
	_, ran, streamed := setupCookStubs(t, "Chef: 11.4.0\n")

	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy"})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, *ran, "mkdir -p /srv/kitchen")
	require.Equal(t, []string{"sudo chef-solo -c /srv/kitchen/solo.rb -j /srv/kitchen/dna.json -N app7"}, *streamed)
	require.True(t, isFile(filepath.Join(ws.root, "nodes", "app7.json")))
}

func TestCookCmd_FlagBeatsWorkspaceFile(t *testing.T) {
	ws := newTestKitchen(t)
	writeTemp(t, ws.root, ".solorun.toml", "provision_path = \"/srv/kitchen\"\n")
	chdir(t, ws.root)
	_, ran, _ := setupCookStubs(t, "Chef: 11.4.0\n")

	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy", "--provision-path", "/opt/kitchen"})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, *ran, "mkdir -p /opt/kitchen")
	require.NotContains(t, *ran, "mkdir -p /srv/kitchen")
}

func TestCookCmd_MalformedWorkspaceFile(t *testing.T) {
	ws := newTestKitchen(t)
	writeTemp(t, ws.root, ".solorun.toml", "provision_path = [broken\n")
	chdir(t, ws.root)
	_, ran, _ := setupCookStubs(t, "Chef: 11.4.0\n")

	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), ".solorun.toml")
	require.Empty(t, *ran)
}

func TestCookCmd_RemoteRunFailureSurfacesExitCode(t *testing.T) {
	ws := newTestKitchen(t)
	chdir(t, ws.root)
	setupCookStubs(t, "Chef: 11.4.0\n")
	stubStreamRemote(t, func(cmd string, stdout, stderr io.Writer) (int, error) {
		return 7, nil
	})

	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy"})
	err := rootCmd.Execute()
	require.Error(t, err)

	var runErr *runFailureError
	require.True(t, errors.As(err, &runErr))
	require.Equal(t, 7, runErr.exitCode)
	require.Contains(t, err.Error(), "exit code 7")
}

// A report is still written when the run aborts, so the failing phase is
// visible after the fact.
func TestCookCmd_ReportCoversFailedRuns(t *testing.T) {
	ws := newTestKitchen(t)
	chdir(t, ws.root)
	setupCookStubs(t, "Chef: 0.9.0\n")

	reportPath := filepath.Join(t.TempDir(), "run.yaml")
	rootCmd.SetArgs([]string{"cook", "--target", "web1.example.com", "--user", "deploy", "--report", reportPath})
	require.Error(t, rootCmd.Execute())

	body, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep runReport
	require.NoError(t, yaml.Unmarshal(body, &rep))
	require.NotEmpty(t, rep.Phases)
	last := rep.Phases[len(rep.Phases)-1]
	require.Equal(t, "check chef version", last.Name)
	require.Equal(t, phaseFailed, last.Status)
}
