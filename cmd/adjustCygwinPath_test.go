package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdjustCygwinPath_DriveLetterRewritten(t *testing.T) {
	require.Equal(t, "/cygdrive/C/work", adjustCygwinPath("C:/work"))
	require.Equal(t, "/cygdrive/d/kitchen/cookbooks", adjustCygwinPath("d:/kitchen/cookbooks"))
}

func TestAdjustCygwinPath_NonDrivePathsUnchanged(t *testing.T) {
	require.Equal(t, "/home/u/kitchen", adjustCygwinPath("/home/u/kitchen"))
	require.Equal(t, "relative/path", adjustCygwinPath("relative/path"))
	require.Equal(t, "~/chef-solo", adjustCygwinPath("~/chef-solo"))
	require.Equal(t, "", adjustCygwinPath(""))
	require.Equal(t, "c", adjustCygwinPath("c"))
	// First byte must be a letter for the drive convention to apply.
	require.Equal(t, "1:/x", adjustCygwinPath("1:/x"))
}

func TestClientIsWindows_FollowsGOOS(t *testing.T) {
	orig := clientGOOS
	t.Cleanup(func() { clientGOOS = orig })

	clientGOOS = "windows"
	require.True(t, clientIsWindows())
	clientGOOS = "linux"
	require.False(t, clientIsWindows())
}
