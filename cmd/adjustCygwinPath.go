package cmd

import "runtime"

// clientGOOS is runtime.GOOS behind a variable so tests can exercise the
// Windows-client code paths from any platform.
var clientGOOS = runtime.GOOS

// clientIsWindows reports whether the local side needs cygwin-style path and
// permission handling for rsync.
func clientIsWindows() bool {
	return clientGOOS == "windows"
}

// adjustCygwinPath rewrites a drive-letter path (C:/work) to the mount-style
// form cygwin rsync expects (/cygdrive/C/work). Paths without a leading
// drive-letter component pass through unchanged. Callers decide whether the
// adjustment applies: the client and remote sides are judged on different
// platform facts and must never share one predicate.
func adjustCygwinPath(path string) string {
	if len(path) < 2 || path[1] != ':' {
		return path
	}
	drive := path[0]
	if !isDriveLetter(drive) {
		return path
	}
	return "/cygdrive/" + string(drive) + path[2:]
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
