//go:build !windows

package launcher

import "os/exec"

// shellCommand runs the joined command line through the POSIX shell, which
// strips the quoting around the executable and record paths.
func shellCommand(cmdLine string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", cmdLine)
}
