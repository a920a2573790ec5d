//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// shellCommand runs the joined command line through cmd.exe. The child gets
// its own console and process group so closing the controller never tears
// down a running mirror session.
func shellCommand(cmdLine string) *exec.Cmd {
	cmd := exec.Command("cmd", "/C", cmdLine)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	return cmd
}
