// Package launcher starts scrcpy as a detached child process.
package launcher

import (
	"fmt"
	"path/filepath"

	"github.com/scrcpyctl/scrcpyctl/internal/command"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
)

// WorkingDir returns the directory scrcpy should run in: the one containing
// the executable, so it finds its bundled adb and server payload.
func WorkingDir(scrcpyPath string) string {
	return filepath.Dir(scrcpyPath)
}

// Launch joins the argument tokens into a single command line and starts it
// through the platform shell in the given working directory. The child is
// never waited on and gets no pipes; only a failure to start is reported.
func Launch(tokens []string, workingDir string) error {
	cmdLine := command.Join(tokens)
	logging.InfoLogger.Printf("Executing: %s", cmdLine)

	cmd := shellCommand(cmdLine)
	cmd.Dir = workingDir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch scrcpy: %w", err)
	}

	// Detach: release the handle so the child outlives us and, on Unix,
	// init reaps it instead of leaving a zombie behind.
	if err := cmd.Process.Release(); err != nil {
		logging.WarningLogger.Printf("Could not release scrcpy process handle: %v", err)
	}

	return nil
}
