package main

import (
	"fmt"
	"sync"

	"github.com/scrcpyctl/scrcpyctl/internal/command"
	"github.com/scrcpyctl/scrcpyctl/internal/launcher"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
	"github.com/scrcpyctl/scrcpyctl/internal/options"
	"github.com/scrcpyctl/scrcpyctl/internal/settings"
)

// controller owns the live option set. All UI mutations go through Update so
// the status server goroutine can read a consistent snapshot at any time.
type controller struct {
	mu     sync.Mutex
	opts   *options.Options
	dryRun bool

	// onChange is invoked after every mutation; the UI hooks its preview
	// refresh here.
	onChange func()
}

func newController(opts *options.Options, dryRun bool) *controller {
	return &controller{opts: opts, dryRun: dryRun}
}

// Snapshot returns a copy of the current options for reading.
func (c *controller) Snapshot() options.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.opts
}

// Update applies a mutation to the option set and notifies the UI.
func (c *controller) Update(fn func(*options.Options)) {
	c.mu.Lock()
	fn(c.opts)
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange()
	}
}

// Tokens builds the current command argument list, or nil when no executable
// is selected.
func (c *controller) Tokens() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return command.Build(c.opts)
}

// Launch starts scrcpy with the current options. The child process is not
// tracked beyond a successful start.
func (c *controller) Launch() error {
	tokens := c.Tokens()
	if tokens == nil {
		return fmt.Errorf("scrcpy executable path is not set")
	}

	if c.dryRun {
		logging.InfoLogger.Printf("Dry run, not executing: %s", command.Join(tokens))
		return nil
	}

	c.mu.Lock()
	workDir := launcher.WorkingDir(c.opts.ScrcpyPath)
	c.mu.Unlock()

	return launcher.Launch(tokens, workDir)
}

// SaveSettings writes the option set to the settings file. Errors are logged
// inside the settings package and never surface here.
func (c *controller) SaveSettings(path string) {
	snapshot := c.Snapshot()
	settings.Save(&snapshot, path)
}
