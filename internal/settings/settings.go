// Package settings persists the option set as a flat JSON file in the user's
// home directory. The file format is shared with earlier versions of the
// controller, so keys never change and unknown keys are ignored.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/scrcpyctl/scrcpyctl/internal/logging"
	"github.com/scrcpyctl/scrcpyctl/internal/options"
)

const fileName = ".scrcpy_gui_settings.json"

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		logging.WarningLogger.Printf("Cannot determine home directory, using cwd for settings: %v", err)
		return fileName
	}
	return filepath.Join(home, fileName)
}

// Save writes the option set to path, overwriting whatever is there. Failures
// are logged and swallowed; saving runs at exit and must never take the
// application down with it.
func Save(opts *options.Options, path string) {
	data, err := json.MarshalIndent(opts, "", "    ")
	if err != nil {
		logging.ErrorLogger.Printf("Failed to encode settings: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logging.ErrorLogger.Printf("Failed to save settings to %s: %v", path, err)
		return
	}
	logging.Trace("Saved settings to %s", path)
}

// Load overlays values from the file at path onto opts. Keys present in the
// file overwrite the corresponding field; keys absent keep their current
// value; keys the option set does not know are ignored. A missing, empty,
// corrupt, or mistyped file leaves opts completely untouched.
func Load(opts *options.Options, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.WarningLogger.Printf("Cannot read settings file %s: %v", path, err)
		}
		return
	}

	// Decode into a scratch copy so a type mismatch halfway through cannot
	// leave the live options partially overwritten.
	scratch := *opts
	if err := json.Unmarshal(data, &scratch); err != nil {
		logging.WarningLogger.Printf("Ignoring unreadable settings file %s: %v", path, err)
		return
	}
	*opts = scratch
	logging.Trace("Loaded settings from %s", path)
}
