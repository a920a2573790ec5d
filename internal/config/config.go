package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
)

// Config holds application-level settings that are not scrcpy options:
// where the status server listens and how chatty the logs are. It lives in
// config.toml next to the executable (or in the working directory), unlike
// the per-user option set which has its own JSON file.
type Config struct {
	Port              int    `toml:"port"`              // status server port
	Verbose           bool   `toml:"verbose"`           // verbose logging
	DefaultScrcpyPath string `toml:"defaultScrcpyPath"` // pre-fill when no settings file exists yet
}

// LoadConfig reads config.toml if present and fills the gaps with defaults
// and environment overrides.
func LoadConfig() Config {
	var config Config
	config.Port = 8091 // default status server port

	loaded := false
	for _, dir := range baseDirs() {
		path := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &config); err != nil {
				logging.ErrorLogger.Printf("Error reading %s: %v", path, err)
			} else {
				logging.Trace("Loaded application config from %s", path)
				loaded = true
			}
			break
		}
	}
	if !loaded {
		logging.Trace("config.toml file not found, using default configuration")
	}

	if config.DefaultScrcpyPath == "" {
		if runtime.GOOS == "windows" {
			config.DefaultScrcpyPath = `C:\Program Files\scrcpy\scrcpy.exe`
		} else {
			config.DefaultScrcpyPath = "/usr/bin/scrcpy"
		}
	}

	if port := os.Getenv("SCRCPYCTL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Port = p
		} else {
			logging.WarningLogger.Printf("Ignoring invalid SCRCPYCTL_PORT %q", port)
		}
	}
	if path := os.Getenv("SCRCPY_PATH"); path != "" {
		config.DefaultScrcpyPath = path
	}

	return config
}

// baseDirs lists the places config.toml may live, most specific first.
func baseDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	return dirs
}
