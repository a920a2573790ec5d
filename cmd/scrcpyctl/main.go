package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/scrcpyctl/scrcpyctl/internal/config"
	"github.com/scrcpyctl/scrcpyctl/internal/httpserver"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
	"github.com/scrcpyctl/scrcpyctl/internal/options"
	"github.com/scrcpyctl/scrcpyctl/internal/settings"
)

var (
	verbose bool
	dryRun  bool
)

func main() {
	// Disable Fyne telemetry
	os.Setenv("FYNE_TELEMETRY", "0")

	// Parse command-line flags
	flag.BoolVar(&verbose, "v", false, "enable verbose logging")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.BoolVar(&dryRun, "dryRun", false, "log the scrcpy command but do not execute it")
	flag.Parse()

	// Initialize loggers
	if err := logging.Init("logs"); err != nil {
		logging.ErrorLogger.Printf("Failed to initialize log file: %v", err)
	}
	defer logging.Close()

	cfg := config.LoadConfig()
	logging.SetVerbose(verbose || cfg.Verbose)

	// Option set: defaults, then whatever the settings file has
	opts := options.Defaults()
	settingsPath := settings.DefaultPath()
	settings.Load(opts, settingsPath)

	// Pre-fill the executable path with the platform default when there is
	// no saved path and the default actually exists on this machine
	if opts.ScrcpyPath == "" {
		if _, err := os.Stat(cfg.DefaultScrcpyPath); err == nil {
			opts.ScrcpyPath = cfg.DefaultScrcpyPath
			logging.InfoLogger.Printf("Using scrcpy found at %s", cfg.DefaultScrcpyPath)
		}
	}

	ctl := newController(opts, dryRun)

	// Status server
	go func() {
		httpserver.StartServer(cfg.Port, ctl.Tokens)
	}()

	myApp := app.New()
	window := buildMainWindow(myApp, ctl)

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logging.InfoLogger.Println("Interrupt signal received. Shutting down...")
		ctl.SaveSettings(settingsPath)
		httpserver.StopServer()
		myApp.Quit()
	}()

	// Save the option set whenever the user closes the window
	window.SetCloseIntercept(func() {
		ctl.SaveSettings(settingsPath)
		window.Close()
	})

	window.ShowAndRun()

	// Settings are written unconditionally at exit, changed or not
	ctl.SaveSettings(settingsPath)
	httpserver.StopServer()
}
