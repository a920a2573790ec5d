package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLogger    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	logFile       *os.File
	Verbose       bool
)

// Trace logs a debug message that only appears when verbose logging is enabled
func Trace(format string, v ...interface{}) {
	if Verbose {
		InfoLogger.Printf(format, v...)
	}
}

// SetVerbose sets the verbose logging flag
func SetVerbose(verbose bool) {
	Verbose = verbose
}

// Init initializes the loggers, writing to scrcpyctl.log in the given directory
func Init(logDirectory string) error {
	if err := os.MkdirAll(logDirectory, os.ModePerm); err != nil {
		fmt.Printf("Failed to create log directory: %v\n", err)
		return err
	}

	// Open log file with O_SYNC to ensure no buffering
	var err error
	logFile, err = os.OpenFile(filepath.Join(logDirectory, "scrcpyctl.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0666)
	if err != nil {
		return err
	}

	// When launched from a desktop shortcut there is no console; log only to the file
	var infoWriter, warnWriter, errorWriter io.Writer
	if hasConsole() {
		infoWriter = io.MultiWriter(os.Stdout, logFile)
		warnWriter = io.MultiWriter(os.Stdout, logFile)
		errorWriter = io.MultiWriter(os.Stderr, logFile)
	} else {
		infoWriter = logFile
		warnWriter = logFile
		errorWriter = logFile
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLogger = log.New(infoWriter, "INFO: ", flags)
	WarningLogger = log.New(warnWriter, "WARN: ", flags)
	ErrorLogger = log.New(errorWriter, "ERROR: ", flags)

	return nil
}

func hasConsole() bool {
	return fileHasConsole(os.Stdout) || fileHasConsole(os.Stderr)
}

func fileHasConsole(f *os.File) bool {
	if f == nil {
		return false
	}

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
