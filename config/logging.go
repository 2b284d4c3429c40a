package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter is the writer used for application and database logs. Request
// handlers and GORM share it so the /logs route shows one interleaved stream.
var LogWriter io.Writer = os.Stdout

// LogFilePath returns the path to the backend log file. The directory is
// overridable via LOG_DIR for deployments with a dedicated log volume.
func LogFilePath() string {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}
	return filepath.Join(dir, "ethno-api.log")
}

// InitLogging prepares the log file and configures the standard logger
// output. Falls back to stdout-only when the file cannot be opened, so a
// read-only filesystem never blocks startup.
func InitLogging() (*os.File, io.Writer) {
	logPath := LogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file %s: %v", logPath, err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(LogWriter)
	return logFile, LogWriter
}
