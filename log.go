package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/logutils"
)

// These are the environmental variables that determine if we log, and
// if we log whether or not the log should go to a file.
const (
	EnvLog     = "TF_UPDATER_LOG"      // Set to a level to enable logging
	EnvLogFile = "TF_UPDATER_LOG_PATH" // Set to a file
)

var validLevels = []logutils.LogLevel{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// logOutput determines where we should send logs (if anywhere) and the
// log level.
func logOutput() (io.Writer, error) {
	envLevel := os.Getenv(EnvLog)
	if envLevel == "" {
		return nil, nil
	}

	var writer io.Writer = os.Stderr
	if logPath := os.Getenv(EnvLogFile); logPath != "" {
		var err error
		writer, err = os.Create(logPath)
		if err != nil {
			return nil, err
		}
	}

	logLevel := logutils.LogLevel("TRACE")
	if isValidLevel(envLevel) {
		// allow following for better ux: info, Info or INFO
		logLevel = logutils.LogLevel(strings.ToUpper(envLevel))
	} else {
		log.Printf("[WARN] Invalid log level: %q. Valid levels are: %+v",
			envLevel, validLevels)
	}

	return &logutils.LevelFilter{
		Levels:   validLevels,
		MinLevel: logLevel,
		Writer:   writer,
	}, nil
}

func isValidLevel(level string) bool {
	for _, l := range validLevels {
		if strings.ToUpper(level) == string(l) {
			return true
		}
	}

	return false
}
