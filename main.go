package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/qrthey/tf-sources-updater/version"

	"github.com/hashicorp/cli"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Determine where logs should go in general (requested by the user).
	logWriter, err := logOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't set up log output: %s\n", err)
		return 1
	}
	if logWriter == nil {
		logWriter = io.Discard
	}
	log.SetOutput(logWriter)

	log.Printf("[INFO] tf-sources-updater version: %s", version.String())
	log.Printf("[INFO] Go runtime version: %s", runtime.Version())
	log.Printf("[INFO] CLI args: %#v", os.Args)

	initCommands()

	binName := filepath.Base(os.Args[0])
	args := os.Args[1:]

	// We shortcut "--version" and "-v" to just show the version.
	for _, arg := range args {
		if arg == "-v" || arg == "-version" || arg == "--version" {
			args = []string{"version"}
			break
		}
	}

	cliRunner := &cli.CLI{
		Name:       binName,
		Args:       args,
		Commands:   Commands,
		HelpWriter: os.Stdout,
	}

	exitCode, err := cliRunner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}

	return exitCode
}
