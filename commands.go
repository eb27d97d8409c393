package main

import (
	"os"

	"github.com/hashicorp/cli"

	"github.com/qrthey/tf-sources-updater/internal/command"
)

// Commands is the mapping of all the available commands.
var Commands map[string]cli.CommandFactory

func initCommands() {
	meta := command.Meta{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},

		// The credential for tag lookups comes from the environment
		// and is threaded down explicitly from here.
		Token: os.Getenv("GITHUB_TOKEN"),
	}

	Commands = map[string]cli.CommandFactory{
		"list": func() (cli.Command, error) {
			return &command.ListCommand{Meta: meta}, nil
		},

		"update": func() (cli.Command, error) {
			return &command.UpdateCommand{Meta: meta}, nil
		},

		"version": func() (cli.Command, error) {
			return &command.VersionCommand{Meta: meta}, nil
		},
	}
}
