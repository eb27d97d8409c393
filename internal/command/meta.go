package command

import (
	"flag"
	"io"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/colorstring"

	"github.com/qrthey/tf-sources-updater/internal/githubtags"
	"github.com/qrthey/tf-sources-updater/internal/semtag"
	"github.com/qrthey/tf-sources-updater/internal/updater"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Color bool
	Token string
	Ui    cli.Ui

	// TagSource overrides the GitHub client when set; tests use this
	// to avoid the network.
	TagSource updater.TagSource
}

// Colorize returns the colorization structure for a command.
func (m *Meta) Colorize() *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !m.Color,
		Reset:   true,
	}
}

// process will process the meta-parameters out of the arguments. This
// will potentially modify the args in-place. It will return the
// resulting slice.
func (m *Meta) process(args []string) []string {
	m.Color = true

	for i, v := range args {
		if v == "-no-color" {
			m.Color = false
			return append(args[:i], args[i+1:]...)
		}
	}

	return args
}

// defaultFlagSet creates a default flag set for commands.
func (m *Meta) defaultFlagSet(n string) *flag.FlagSet {
	f := flag.NewFlagSet(n, flag.ContinueOnError)
	f.SetOutput(io.Discard)

	// Errors are printed by the command itself, with usage help, so
	// the flag package's own output would duplicate them.
	f.Usage = func() {}

	return f
}

// newUpdater wires an updater for one run with the settings threaded
// in from the command line and the environment.
func (m *Meta) newUpdater(root string, strategy semtag.Strategy) *updater.Updater {
	source := m.TagSource
	if source == nil {
		source = githubtags.NewClient(m.Token)
	}
	return &updater.Updater{
		Root:     root,
		Strategy: strategy,
		Source:   source,
		Ui:       m.Ui,
		CLIColor: m.Colorize(),
	}
}
