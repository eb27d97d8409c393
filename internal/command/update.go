package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

// UpdateCommand is a Command implementation that rewrites module
// references to the tag selected by the configured strategy.
type UpdateCommand struct {
	Meta
}

func (c *UpdateCommand) Run(args []string) int {
	args = c.Meta.process(args)

	var strategyName string
	cmdFlags := c.Meta.defaultFlagSet("update")
	cmdFlags.StringVar(&strategyName, "strategy", string(semtag.StrategyHighest), "selection strategy")
	if err := cmdFlags.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	args = cmdFlags.Args()
	if len(args) > 1 {
		c.Ui.Error("The update command expects at most one argument, the directory to scan.")
		return 1
	}
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	strategy, err := semtag.ParseStrategy(strategyName)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	u := c.newUpdater(root, strategy)
	if err := u.Update(context.Background()); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	return 0
}

func (c *UpdateCommand) Help() string {
	helpText := `
Usage: tf-sources-updater update [options] [DIR]

  Scans DIR (default ".") recursively for Terraform configuration
  files, fetches the tags available for every referenced GitHub
  repository, and rewrites each reference to the tag selected by the
  strategy. Only the tag portion of a reference changes; the rest of
  every file is left byte for byte as it was.

  A reference whose current tag the repository does not know is left
  unchanged. If any repository's tags cannot be fetched the run stops
  before writing any file.

  Set GITHUB_TOKEN to authenticate tag lookups, which is required for
  private repositories and avoids the anonymous rate limit.

Options:

  -strategy=name   Selection strategy: "highest-semver" (the default)
                   picks the highest tag overall, while
                   "highest-semver-current-major" never crosses a
                   major version boundary.

  -no-color        Disable ANSI color output.
`
	return strings.TrimSpace(helpText)
}

func (c *UpdateCommand) Synopsis() string {
	return "Rewrite module references to their selected newer tags"
}
