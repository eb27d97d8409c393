package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

// ListCommand is a Command implementation that prints the git-sourced
// module references found in a directory tree.
type ListCommand struct {
	Meta
}

func (c *ListCommand) Run(args []string) int {
	args = c.Meta.process(args)

	var showLocations, checkUpgrades bool
	var strategyName string
	cmdFlags := c.Meta.defaultFlagSet("list")
	cmdFlags.BoolVar(&showLocations, "locations", false, "show file locations")
	cmdFlags.BoolVar(&checkUpgrades, "upgrades", false, "query for proposed upgrades")
	cmdFlags.StringVar(&strategyName, "strategy", string(semtag.StrategyHighest), "selection strategy")
	if err := cmdFlags.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	args = cmdFlags.Args()
	if len(args) > 1 {
		c.Ui.Error("The list command expects at most one argument, the directory to scan.")
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
	if err := u.List(context.Background(), showLocations, checkUpgrades); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	return 0
}

func (c *ListCommand) Help() string {
	helpText := `
Usage: tf-sources-updater list [options] [DIR]

  Scans DIR (default ".") recursively for Terraform configuration
  files and prints every git-sourced module reference that pins a
  GitHub repository to a tag.

  This command is read-only; it never modifies any file.

Options:

  -locations       Also print the files each reference appears in.

  -upgrades        Also query each repository for its available tags
                   and show the upgrade the selection strategy would
                   apply.

  -strategy=name   Selection strategy used with -upgrades. Either
                   "highest-semver" (the default) or
                   "highest-semver-current-major".

  -no-color        Disable ANSI color output.
`
	return strings.TrimSpace(helpText)
}

func (c *ListCommand) Synopsis() string {
	return "List git-sourced module references and their pinned tags"
}
