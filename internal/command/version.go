package command

import (
	"fmt"

	"github.com/qrthey/tf-sources-updater/version"
)

// VersionCommand is a Command implementation that prints the version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("tf-sources-updater v%s", version.String()))
	return 0
}

func (c *VersionCommand) Help() string {
	return "Usage: tf-sources-updater version"
}

func (c *VersionCommand) Synopsis() string {
	return "Print the tf-sources-updater version"
}
