package commands

import (
	"fmt"

	"github.com/delphix/savedump/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("savedump version %s (%s, built %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
