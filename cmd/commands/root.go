package commands

import (
	"github.com/urfave/cli/v3"

	"taskboard/pkg/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskboard",
		Usage: "Personal task manager with pluggable storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewListCommand(),
			NewAddCommand(),
			NewShowCommand(),
			NewUpdateCommand(),
			NewDeleteCommand(),
			NewStatsCommand(),
			NewExportCommand(),
			NewResetCommand(),
		},
		DefaultCommand: "list",
	}
}
