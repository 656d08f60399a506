package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"taskboard/pkg/export"
)

// NewExportCommand returns the export subcommand.
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the filtered task list",
		Flags: append(listFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: " + strings.Join(export.Formats, ", "),
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file (default stdout)",
			},
		),
		Action: runExport,
	}
}

func runExport(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	if !slices.Contains(export.Formats, format) {
		return fmt.Errorf("unknown format %s", format)
	}

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	l := a.board()
	if err := applyListFlags(cmd, l); err != nil {
		return err
	}

	list := a.store.FilteredTasks()
	data, err := export.Export(list, format)
	if err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}

	path := cmd.String("out")
	if path == "" {
		_, err = a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(a.out, "Exported %d tasks to %s\n", len(list), path)
	return nil
}
