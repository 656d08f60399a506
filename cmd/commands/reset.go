package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewResetCommand returns the reset subcommand.
func NewResetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Drop stored tasks; the next run starts from the sample tasks",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.adapter.Reset(ctx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintf(a.out, "Slot %q removed.\n", a.adapter.Key())
			return nil
		},
	}
}
