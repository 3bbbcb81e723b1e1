package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sheet/internal/core/logging"
	"github.com/hay-kot/sheet/internal/data/stores"
	"github.com/hay-kot/sheet/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	notifyLimit int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "notify-limit",
			Usage:       "number of notifications kept in the history dialog",
			Sources:     cli.EnvVars("SHEET_NOTIFY_LIMIT"),
			Value:       stores.DefaultNotifyLimit,
			Destination: &cmd.notifyLimit,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	var warnings []string
	if cmd.flags.Sheet.Store().Len() == 0 {
		warnings = append(warnings, "The seed file has no rows. Press i to import a CSV.")
	}

	m := tui.New(cmd.flags.Sheet, cmd.flags.Config, tui.Options{
		Logger:      logging.Component("tui"),
		NotifyStore: stores.NewNotifyStore(cmd.notifyLimit),
		Warnings:    warnings,
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
