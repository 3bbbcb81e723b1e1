package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/pkg/iojson"
)

const jobRequestWidth = 48

type LsCmd struct {
	flags *Flags
	query queryFlags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the actions in the current view",
		UsageText: "sheet ls [query options] [--json]",
		Description: `Displays a table of the seeded actions after search, filter and sort.

Use --json for one JSON object per row.`,
		Flags: append(cmd.query.flags(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		),
		ShellComplete: FieldCompleter,
		Action:        cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	s := cmd.flags.Sheet
	if err := cmd.query.apply(s); err != nil {
		return err
	}

	view := s.View()
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range view {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
		}
		return nil
	}

	if len(view) == 0 {
		fmt.Fprintf(os.Stderr, "No actions match\n")
		return nil
	}

	writeTable(out, view)
	return nil
}

func writeTable(out io.Writer, records []sheet.Record) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tJOB REQUEST\tSUBMITTED\tSTATUS\tSUBMITTER\tPRIORITY\tDUE\tVALUE")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			ansi.Truncate(r.JobRequest, jobRequestWidth, "…"),
			r.Submitted,
			r.Status,
			r.Submitter,
			r.Priority,
			r.DueDate,
			r.EstValue,
		)
	}

	_ = w.Flush()
}
