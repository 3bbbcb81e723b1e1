package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/printer"
)

type ExportCmd struct {
	flags *Flags
	query queryFlags

	out string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export the current view as CSV",
		UsageText: "sheet export [query options] [--out FILE]",
		Description: `Writes the header line and every row of the view as CSV.

Without --out the CSV goes to stdout. With --out the file is replaced
atomically. The CSV dialect comes from csv.dialect in the config.`,
		Flags: append(cmd.query.flags(),
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write to this file instead of stdout",
				Destination: &cmd.out,
			},
		),
		ShellComplete: FieldCompleter,
		Action:        cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	s := cmd.flags.Sheet
	if err := cmd.query.apply(s); err != nil {
		return err
	}

	if cmd.out == "" {
		return s.ExportCSV(c.Root().Writer)
	}

	rows, err := exportFile(s, cmd.out)
	if err != nil {
		return err
	}
	printer.Ctx(ctx).Successf("Exported %d rows to %s", rows, cmd.out)
	return nil
}

// exportFile atomically writes the view of s to path and returns the row
// count.
func exportFile(s *sheet.Sheet, path string) (int, error) {
	var buf bytes.Buffer
	if err := s.ExportCSV(&buf); err != nil {
		return 0, fmt.Errorf("export csv: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(s.View()), nil
}
