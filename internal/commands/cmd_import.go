package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/sheet/internal/core/logging"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/printer"
)

type ImportCmd struct {
	flags *Flags
	query queryFlags

	out string
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import CSV files into the sheet",
		UsageText: "sheet import [PATTERN...] [--out FILE] [query options]",
		Description: `Appends the rows of every CSV file matching the glob patterns to the seeded
sheet. Patterns support ** (e.g. 'orders/**/*.csv'). With no patterns the CSV
is read from stdin when it is piped.

The first line of each file is a header and is skipped. A file that fails to
parse adds no rows and stops the import.

Use --out to write the merged view as CSV.`,
		Flags: append(cmd.query.flags(),
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "export the merged view to this file",
				Destination: &cmd.out,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOp(ctx, "import")
	p := printer.Ctx(ctx)
	s := cmd.flags.Sheet

	if c.Args().Len() == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no files given and stdin is a terminal")
		}
		n, err := s.ImportCSV(os.Stdin)
		if err != nil {
			return fmt.Errorf("import stdin: %w", err)
		}
		log.Info().Ctx(logging.WithSource(ctx, "stdin")).Int("rows", n).Msg("imported")
		p.Successf("Imported %d rows from stdin", n)
	} else {
		files, err := expandPatterns(c.Args().Slice())
		if err != nil {
			return err
		}
		for _, file := range files {
			n, err := importFile(s, file)
			if err != nil {
				return err
			}
			log.Info().Ctx(logging.WithSource(ctx, file)).Int("rows", n).Msg("imported")
			p.Successf("Imported %d rows from %s", n, file)
		}
	}

	if err := cmd.query.apply(s); err != nil {
		return err
	}

	if cmd.out != "" {
		rows, err := exportFile(s, cmd.out)
		if err != nil {
			return err
		}
		p.Successf("Exported %d rows to %s", rows, cmd.out)
		return nil
	}

	p.Printf("%d actions in the sheet, %d in the view", s.Store().Len(), len(s.View()))
	return nil
}

// expandPatterns resolves glob patterns to a sorted, de-duplicated file list.
// A pattern that matches nothing is an error.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func importFile(s *sheet.Sheet, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	n, err := s.ImportCSV(f)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	return n, nil
}
