package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

// FieldCompleter suggests field keys, the values accepted by --sort. Set it
// as the ShellComplete field of commands that take query flags.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func FieldCompleter(ctx context.Context, cmd *cli.Command) {
	if args := cmd.Args(); args.Present() {
		last := args.Slice()[args.Len()-1]
		if len(last) > 0 && last[0] == '-' {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}
	}

	w := cmd.Root().Writer
	_, _ = fmt.Fprintln(w, sheet.FieldID)
	for _, f := range sheet.Columns {
		_, _ = fmt.Fprintln(w, f)
	}
}
