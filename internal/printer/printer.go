// Package printer writes styled, human-oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

type ctxKey struct{}

// Printer writes leveled lines to an output stream.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a stderr printer when none is set.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = style.Render(prefix) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.IconCheck, styles.TextSuccessStyle, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.IconNotifyInfo, styles.TextPrimaryStyle, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.IconNotifyWarning, lipgloss.NewStyle().Foreground(styles.ColorWarning), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.IconNotifyError, styles.TextErrorStyle, format, args...)
}

// Section writes a header line.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}
