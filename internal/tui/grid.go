package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/sheet/internal/core/insight"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
)

// Rows taken by everything except grid rows: header (3), toolbar, grid
// header, status line and tabs.
const gridChrome = 7

const (
	markWidth  = 2 // selection mark column
	idWidth    = 4
	cellGap    = 1
	minFlexCol = 16
)

// columnWidths are the fixed widths of every column except Job Request,
// which takes the remaining space.
var columnWidths = map[sheet.Field]int{
	sheet.FieldSubmitted: 10,
	sheet.FieldStatus:    13,
	sheet.FieldSubmitter: 14,
	sheet.FieldAssigned:  18,
	sheet.FieldPriority:  8,
	sheet.FieldDueDate:   10,
	sheet.FieldEstValue:  11,
}

// visibleColumns lists the data columns that are not hidden, in display order.
func (m Model) visibleColumns() []sheet.Field {
	cols := make([]sheet.Field, 0, len(sheet.Columns))
	for _, f := range sheet.Columns {
		if !m.hidden[f] {
			cols = append(cols, f)
		}
	}
	return cols
}

// gridRows is the number of record rows that fit on screen.
func (m Model) gridRows() int {
	_, h := m.dimensions()
	return max(h-gridChrome, 1)
}

// layout returns the width of each visible column for a terminal of width w.
func (m Model) layout(w int) ([]sheet.Field, []int) {
	cols := m.visibleColumns()
	widths := make([]int, len(cols))

	used := markWidth + idWidth + cellGap
	flex := -1
	for i, f := range cols {
		if f == sheet.FieldJobRequest {
			flex = i
			continue
		}
		widths[i] = columnWidths[f]
		used += widths[i] + cellGap
	}
	if flex >= 0 {
		widths[flex] = max(w-used-cellGap, minFlexCol)
	}
	return cols, widths
}

func (m Model) renderGrid(w int) string {
	cols, widths := m.layout(w)
	view := m.sheet.View()

	lines := make([]string, 0, m.gridRows()+1)
	lines = append(lines, m.renderGridHeader(cols, widths, w))

	if len(view) == 0 {
		msg := "No actions match the current view."
		if m.sheet.Store().Len() == 0 {
			msg = "No actions yet. Press n to add one or i to import a CSV."
		}
		lines = append(lines, styles.GridEmptyStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	end := min(m.offset+m.gridRows(), len(view))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(view[i], i == m.cursor, cols, widths, w))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderGridHeader(cols []sheet.Field, widths []int, w int) string {
	var b strings.Builder
	b.WriteString(pad("", markWidth))
	b.WriteString(pad("#", idWidth))

	q := m.sheet.Query()
	for i, f := range cols {
		label := f.Label()
		if q.Sort != nil && q.Sort.Field == f {
			icon := styles.IconSortUp
			if q.Sort.Direction == sheet.Desc {
				icon = styles.IconSortDn
			}
			label += " " + icon
		}

		cell := pad(ansi.Truncate(label, widths[i], "…"), widths[i])
		if i == m.column {
			cell = lipgloss.NewStyle().Underline(true).Render(cell)
		}
		b.WriteString(strings.Repeat(" ", cellGap))
		b.WriteString(cell)
	}
	return styles.GridHeaderStyle.Width(w).Render(b.String())
}

func (m Model) renderRow(r sheet.Record, isCursor bool, cols []sheet.Field, widths []int, w int) string {
	var b strings.Builder

	mark := "  "
	if m.selected[r.ID] {
		mark = styles.GridSelectedStyle.Render(styles.IconCheck) + " "
	}
	b.WriteString(mark)
	b.WriteString(styles.TextMutedStyle.Render(pad(r.ID, idWidth)))

	for i, f := range cols {
		b.WriteString(strings.Repeat(" ", cellGap))
		b.WriteString(m.renderCell(r, f, widths[i]))
	}

	line := b.String()
	if isCursor {
		return styles.GridCursorStyle.Width(w).Render(line)
	}
	return styles.GridCellStyle.Width(w).Render(line)
}

// renderCell truncates and pads the value of f, then styles it by field and
// column type.
func (m Model) renderCell(r sheet.Record, f sheet.Field, width int) string {
	value := ansi.Truncate(r.Value(f), width, "…")
	gap := strings.Repeat(" ", max(width-ansi.StringWidth(value), 0))

	switch f {
	case sheet.FieldStatus:
		return styles.StatusStyle(r.Status).Render(value) + gap
	case sheet.FieldPriority:
		return styles.PriorityStyle(r.Priority).Render(value) + gap
	}

	switch m.columnTypes[f] {
	case insight.ColumnNumber:
		return gap + value
	case insight.ColumnURL, insight.ColumnEmail:
		if value == "" {
			return gap
		}
		return styles.GridLinkStyle.Render(value) + gap
	default:
		return value + gap
	}
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
