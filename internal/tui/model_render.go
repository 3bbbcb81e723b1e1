package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
)

// renderMain renders header, toolbar, grid, status line and tabs.
func (m Model) renderMain() string {
	w, h := m.dimensions()

	header := m.renderHeader(w)
	toolbar := m.renderToolbar(w)
	grid := m.renderGrid(w)
	status := m.renderStatusLine(w)
	tabs := m.renderTabs(w)

	// Pin status and tabs to the bottom
	top := lipgloss.JoinVertical(lipgloss.Left, header, toolbar, grid)
	fill := h - lipgloss.Height(top) - lipgloss.Height(status) - lipgloss.Height(tabs)
	if fill > 0 {
		top += strings.Repeat("\n", fill)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, status, tabs)
}

func (m Model) renderHeader(w int) string {
	title := styles.TitleStyle.Render(styles.IconSheet + " Spreadsheet")

	boxStyle := styles.SearchIdleStyle
	if m.state == stateSearching {
		boxStyle = styles.SearchStyle
	}
	searchBox := boxStyle.Render(m.search.View())

	badges := m.renderBadges()
	left := lipgloss.JoinHorizontal(lipgloss.Center, title, searchBox)

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(badges)-1, 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), badges)
}

// renderBadges summarizes the active filter, sort and hidden columns.
func (m Model) renderBadges() string {
	q := m.sheet.Query()

	var badges []string
	if !q.Filter.IsZero() {
		badges = append(badges, styles.BadgeStyle.Render(styles.IconFilter+" "+describeFilter(q.Filter)))
	}
	if q.Sort != nil {
		icon := styles.IconSortUp
		if q.Sort.Direction == sheet.Desc {
			icon = styles.IconSortDn
		}
		badges = append(badges, styles.BadgeStyle.Render(icon+" "+q.Sort.Field.Label()))
	}
	if n := len(m.hidden); n > 0 {
		badges = append(badges, styles.BadgeStyle.Render(fmt.Sprintf("%s %d hidden", styles.IconHidden, n)))
	}
	return strings.Join(badges, " ")
}

func describeFilter(f sheet.Filter) string {
	var parts []string
	for _, s := range f.Statuses {
		parts = append(parts, string(s))
	}
	for _, p := range f.Priorities {
		parts = append(parts, string(p))
	}
	if f.Submitter != "" {
		parts = append(parts, "by "+f.Submitter)
	}
	if f.DateRange.Active() {
		parts = append(parts, f.DateRange.Start+".."+f.DateRange.End)
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderToolbar(w int) string {
	hints := []struct{ key, desc string }{
		{"/", "search"},
		{"f", "filter"},
		{"s", "sort"},
		{"h", "hide"},
		{"n", "new"},
		{"e", "edit"},
		{"d", "delete"},
		{"i", "import"},
		{"x", "export"},
		{"A", "ask"},
		{"E", "extract"},
		{"?", "help"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.ToolbarKeyStyle.Render(h.key)+" "+h.desc)
	}
	line := strings.Join(parts, "  ")
	return styles.ToolbarStyle.MaxWidth(w).Render(line)
}

func (m Model) renderStatusLine(w int) string {
	view := m.sheet.View()
	total := m.sheet.Store().Len()

	parts := []string{fmt.Sprintf("%d of %d rows", len(view), total)}
	if n := len(m.selected); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if cols := m.visibleColumns(); m.column < len(cols) {
		f := cols[m.column]
		parts = append(parts, fmt.Sprintf("column %s (%s)", f.Label(), m.columnTypes[f].Label()))
	}

	sep := " " + styles.IconDot + " "
	return styles.StatusLineStyle.MaxWidth(w).Render(strings.Join(parts, sep))
}

func (m Model) renderTabs(w int) string {
	rendered := make([]string, 0, len(m.tabs)+1)
	for i, t := range m.tabs {
		if i == m.activeTab {
			rendered = append(rendered, styles.TabActiveStyle.Render(t))
		} else {
			rendered = append(rendered, styles.TabStyle.Render(t))
		}
	}
	rendered = append(rendered, styles.TabStyle.Render("+"))

	return lipgloss.NewStyle().MaxWidth(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}
