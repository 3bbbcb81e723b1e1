package tui

import (
	"bytes"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/sheet/internal/core/insight"
	"github.com/hay-kot/sheet/internal/core/notify"
	"github.com/hay-kot/sheet/internal/core/styles"
	"github.com/hay-kot/sheet/internal/tui/components"
)

const infoHelp = "[j/k] scroll  [esc] close"

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == keyCtrlC {
		return m.quit()
	}

	switch m.state {
	case stateSearching:
		return m.handleSearchKey(msg, keyStr)
	case stateFormInput:
		return m.handleFormDialogKey(msg, keyStr)
	case stateConfirming:
		return m.handleConfirmKey(msg)
	case stateProcessing:
		if keyStr == keyEsc {
			m.state = stateNormal
			m.processing = ""
		}
		return m, nil
	case stateShowingInfo:
		return m.handleInfoKey(keyStr)
	case stateShowingHelp:
		if keyStr == keyEsc || keyStr == "?" || keyStr == "q" {
			m.state = stateNormal
			m.helpDialog = nil
		}
		return m, nil
	}

	return m.handleNormalKey(keyStr)
}

func (m Model) handleNormalKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "q":
		return m.quit()
	case "/":
		m.state = stateSearching
		return m, m.search.Focus()
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "g", "home":
		m.cursor = 0
		m.clampCursor()
	case "G", "end":
		m.cursor = len(m.sheet.View()) - 1
		m.clampCursor()
	case "left":
		m.column--
		m.clampCursor()
	case "right":
		m.column++
		m.clampCursor()
	case "space":
		if r, ok := m.currentRecord(); ok {
			if m.selected[r.ID] {
				delete(m.selected, r.ID)
			} else {
				m.selected[r.ID] = true
			}
		}
	case "a":
		m.toggleSelectAll()
	case keyEsc:
		clear(m.selected)
	case "[":
		m.switchTab((m.activeTab - 1 + len(m.tabs)) % len(m.tabs))
	case "]":
		m.switchTab((m.activeTab + 1) % len(m.tabs))
	case "+":
		return m.openAddTab()
	case "s":
		return m.openSort()
	case "f":
		return m.openFilter()
	case "F":
		m.sheet.ClearFilter()
		m.clampCursor()
	case "n":
		return m.openNewAction()
	case "e", keyEnter:
		return m.openEditRow()
	case "d":
		return m.openDelete()
	case "i":
		return m.openImport()
	case "x":
		return m.exportView()
	case "h":
		return m.openHideFields()
	case "t":
		return m.openColumnType()
	case "A":
		return m.openAnswer()
	case "E":
		return m.openExtract()
	case "N":
		return m.openNotifications()
	case "?":
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", helpSections())
		m.state = stateShowingHelp
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyEsc || keyStr == keyEnter {
		m.search.Blur()
		m.state = stateNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.sheet.Query().Search {
		m.sheet.SetSearchQuery(q)
		m.cursor = 0
		m.clampCursor()
	}
	return m, cmd
}

func (m Model) handleFormDialogKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if m.formKind == formSort && keyStr == "c" {
		m.sheet.ClearSort()
		m.closeForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.formDialog, cmd = m.formDialog.Update(msg)

	if m.formDialog.Cancelled() {
		m.closeForm()
		return m, cmd
	}
	if m.formDialog.Submitted() {
		return m.submitForm()
	}
	return m, cmd
}

// submitForm applies the submitted dialog and closes it.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	d, kind, editID := m.formDialog, m.formKind, m.editID
	m.closeForm()

	var cmd tea.Cmd
	switch kind {
	case formSort:
		cmd = m.applySort(d)
	case formFilter:
		m.sheet.SetFilter(filterFromDialog(d))
		m.cursor = 0
	case formNewAction:
		cmd = m.applyNewAction(d)
	case formEditRow:
		cmd = m.applyEditRow(d, editID)
	case formImport:
		cmd = readImportSource(d.String(keySource))
	case formHideFields:
		cmd = m.applyHideFields(d)
	case formAnswer:
		q := d.String(keyQuestion)
		cmd = m.startProcessing(fmt.Sprintf("Analyzing %d actions…", len(m.sheet.View())), processedMsg{question: q})
	case formExtract:
		k, err := insight.ParseKind(d.String(keyKind))
		if err != nil {
			return m, m.notifyError("extract", "%v", err)
		}
		cmd = m.startProcessing("Extracting "+strings.ToLower(k.Label())+"…", processedMsg{kind: k})
	case formColumnType:
		cmd = m.applyColumnType(d)
	case formAddTab:
		cmd = m.applyAddTab(d)
	}

	m.clampCursor()
	return m, cmd
}

// --- Delete ---

func (m Model) openDelete() (tea.Model, tea.Cmd) {
	ids := m.targetIDs()
	if len(ids) == 0 {
		return m, nil
	}

	msg := fmt.Sprintf("Delete row %s?", ids[0])
	if len(ids) > 1 {
		msg = fmt.Sprintf("Delete %d selected rows?", len(ids))
	}
	m.deleteIDs = ids
	m.confirm = components.NewConfirmModal("Delete", msg)
	m.state = stateConfirming
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		n := m.sheet.Delete(m.deleteIDs...)
		m.deleteIDs = nil
		m.state = stateNormal
		m.pruneSelection()
		m.clampCursor()
		return m, m.notifySuccess("delete", "Deleted %d %s", n, rowsWord(n))
	case m.confirm.Cancelled():
		m.deleteIDs = nil
		m.state = stateNormal
	}
	return m, nil
}

// --- Info dialogs ---

func (m Model) handleInfoKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyEsc, "q", keyEnter:
		m.state = stateNormal
		m.info = nil
		m.extracted = nil
	case "j", "down":
		m.info.ScrollDown()
	case "k", "up":
		m.info.ScrollUp()
	case "w":
		if m.extracted == nil {
			return m, nil
		}
		path := m.extractPath(m.extractKind)
		body := insight.FormatExtraction(m.extracted)
		return m, writeFileCmd("extract", path, []byte(body), len(m.extracted))
	}
	return m, nil
}

func (m Model) handleProcessed(msg processedMsg) (tea.Model, tea.Cmd) {
	if m.state != stateProcessing || msg.id != m.processID {
		return m, nil
	}

	w, h := m.dimensions()
	view := m.sheet.View()
	m.processing = ""
	m.state = stateShowingInfo

	if msg.question != "" {
		m.info = components.NewTextDialog("Answer", "", infoHelp, w, h)
		m.info.SetContent(renderMarkdown(insight.Answer(msg.question, view), m.info.ContentWidth()))
		return m, nil
	}

	values := insight.Extract(msg.kind, view)
	items := make([]components.InfoItem, len(values))
	for i, v := range values {
		items[i] = components.InfoItem{Label: v}
	}

	title := fmt.Sprintf("%d found in %d actions", len(values), len(view))
	help := infoHelp
	footer := ""
	if len(values) == 0 {
		footer = styles.TextMutedStyle.Render("Nothing to extract.")
	} else {
		help = fmt.Sprintf("[w] save to %s  %s", msg.kind.FileName(), infoHelp)
		m.extracted = values
		m.extractKind = msg.kind
	}

	m.info = components.NewInfoDialog(msg.kind.Label(), []components.InfoSection{{Title: title, Items: items}}, footer, help, w, h)
	return m, nil
}

// renderMarkdown renders md with the theme's glamour style, falling back to
// the raw text.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (m Model) openNotifications() (tea.Model, tea.Cmd) {
	history, err := m.notifyBus.History()
	if err != nil {
		return m, m.notifyError("notifications", "load notifications: %v", err)
	}

	items := make([]components.InfoItem, 0, len(history))
	for _, n := range history {
		items = append(items, components.InfoItem{
			Label:  n.CreatedAt.Format("15:04:05"),
			Value:  n.Message,
			Status: levelStatus(n.Level),
		})
	}

	footer := ""
	if len(items) == 0 {
		footer = styles.TextMutedStyle.Render("No notifications yet.")
	}

	w, h := m.dimensions()
	m.info = components.NewInfoDialog("Notifications", []components.InfoSection{{Items: items}}, footer, infoHelp, w, h)
	m.state = stateShowingInfo
	return m, nil
}

func levelStatus(l notify.Level) components.InfoStatus {
	switch l {
	case notify.LevelSuccess:
		return components.InfoStatusPass
	case notify.LevelWarning:
		return components.InfoStatusWarn
	case notify.LevelError:
		return components.InfoStatusFail
	default:
		return components.InfoStatusNone
	}
}

// --- Import / export results ---

func (m Model) handleImportData(msg importDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notifyError("import", "Import failed: %v", msg.err)
	}

	n, err := m.sheet.ImportCSV(bytes.NewReader(msg.data))
	if err != nil {
		m.log.Error().Err(err).Str("source", msg.source).Msg("import failed")
		return m, m.notifyError("import", "Import failed: %v", err)
	}

	m.clampCursor()
	return m, m.notifySuccess("import", "Imported %d %s from %s", n, rowsWord(n), msg.source)
}

func (m Model) exportView() (tea.Model, tea.Cmd) {
	var buf bytes.Buffer
	if err := m.sheet.ExportCSV(&buf); err != nil {
		return m, m.notifyError("export", "Export failed: %v", err)
	}
	return m, writeFileCmd("export", m.cfg.CSV.ExportPath, buf.Bytes(), len(m.sheet.View()))
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("op", msg.op).Str("path", msg.path).Msg("write failed")
		return m, m.notifyError(msg.op, "Could not write %s: %v", msg.path, msg.err)
	}

	m.log.Info().Str("op", msg.op).Str("path", msg.path).Int("rows", msg.rows).Msg("file written")
	if msg.op == "extract" {
		return m, m.notifySuccess(msg.op, "Saved %d values to %s", msg.rows, msg.path)
	}
	return m, m.notifySuccess(msg.op, "Exported %d %s to %s", msg.rows, rowsWord(msg.rows), msg.path)
}

// --- Selection and tabs ---

// toggleSelectAll selects every visible row, or clears the selection when
// all of them are already selected.
func (m *Model) toggleSelectAll() {
	view := m.sheet.View()

	all := len(view) > 0
	for _, r := range view {
		if !m.selected[r.ID] {
			all = false
			break
		}
	}

	clear(m.selected)
	if all {
		return
	}
	for _, r := range view {
		m.selected[r.ID] = true
	}
}

// switchTab activates tab i. The selection is cleared; the query is kept.
func (m *Model) switchTab(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	m.activeTab = i
	clear(m.selected)
}

func (m *Model) moveCursorTo(id string) {
	for i, r := range m.sheet.View() {
		if r.ID == id {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
}

func rowsWord(n int) string {
	if n == 1 {
		return "row"
	}
	return "rows"
}
