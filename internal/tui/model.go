// Package tui implements the interactive spreadsheet view.
package tui

import (
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/insight"
	"github.com/hay-kot/sheet/internal/core/notify"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
	"github.com/hay-kot/sheet/internal/tui/components"
	"github.com/hay-kot/sheet/internal/tui/components/form"
	tuinotify "github.com/hay-kot/sheet/internal/tui/notify"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateSearching
	stateFormInput
	stateConfirming
	stateProcessing
	stateShowingInfo
	stateShowingHelp
)

// formKind identifies which dialog the active form belongs to.
type formKind int

const (
	formNone formKind = iota
	formSort
	formFilter
	formNewAction
	formEditRow
	formImport
	formHideFields
	formAnswer
	formExtract
	formColumnType
	formAddTab
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

// Options configures the TUI behavior.
type Options struct {
	Logger      zerolog.Logger
	NotifyStore notify.Store // notification history; nil disables history
	Warnings    []string     // startup warnings to display as toasts
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg      *config.Config
	sheet    *sheet.Sheet
	log      zerolog.Logger
	state    UIState
	width    int
	height   int
	quitting bool

	// Grid
	search      textinput.Model
	cursor      int // row index into the view
	offset      int // first rendered row
	column      int // index into visibleColumns()
	selected    map[string]bool
	hidden      map[sheet.Field]bool
	columnTypes map[sheet.Field]insight.ColumnType

	// Tabs
	tabs      []string
	activeTab int

	// Dialogs
	formDialog *form.Dialog
	formKind   formKind
	editID     string
	confirm    components.ConfirmModal
	deleteIDs  []string
	info       *components.InfoDialog
	helpDialog *components.HelpDialog

	// Processing (answer and extract)
	spinner     spinner.Model
	processID   int // ignores results of cancelled runs
	processing  string
	extracted   []string
	extractKind insight.Kind

	// Notifications
	notifyBus *tuinotify.Bus
	toasts    *toastStack

	startupWarnings []string
	now             func() time.Time
}

// importDataMsg carries CSV bytes read off the Update loop.
type importDataMsg struct {
	source string
	data   []byte
	err    error
}

// exportDoneMsg reports the result of an atomic file write.
type exportDoneMsg struct {
	op   string
	path string
	rows int
	err  error
}

// processedMsg fires when the assist delay of a question or extraction ends.
type processedMsg struct {
	id       int
	question string
	kind     insight.Kind
}

// notificationMsg carries a notification from an async tea.Cmd into the Update loop.
type notificationMsg struct {
	notification notify.Notification
}

// New creates a new TUI model over s.
func New(s *sheet.Sheet, cfg *config.Config, opts Options) Model {
	search := textinput.New()
	search.Prompt = styles.IconSearch + " "
	search.Placeholder = "Search within sheet"
	search.SetWidth(32)
	searchStyles := textinput.DefaultStyles(true)
	searchStyles.Focused.Prompt = styles.TextPrimaryStyle
	searchStyles.Blurred.Prompt = styles.TextMutedStyle
	searchStyles.Cursor.Color = styles.ColorPrimary
	search.SetStyles(searchStyles)
	search.SetValue(s.Query().Search)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.TextPrimaryStyle

	hidden := make(map[sheet.Field]bool, len(cfg.TUI.HiddenColumns))
	for _, f := range cfg.TUI.HiddenColumns {
		hidden[f] = true
	}

	tabs := cfg.TUI.Tabs
	if len(tabs) == 0 {
		tabs = config.DefaultTabs
	}

	notifyBus := tuinotify.NewBus(opts.NotifyStore, opts.Logger)
	toasts := newToastStack(defaultToastTTL, defaultMaxToasts)
	notifyBus.Subscribe(toasts.Push)

	return Model{
		cfg:             cfg,
		sheet:           s,
		log:             opts.Logger,
		search:          search,
		selected:        map[string]bool{},
		hidden:          hidden,
		columnTypes:     insight.DefaultColumnTypes(),
		tabs:            append([]string(nil), tabs...),
		spinner:         sp,
		notifyBus:       notifyBus,
		toasts:          toasts,
		startupWarnings: opts.Warnings,
		now:             time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if len(m.startupWarnings) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(m.startupWarnings))
	for _, w := range m.startupWarnings {
		n := notify.Notification{Level: notify.LevelWarning, Op: "startup", Message: w}
		cmds = append(cmds, func() tea.Msg { return notificationMsg{notification: n} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case importDataMsg:
		return m.handleImportData(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case processedMsg:
		return m.handleProcessed(msg)

	case toastTickMsg:
		return m.handleToastTick(msg)
	case notificationMsg:
		return m.handleNotification(msg)

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input ticks go to whichever input owns focus.
	if m.state == stateFormInput && m.formDialog != nil {
		var cmd tea.Cmd
		m.formDialog, cmd = m.formDialog.Update(msg)
		return m, cmd
	}
	if m.state == stateSearching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.dimensions()
	mainView := m.renderMain()

	var content string
	switch {
	case m.state == stateFormInput && m.formDialog != nil:
		modal := styles.ModalStyle.Render(m.formDialog.View())
		content = components.Overlay(mainView, modal, w, h)
	case m.state == stateConfirming:
		content = m.confirm.Overlay(mainView, w, h)
	case m.state == stateProcessing:
		body := lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " "+m.processing)
		content = components.Overlay(mainView, styles.ModalStyle.Render(body), w, h)
	case m.state == stateShowingInfo && m.info != nil:
		content = m.info.Overlay(mainView, w, h)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	content = m.toasts.Overlay(content, w, h)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) dimensions() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func (m *Model) ensureToastTick() tea.Cmd {
	return m.toasts.startTick()
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	return m, m.toasts.onTick()
}

func (m Model) handleNotification(msg notificationMsg) (tea.Model, tea.Cmd) {
	m.notifyBus.Publish(msg.notification)
	return m, m.ensureToastTick()
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(op, format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(op, format, args...)
	return m.ensureToastTick()
}

func (m *Model) notifySuccess(op, format string, args ...any) tea.Cmd {
	m.notifyBus.Successf(op, format, args...)
	return m.ensureToastTick()
}

func (m *Model) notifyInfo(op, format string, args ...any) tea.Cmd {
	m.notifyBus.Infof(op, format, args...)
	return m.ensureToastTick()
}

// targetIDs returns the selected row IDs in view order, or the cursor row
// when nothing is selected.
func (m Model) targetIDs() []string {
	view := m.sheet.View()

	var ids []string
	for _, r := range view {
		if m.selected[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 && m.cursor < len(view) {
		ids = []string{view[m.cursor].ID}
	}
	return ids
}

// currentRecord returns the record under the cursor.
func (m Model) currentRecord() (sheet.Record, bool) {
	view := m.sheet.View()
	if m.cursor < 0 || m.cursor >= len(view) {
		return sheet.Record{}, false
	}
	return view[m.cursor], true
}

// pruneSelection drops selected IDs that are no longer in the store.
func (m *Model) pruneSelection() {
	for id := range m.selected {
		if _, ok := m.sheet.Store().Get(id); !ok {
			delete(m.selected, id)
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.sheet.View())
	m.cursor = max(min(m.cursor, n-1), 0)

	rows := m.gridRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if rows > 0 && m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(min(m.offset, n-rows), 0)

	cols := m.visibleColumns()
	m.column = max(min(m.column, len(cols)-1), 0)
}

// extractPath is where the extraction of kind is written, next to the CSV
// export.
func (m Model) extractPath(kind insight.Kind) string {
	return filepath.Join(filepath.Dir(m.cfg.CSV.ExportPath), kind.FileName())
}

func (m Model) assistDelay() time.Duration {
	return m.cfg.TUI.AssistDelay
}
