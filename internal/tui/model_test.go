package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/insight"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/data/stores"
	"github.com/hay-kot/sheet/pkg/tuitest"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.CSV.ExportPath = filepath.Join(t.TempDir(), "export", "data.csv")
	cfg.TUI.AssistDelay = 0

	codec := sheet.NewCodec(cfg.CSV.Dialect)
	codec.Now = func() time.Time { return fixedNow }
	s := sheet.New(sheet.NewStore(sheet.SeedRecords()...), codec, zerolog.Nop())

	m := New(s, &cfg, Options{
		Logger:      zerolog.Nop(),
		NotifyStore: stores.NewNotifyStore(stores.DefaultNotifyLimit),
	})
	m.now = func() time.Time { return fixedNow }

	updated, _ := m.Update(tuitest.WindowSize(160, 40))
	return updated.(Model)
}

// send feeds msgs to m in order and returns the model and the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var result tea.Model
		result, cmd = m.Update(msg)
		m = result.(Model)
	}
	return m, cmd
}

func ctrlS() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
}

func lastToast(t *testing.T, m Model) string {
	t.Helper()
	n, ok := m.toasts.Newest()
	require.True(t, ok, "no toast showing")
	return n.Message
}

func viewIDs(m Model) []string {
	view := m.sheet.View()
	ids := make([]string, len(view))
	for i, r := range view {
		ids[i] = r.ID
	}
	return ids
}

func TestNew_RendersSeedRows(t *testing.T) {
	m := newTestModel(t)

	out := tuitest.StripANSI(m.renderMain())
	assert.Contains(t, out, "Spreadsheet")
	assert.Contains(t, out, "5 of 5 rows")
	assert.Contains(t, out, "Max Khan")
	assert.Contains(t, out, "All Orders")
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('j'))
	assert.Equal(t, 2, m.cursor)

	m, _ = send(t, m, tuitest.KeyPress('G'))
	assert.Equal(t, 4, m.cursor)

	m, _ = send(t, m, tuitest.KeyPress('j'))
	assert.Equal(t, 4, m.cursor, "cursor stays on the last row")

	m, _ = send(t, m, tuitest.KeyPress('g'), tuitest.KeyPress('k'))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_LiveSearch(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('/'))
	require.Equal(t, stateSearching, m.state)

	m, _ = send(t, m, tuitest.Type("emily")...)
	assert.Equal(t, []string{"3"}, viewIDs(m))
	assert.Equal(t, "emily", m.sheet.Query().Search)

	m, _ = send(t, m, tuitest.KeyEnter())
	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, []string{"3"}, viewIDs(m), "query survives leaving search")
}

func TestModel_SelectionAndTabs(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeySpace(), tuitest.KeyPress('j'), tuitest.KeySpace())
	assert.Len(t, m.selected, 2)
	assert.Equal(t, []string{"1", "2"}, m.targetIDs())

	m, _ = send(t, m, tuitest.KeyPress(']'))
	assert.Equal(t, 1, m.activeTab)
	assert.Empty(t, m.selected, "switching tabs clears the selection")

	m, _ = send(t, m, tuitest.KeyPress('['), tuitest.KeyPress('['))
	assert.Equal(t, len(m.tabs)-1, m.activeTab, "tabs wrap around")

	m, _ = send(t, m, tuitest.KeyPress('a'))
	assert.Len(t, m.selected, 5)
	m, _ = send(t, m, tuitest.KeyPress('a'))
	assert.Empty(t, m.selected)
}

func TestModel_AddTab(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('+'))
	require.Equal(t, formAddTab, m.formKind)

	msgs := append(tuitest.Type("Archived"), ctrlS())
	m, _ = send(t, m, msgs...)

	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, "Archived", m.tabs[len(m.tabs)-1])
	assert.Equal(t, len(m.tabs)-1, m.activeTab)

	m, _ = send(t, m, tuitest.KeyPress('+'))
	msgs = append(tuitest.Type("pending"), ctrlS())
	m, _ = send(t, m, msgs...)
	assert.Len(t, m.tabs, len(config.DefaultTabs)+1, "duplicate names are rejected")
}

func TestModel_FilterDialog(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('f'))
	require.Equal(t, formFilter, m.formKind)

	// First status option is "Need to start"
	m, _ = send(t, m, tuitest.KeySpace(), ctrlS())

	require.Equal(t, stateNormal, m.state)
	assert.Equal(t, []sheet.Status{sheet.StatusNeedToStart}, m.sheet.Query().Filter.Statuses)
	assert.Equal(t, []string{"1"}, viewIDs(m))

	m, _ = send(t, m, tuitest.KeyPress('F'))
	assert.True(t, m.sheet.Query().Filter.IsZero())
	assert.Len(t, viewIDs(m), 5)
}

func TestModel_FilterDialogRejectsBadDate(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('f'))
	msgs := []tea.Msg{tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab()}
	msgs = append(msgs, tuitest.Type("yesterday")...)
	msgs = append(msgs, ctrlS())
	m, _ = send(t, m, msgs...)

	assert.Equal(t, stateFormInput, m.state, "dialog stays open on invalid input")
	assert.True(t, m.sheet.Query().Filter.IsZero())
}

func TestModel_SortDialog(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('s'))
	require.Equal(t, formSort, m.formKind)

	// Move to Direction and pick Descending
	m, _ = send(t, m, tuitest.KeyTab(), tuitest.KeyDown(), ctrlS())

	q := m.sheet.Query()
	require.NotNil(t, q.Sort)
	assert.Equal(t, sheet.FieldJobRequest, q.Sort.Field)
	assert.Equal(t, sheet.Desc, q.Sort.Direction)

	m, _ = send(t, m, tuitest.KeyPress('s'), tuitest.KeyPress('c'))
	assert.Nil(t, m.sheet.Query().Sort)
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_DeleteConfirmation(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeySpace(), tuitest.KeyPress('j'), tuitest.KeySpace())
	m, _ = send(t, m, tuitest.KeyPress('d'))
	require.Equal(t, stateConfirming, m.state)
	assert.Equal(t, []string{"1", "2"}, m.deleteIDs)

	m, _ = send(t, m, tuitest.KeyPress('y'))

	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, []string{"3", "4", "5"}, viewIDs(m))
	assert.Empty(t, m.selected)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_DeleteCancelled(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('d'), tuitest.KeyPress('n'))

	assert.Equal(t, stateNormal, m.state)
	assert.Len(t, viewIDs(m), 5)
}

func TestModel_AddAction(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('n'))
	require.Equal(t, formNewAction, m.formKind)

	msgs := tuitest.Type("Plan launch")
	msgs = append(msgs, tuitest.KeyTab())
	msgs = append(msgs, tuitest.Type("Ana")...)
	msgs = append(msgs, ctrlS())
	m, _ = send(t, m, msgs...)

	require.Equal(t, stateNormal, m.state)
	r, ok := m.sheet.Store().Get("6")
	require.True(t, ok)
	assert.Equal(t, "Plan launch", r.JobRequest)
	assert.Equal(t, "Ana", r.Submitter)
	assert.Equal(t, "14-03-2025", r.Submitted)
	assert.Equal(t, sheet.StatusNeedToStart, r.Status)
	assert.Equal(t, sheet.PriorityMedium, r.Priority)

	cur, ok := m.currentRecord()
	require.True(t, ok)
	assert.Equal(t, "6", cur.ID, "cursor follows the new row")
}

func TestModel_AddActionRequiresJobRequest(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('n'), ctrlS())

	assert.Equal(t, stateFormInput, m.state)
	assert.Equal(t, 5, m.sheet.Store().Len())
}

func TestModel_EditRow(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		m := newTestModel(t)
		before := m.sheet.Store().All()

		m, _ = send(t, m, tuitest.KeyPress('e'))
		require.Equal(t, formEditRow, m.formKind)
		assert.Equal(t, "1", m.editID)

		m, _ = send(t, m, ctrlS())
		assert.Equal(t, stateNormal, m.state)
		assert.Empty(t, m.editID)
		assert.Equal(t, before, m.sheet.Store().All())
	})

	t.Run("changes submitter", func(t *testing.T) {
		m := newTestModel(t)

		m, _ = send(t, m, tuitest.KeyPress('e'), tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())
		msgs := tuitest.Type(" Jr")
		msgs = append(msgs, ctrlS())
		m, _ = send(t, m, msgs...)

		r, ok := m.sheet.Store().Get("1")
		require.True(t, ok)
		assert.Equal(t, "Max Khan Jr", r.Submitter)
	})
}

func TestModel_HideFields(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('h'))
	require.Equal(t, formHideFields, m.formKind)

	// Uncheck Job Request, the first column
	m, _ = send(t, m, tuitest.KeySpace(), ctrlS())

	assert.True(t, m.hidden[sheet.FieldJobRequest])
	assert.NotContains(t, m.visibleColumns(), sheet.FieldJobRequest)
	assert.Contains(t, tuitest.StripANSI(m.renderMain()), "1 hidden")
}

func TestModel_Export(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, tuitest.KeyPress('x'))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, 5, done.rows)

	m, _ = send(t, m, msg)

	data, err := os.ReadFile(m.cfg.CSV.ExportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, strings.Join(sheet.Header, ","), lines[0])

	assert.Contains(t, lastToast(t, m), "Exported 5 rows")
}

func TestModel_ImportPastedText(t *testing.T) {
	m := newTestModel(t)

	msg := readImportSource("Job Request,Submitted\nNew task,01-02-2025,Complete,Bob,,High,02-02-2025,10")()
	data, ok := msg.(importDataMsg)
	require.True(t, ok)
	assert.Equal(t, "pasted text", data.source)

	m, _ = send(t, m, msg)

	assert.Equal(t, 6, m.sheet.Store().Len())
	r, ok := m.sheet.Store().Get("6")
	require.True(t, ok)
	assert.Equal(t, "New task", r.JobRequest)
	assert.Equal(t, sheet.StatusComplete, r.Status)
}

func TestModel_ImportFromFile(t *testing.T) {
	m := newTestModel(t)

	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte("header\nA\nB\n"), 0o644))

	m, _ = send(t, m, readImportSource(path)())

	assert.Equal(t, 7, m.sheet.Store().Len())
	assert.Equal(t, "Imported 2 rows from orders.csv", lastToast(t, m))
}

func TestModel_ImportEmptyTextFails(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, importDataMsg{source: "pasted text", data: []byte("  ")})

	assert.Equal(t, 5, m.sheet.Store().Len())
	assert.Contains(t, lastToast(t, m), "Import failed")
}

func TestModel_AnswerFlow(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('A'))
	require.Equal(t, formAnswer, m.formKind)

	msgs := append(tuitest.Type("how many high priority"), ctrlS())
	m, _ = send(t, m, msgs...)
	require.Equal(t, stateProcessing, m.state)

	m, _ = send(t, m, processedMsg{id: m.processID, question: "how many high priority"})

	require.Equal(t, stateShowingInfo, m.state)
	require.NotNil(t, m.info)
	assert.Nil(t, m.extracted)

	m, _ = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
	assert.Nil(t, m.info)
}

func TestModel_StaleProcessedIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('A'))
	msgs := append(tuitest.Type("status"), ctrlS())
	m, _ = send(t, m, msgs...)
	stale := m.processID

	m, _ = send(t, m, tuitest.KeyEsc())
	require.Equal(t, stateNormal, m.state)

	m, _ = send(t, m, processedMsg{id: stale, question: "status"})
	assert.Equal(t, stateNormal, m.state)
	assert.Nil(t, m.info)
}

func TestModel_ExtractAndSave(t *testing.T) {
	m := newTestModel(t)

	m.state = stateProcessing
	m.processID = 3
	m, _ = send(t, m, processedMsg{id: 3, kind: insight.KindURLs})

	require.Equal(t, stateShowingInfo, m.state)
	require.NotEmpty(t, m.extracted)

	m, cmd := send(t, m, tuitest.KeyPress('w'))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	data, err := os.ReadFile(m.extractPath(insight.KindURLs))
	require.NoError(t, err)
	assert.Equal(t, insight.FormatExtraction(m.extracted), string(data))
}

func TestModel_ColumnType(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.Key(tea.KeyRight))
	col := m.visibleColumns()[m.column]

	m, _ = send(t, m, tuitest.KeyPress('t'))
	require.Equal(t, formColumnType, m.formKind)

	// Date is the current type of Submitted; move down to URL
	m, _ = send(t, m, tuitest.KeyDown(), ctrlS())
	assert.Equal(t, insight.ColumnURL, m.columnTypes[col])
}

func TestModel_ToastsExpire(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, notificationMsg{})
	require.NotNil(t, cmd)
	require.Positive(t, m.toasts.Len())

	for range int(defaultToastTTL/toastTickInterval) + 1 {
		m, _ = send(t, m, toastTickMsg{})
	}
	assert.Zero(t, m.toasts.Len())
	assert.False(t, m.toasts.ticking)
}

func TestModel_HelpAndNotifications(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('?'))
	require.Equal(t, stateShowingHelp, m.state)
	require.NotNil(t, m.helpDialog)
	assert.Contains(t, tuitest.StripANSI(m.helpDialog.View()), "Keyboard Shortcuts")

	m, _ = send(t, m, tuitest.KeyEsc(), tuitest.KeyPress('N'))
	require.Equal(t, stateShowingInfo, m.state)
	require.NotNil(t, m.info)
	assert.Contains(t, tuitest.StripANSI(m.info.View()), "Notifications")
}

func TestModel_CtrlCQuitsFromAnyState(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tuitest.KeyPress('f'))
	m, cmd := send(t, m, tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl}))

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
