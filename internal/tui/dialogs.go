package tui

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/sheet/internal/core/insight"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/tui/components/form"
)

// Value keys of the dialog fields.
const (
	keyField     = "field"
	keyDirection = "direction"
	keyStatus    = "status"
	keyPriority  = "priority"
	keySubmitter = "submitter"
	keyFrom      = "from"
	keyTo        = "to"
	keyJob       = "jobRequest"
	keySubmitted = "submitted"
	keyAssigned  = "assigned"
	keyDue       = "dueDate"
	keyValue     = "estValue"
	keySource    = "source"
	keyColumns   = "columns"
	keyQuestion  = "question"
	keyKind      = "kind"
	keyType      = "type"
	keyTab       = "tab"
)

var (
	dateRe         = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	filterDateRe   = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4}|\d{4}-\d{2}-\d{2})$`)
	dateRule       = form.FieldValidation{Pattern: dateRe, Hint: "DD-MM-YYYY"}
	filterDateRule = form.FieldValidation{Pattern: filterDateRe, Hint: "DD-MM-YYYY or YYYY-MM-DD"}
)

func (m *Model) openForm(kind formKind, d *form.Dialog) (tea.Model, tea.Cmd) {
	m.formKind = kind
	m.formDialog = d
	m.state = stateFormInput
	return *m, nil
}

func (m *Model) closeForm() {
	m.formKind = formNone
	m.formDialog = nil
	m.editID = ""
	m.state = stateNormal
}

func fieldOptions(fields ...sheet.Field) []form.Option {
	out := make([]form.Option, len(fields))
	for i, f := range fields {
		out[i] = form.Option{Label: f.Label(), Value: string(f)}
	}
	return out
}

func statusOptions() []form.Option {
	values := make([]string, len(sheet.Statuses))
	for i, s := range sheet.Statuses {
		values[i] = string(s)
	}
	return form.Options(values...)
}

func priorityOptions() []form.Option {
	values := make([]string, len(sheet.Priorities))
	for i, p := range sheet.Priorities {
		values[i] = string(p)
	}
	return form.Options(values...)
}

// --- Sort ---

func (m Model) openSort() (tea.Model, tea.Cmd) {
	field, dir := string(sheet.FieldJobRequest), string(sheet.Asc)
	if s := m.sheet.Query().Sort; s != nil {
		field, dir = string(s.Field), string(s.Direction)
	}

	fields := append([]sheet.Field{sheet.FieldID}, sheet.Columns...)
	d := form.NewDialog("Sort Data",
		[]form.Field{
			form.NewSelectFormField("Sort by", fieldOptions(fields...), field),
			form.NewSelectFormField("Direction", []form.Option{
				{Label: "Ascending", Value: string(sheet.Asc)},
				{Label: "Descending", Value: string(sheet.Desc)},
			}, dir),
		},
		[]string{keyField, keyDirection},
	)
	d.Hint = "c: clear sort"
	return m.openForm(formSort, d)
}

func (m *Model) applySort(d *form.Dialog) tea.Cmd {
	field := sheet.Field(d.String(keyField))
	if err := m.sheet.SetSort(field, sheet.Direction(d.String(keyDirection))); err != nil {
		return m.notifyError("sort", "sort: %v", err)
	}
	m.cursor = 0
	return nil
}

// --- Filter ---

func (m Model) openFilter() (tea.Model, tea.Cmd) {
	f := m.sheet.Query().Filter

	statuses := make([]string, len(f.Statuses))
	for i, s := range f.Statuses {
		statuses[i] = string(s)
	}
	priorities := make([]string, len(f.Priorities))
	for i, p := range f.Priorities {
		priorities[i] = string(p)
	}

	d := form.NewDialog("Filter Data",
		[]form.Field{
			form.NewMultiSelectFormField("Status", statusOptions(), statuses),
			form.NewMultiSelectFormField("Priority", priorityOptions(), priorities),
			form.NewTextField("Submitter", "Name contains", f.Submitter),
			form.NewTextField("Submitted from", "DD-MM-YYYY", f.DateRange.Start).WithValidation(filterDateRule),
			form.NewTextField("Submitted to", "DD-MM-YYYY", f.DateRange.End).WithValidation(filterDateRule),
		},
		[]string{keyStatus, keyPriority, keySubmitter, keyFrom, keyTo},
	)
	d.Hint = "space: toggle  both dates are needed for a range"
	return m.openForm(formFilter, d)
}

// filterFromDialog builds the filter; a range with a single bound is dropped.
func filterFromDialog(d *form.Dialog) sheet.Filter {
	var f sheet.Filter
	for _, s := range d.Strings(keyStatus) {
		f.Statuses = append(f.Statuses, sheet.Status(s))
	}
	for _, p := range d.Strings(keyPriority) {
		f.Priorities = append(f.Priorities, sheet.Priority(p))
	}
	f.Submitter = d.String(keySubmitter)

	r := sheet.DateRange{Start: d.String(keyFrom), End: d.String(keyTo)}
	if r.Active() {
		f.DateRange = r
	}
	return f
}

// --- New action / edit row ---

func (m Model) openNewAction() (tea.Model, tea.Cmd) {
	d := form.NewDialog("New Action",
		[]form.Field{
			form.NewTextAreaField("Job Request", "What needs to be done?", "").
				WithValidation(form.FieldValidation{Required: true}),
			form.NewTextField("Submitter", "Your name", "").
				WithValidation(form.FieldValidation{Required: true}),
			form.NewTextField("Assigned", "www.example.com", ""),
			form.NewSelectFormField("Priority", priorityOptions(), string(sheet.DefaultPriority)),
			form.NewTextField("Due Date", "DD-MM-YYYY", "").WithValidation(dateRule),
			form.NewTextField("Est. Value", "1,000,000", ""),
		},
		[]string{keyJob, keySubmitter, keyAssigned, keyPriority, keyDue, keyValue},
	)
	return m.openForm(formNewAction, d)
}

func (m *Model) applyNewAction(d *form.Dialog) tea.Cmd {
	r := m.sheet.Add(sheet.NewRecord{
		JobRequest: d.String(keyJob),
		Submitted:  m.now().Format(sheet.DateLayout),
		Status:     sheet.StatusNeedToStart,
		Submitter:  d.String(keySubmitter),
		Assigned:   d.String(keyAssigned),
		Priority:   sheet.Priority(d.String(keyPriority)),
		DueDate:    d.String(keyDue),
		EstValue:   d.String(keyValue),
	})
	m.moveCursorTo(r.ID)
	return m.notifySuccess("add", "Added action %s", r.ID)
}

func (m Model) openEditRow() (tea.Model, tea.Cmd) {
	r, ok := m.currentRecord()
	if !ok {
		return m, nil
	}

	d := form.NewDialog("Edit Row "+r.ID,
		[]form.Field{
			form.NewTextAreaField("Job Request", "", r.JobRequest).
				WithValidation(form.FieldValidation{Required: true}),
			form.NewTextField("Submitted", "DD-MM-YYYY", r.Submitted).WithValidation(dateRule),
			form.NewSelectFormField("Status", statusOptions(), string(r.Status)),
			form.NewTextField("Submitter", "", r.Submitter).
				WithValidation(form.FieldValidation{Required: true}),
			form.NewTextField("Assigned", "", r.Assigned),
			form.NewSelectFormField("Priority", priorityOptions(), string(r.Priority)),
			form.NewTextField("Due Date", "DD-MM-YYYY", r.DueDate).WithValidation(dateRule),
			form.NewTextField("Est. Value", "", r.EstValue),
		},
		[]string{keyJob, keySubmitted, keyStatus, keySubmitter, keyAssigned, keyPriority, keyDue, keyValue},
	)
	m.editID = r.ID
	return m.openForm(formEditRow, d)
}

func (m *Model) applyEditRow(d *form.Dialog, id string) tea.Cmd {
	from, ok := m.sheet.Store().Get(id)
	if !ok {
		return m.notifyError("edit", "Row %s no longer exists", id)
	}

	to := sheet.Record{
		ID:         from.ID,
		JobRequest: d.String(keyJob),
		Submitted:  d.String(keySubmitted),
		Status:     sheet.Status(d.String(keyStatus)),
		Submitter:  d.String(keySubmitter),
		Assigned:   d.String(keyAssigned),
		Priority:   sheet.Priority(d.String(keyPriority)),
		DueDate:    d.String(keyDue),
		EstValue:   d.String(keyValue),
	}

	p := sheet.Diff(from, to)
	if p.Empty() {
		return m.notifyInfo("edit", "No changes to row %s", from.ID)
	}
	m.sheet.Update(from.ID, p)
	return m.notifySuccess("edit", "Updated row %s", from.ID)
}

// --- Import ---

func (m Model) openImport() (tea.Model, tea.Cmd) {
	source := form.NewTextAreaField("File path or CSV text", "orders.csv", "").
		WithValidation(form.FieldValidation{Required: true})
	source.SetHeight(6)

	d := form.NewDialog("Import CSV", []form.Field{source}, []string{keySource})
	d.Hint = "the first line is a header and is skipped; ctrl+s imports"
	return m.openForm(formImport, d)
}

// --- Hide fields ---

func (m Model) openHideFields() (tea.Model, tea.Cmd) {
	visible := make([]string, 0, len(sheet.Columns))
	for _, f := range m.visibleColumns() {
		visible = append(visible, string(f))
	}

	d := form.NewDialog("Hide Fields",
		[]form.Field{form.NewMultiSelectFormField("Visible columns", fieldOptions(sheet.Columns...), visible)},
		[]string{keyColumns},
	)
	d.Hint = "space: toggle visibility"
	return m.openForm(formHideFields, d)
}

func (m *Model) applyHideFields(d *form.Dialog) tea.Cmd {
	visible := d.Strings(keyColumns)
	clear(m.hidden)
	for _, f := range sheet.Columns {
		if !slices.Contains(visible, string(f)) {
			m.hidden[f] = true
		}
	}
	m.clampCursor()
	return nil
}

// --- Answer / extract ---

func (m Model) openAnswer() (tea.Model, tea.Cmd) {
	d := form.NewDialog("Ask About The Data",
		[]form.Field{
			form.NewTextField("Question", "How many high priority items do I have?", "").
				WithValidation(form.FieldValidation{Required: true, MaxLength: 200}),
		},
		[]string{keyQuestion},
	)
	d.Hint = fmt.Sprintf("answers cover the %d actions in the current view", len(m.sheet.View()))
	return m.openForm(formAnswer, d)
}

func (m Model) openExtract() (tea.Model, tea.Cmd) {
	options := make([]form.Option, len(insight.Kinds))
	for i, k := range insight.Kinds {
		options[i] = form.Option{Label: k.Label() + " · " + k.Description(), Value: string(k)}
	}

	d := form.NewDialog("Extract Data",
		[]form.Field{form.NewSelectFormField("Extract", options, "")},
		[]string{keyKind},
	)
	return m.openForm(formExtract, d)
}

// startProcessing shows the spinner and schedules the result after the
// configured assist delay.
func (m *Model) startProcessing(label string, msg processedMsg) tea.Cmd {
	m.processID++
	msg.id = m.processID
	m.processing = label
	m.state = stateProcessing

	delay := tea.Tick(m.assistDelay(), func(_ time.Time) tea.Msg { return msg })
	return tea.Batch(m.spinner.Tick, delay)
}

// --- Column type ---

func (m Model) openColumnType() (tea.Model, tea.Cmd) {
	cols := m.visibleColumns()
	if len(cols) == 0 {
		return m, nil
	}
	f := cols[m.column]

	options := make([]form.Option, len(insight.ColumnTypes))
	for i, t := range insight.ColumnTypes {
		options[i] = form.Option{Label: t.Label() + " · " + t.Description(), Value: string(t)}
	}

	d := form.NewDialog("Column Type: "+f.Label(),
		[]form.Field{form.NewSelectFormField("Type", options, string(m.columnTypes[f]))},
		[]string{keyType},
	)
	d.Hint = "e.g. " + m.columnTypes[f].Example()
	return m.openForm(formColumnType, d)
}

func (m *Model) applyColumnType(d *form.Dialog) tea.Cmd {
	cols := m.visibleColumns()
	if m.column >= len(cols) {
		return nil
	}

	t, err := insight.ParseColumnType(d.String(keyType))
	if err != nil {
		return m.notifyError("column", "%v", err)
	}
	f := cols[m.column]
	m.columnTypes[f] = t
	return m.notifySuccess("column", "%s is now a %s column", f.Label(), t.Label())
}

// --- Tabs ---

func (m Model) openAddTab() (tea.Model, tea.Cmd) {
	d := form.NewDialog("Add Tab",
		[]form.Field{
			form.NewTextField("Name", "Archived", "").
				WithValidation(form.FieldValidation{Required: true, MaxLength: 24}),
		},
		[]string{keyTab},
	)
	return m.openForm(formAddTab, d)
}

func (m *Model) applyAddTab(d *form.Dialog) tea.Cmd {
	name := d.String(keyTab)
	if slices.ContainsFunc(m.tabs, func(t string) bool { return strings.EqualFold(t, name) }) {
		return m.notifyError("tab", "Tab %q already exists", name)
	}
	m.tabs = append(m.tabs, name)
	m.switchTab(len(m.tabs) - 1)
	return nil
}
