package form

import (
	"io"
	"slices"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

// MultiSelectField is a multi-select form field with checkbox toggles.
type MultiSelectField struct {
	list       list.Model
	options    []Option
	checked    map[int]bool
	label_     string
	focused    bool
	validation FieldValidation
	err        string
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	check := "[ ] "
	if d.checked[item.index] {
		check = styles.FormCheckedStyle.Render("[x]") + " "
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.FormItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor+check+style.Render(item.label))
}

// NewMultiSelectFormField creates a multi-select field. Options whose value
// is in checked start out checked.
func NewMultiSelectFormField(label string, options []Option, checked []string) *MultiSelectField {
	items := make([]list.Item, len(options))
	state := make(map[int]bool)
	for i, opt := range options {
		items[i] = selectItem{label: opt.Label, index: i}
		if slices.Contains(checked, opt.Value) {
			state[i] = true
		}
	}

	return &MultiSelectField{
		list:    newOptionList(items, multiSelectDelegate{checked: state}),
		options: options,
		checked: state,
		label_:  label,
	}
}

// WithValidation sets the rules checked on submit.
func (f *MultiSelectField) WithValidation(v FieldValidation) *MultiSelectField {
	f.validation = v
	return f
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "space" && !f.list.SettingFilter() {
		if si, ok := f.list.SelectedItem().(selectItem); ok {
			f.checked[si.index] = !f.checked[si.index]
			f.err = ""
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) View() string {
	view := renderList(f.label_, f.focused, f.list)
	if f.err != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, styles.FormErrorStyle.Render(f.err))
	}
	return view
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}

func (f *MultiSelectField) Validate() bool {
	f.err = f.validation.ValidateSelection(len(f.SelectedIndices()))
	return f.err == ""
}

func (f *MultiSelectField) Focused() bool { return f.focused }
func (f *MultiSelectField) Label() string { return f.label_ }

// Value returns the checked option values as []string.
func (f *MultiSelectField) Value() any {
	var selected []string
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt.Value)
		}
	}
	return selected
}

// SelectedIndices returns the indices of checked items.
func (f *MultiSelectField) SelectedIndices() []int {
	var indices []int
	for i := range f.options {
		if f.checked[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
