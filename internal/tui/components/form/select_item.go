package form

// Option is a select choice. Label is rendered, Value is returned.
type Option struct {
	Label string
	Value string
}

// Options builds options whose label and value are the same.
func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Label: v, Value: v}
	}
	return out
}

// selectItem is the list item used by select and multi-select fields.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
