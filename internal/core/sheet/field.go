package sheet

import "fmt"

// Field identifies a record column. The values match the JSON keys of Record.
type Field string

const (
	FieldID         Field = "id"
	FieldJobRequest Field = "jobRequest"
	FieldSubmitted  Field = "submitted"
	FieldStatus     Field = "status"
	FieldSubmitter  Field = "submitter"
	FieldAssigned   Field = "assigned"
	FieldPriority   Field = "priority"
	FieldDueDate    Field = "dueDate"
	FieldEstValue   Field = "estValue"
)

// Columns lists the user-facing data columns in display and CSV order.
var Columns = []Field{
	FieldJobRequest,
	FieldSubmitted,
	FieldStatus,
	FieldSubmitter,
	FieldAssigned,
	FieldPriority,
	FieldDueDate,
	FieldEstValue,
}

var fieldLabels = map[Field]string{
	FieldID:         "ID",
	FieldJobRequest: "Job Request",
	FieldSubmitted:  "Submitted",
	FieldStatus:     "Status",
	FieldSubmitter:  "Submitter",
	FieldAssigned:   "Assigned",
	FieldPriority:   "Priority",
	FieldDueDate:    "Due Date",
	FieldEstValue:   "Est. Value",
}

// Label returns the display label of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Valid reports whether f names a record field.
func (f Field) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

// ParseField accepts either a field key ("dueDate") or its label ("Due Date").
func ParseField(s string) (Field, error) {
	if f := Field(s); f.Valid() {
		return f, nil
	}
	for f, l := range fieldLabels {
		if l == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Value returns the string value of field f on r.
func (r Record) Value(f Field) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldJobRequest:
		return r.JobRequest
	case FieldSubmitted:
		return r.Submitted
	case FieldStatus:
		return string(r.Status)
	case FieldSubmitter:
		return r.Submitter
	case FieldAssigned:
		return r.Assigned
	case FieldPriority:
		return string(r.Priority)
	case FieldDueDate:
		return r.DueDate
	case FieldEstValue:
		return r.EstValue
	default:
		return ""
	}
}
