package insight

import (
	"fmt"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

// ColumnType controls how a grid column is formatted.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnNumber ColumnType = "number"
	ColumnDate   ColumnType = "date"
	ColumnURL    ColumnType = "url"
	ColumnEmail  ColumnType = "email"
)

// ColumnTypes lists every column type in menu order.
var ColumnTypes = []ColumnType{ColumnText, ColumnNumber, ColumnDate, ColumnURL, ColumnEmail}

type columnInfo struct {
	label       string
	description string
	example     string
}

var columnTypeInfo = map[ColumnType]columnInfo{
	ColumnText:   {"Text", "Regular text content", "Job Request, Names, Descriptions"},
	ColumnNumber: {"Number", "Numeric values and calculations", "Est. Value, Quantities, Scores"},
	ColumnDate:   {"Date", "Date and time values", "Due Date, Submitted, Created"},
	ColumnURL:    {"URL/Link", "Website links and URLs", "Assigned links, References"},
	ColumnEmail:  {"Email", "Email addresses", "Contact emails, Notifications"},
}

func (c ColumnType) Label() string       { return columnTypeInfo[c].label }
func (c ColumnType) Description() string { return columnTypeInfo[c].description }
func (c ColumnType) Example() string     { return columnTypeInfo[c].example }

// Valid reports whether c is a known column type.
func (c ColumnType) Valid() bool {
	_, ok := columnTypeInfo[c]
	return ok
}

// ParseColumnType validates a raw column type name.
func ParseColumnType(s string) (ColumnType, error) {
	c := ColumnType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown column type %q", s)
	}
	return c, nil
}

// DefaultColumnTypes returns the initial type of every data column.
func DefaultColumnTypes() map[sheet.Field]ColumnType {
	types := make(map[sheet.Field]ColumnType, len(sheet.Columns))
	for _, f := range sheet.Columns {
		types[f] = ColumnText
	}
	types[sheet.FieldSubmitted] = ColumnDate
	types[sheet.FieldDueDate] = ColumnDate
	types[sheet.FieldAssigned] = ColumnURL
	types[sheet.FieldEstValue] = ColumnNumber
	return types
}
