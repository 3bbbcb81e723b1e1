package sheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// Dialect selects the CSV encoding rules.
type Dialect string

const (
	// DialectCompat quotes only the job request on export and strips every
	// double quote on import. Commas inside fields are not preserved.
	DialectCompat Dialect = "compat"
	// DialectStandard reads and writes RFC 4180 CSV for every field.
	DialectStandard Dialect = "standard"
)

// Dialects lists the supported dialects.
var Dialects = []Dialect{DialectCompat, DialectStandard}

// Valid reports whether d is a supported dialect.
func (d Dialect) Valid() bool {
	return d == DialectCompat || d == DialectStandard
}

// Header is the fixed first line of exported CSV.
var Header = []string{"Job Request", "Submitted", "Status", "Submitter", "Assigned", "Priority", "Due Date", "Est. Value"}

// Codec converts records to and from CSV.
type Codec struct {
	Dialect Dialect
	// Now supplies the date used for missing submitted and due dates.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewCodec returns a codec for the given dialect. An empty dialect means
// DialectCompat.
func NewCodec(d Dialect) Codec {
	if d == "" {
		d = DialectCompat
	}
	return Codec{Dialect: d, Now: time.Now}
}

// Export writes the header and one line per record.
func (c Codec) Export(w io.Writer, records []Record) error {
	if c.Dialect == DialectStandard {
		return c.exportStandard(w, records)
	}

	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(strings.Join(Header, ","))
	for _, r := range records {
		values := fields(r)
		values[0] = `"` + values[0] + `"`
		_ = bw.WriteByte('\n')
		_, _ = bw.WriteString(strings.Join(values, ","))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func (c Codec) exportStandard(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(fields(r)); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Parse reads CSV input and returns the rows after the header. The header is
// discarded without validation; columns are positional.
func (c Codec) Parse(r io.Reader) ([]NewRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read input: %v", ErrInvalidFormat, err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: input is empty", ErrInvalidFormat)
	}

	var rows [][]string
	if c.Dialect == DialectStandard {
		rows, err = splitStandard(text)
		if err != nil {
			return nil, err
		}
	} else {
		rows = splitCompat(text)
	}

	today := c.today()
	out := make([]NewRecord, 0, len(rows))
	for _, values := range rows {
		out = append(out, recordFromValues(values, today))
	}
	return out, nil
}

func (c Codec) today() string {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(DateLayout)
}

// splitCompat splits on line breaks and commas, dropping every double quote.
func splitCompat(text string) [][]string {
	lines := strings.Split(text, "\n")

	rows := make([][]string, 0, len(lines))
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")
		for i, v := range values {
			values[i] = strings.ReplaceAll(v, `"`, "")
		}
		rows = append(rows, values)
	}
	return rows
}

func splitStandard(text string) ([][]string, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[1:], nil
}

func recordFromValues(values []string, today string) NewRecord {
	at := func(i int, fallback string) string {
		if i < len(values) && values[i] != "" {
			return values[i]
		}
		return fallback
	}

	return NewRecord{
		JobRequest: at(0, ""),
		Submitted:  at(1, today),
		Status:     ParseStatus(at(2, string(DefaultStatus))),
		Submitter:  at(3, ""),
		Assigned:   at(4, ""),
		Priority:   ParsePriority(at(5, string(DefaultPriority))),
		DueDate:    at(6, today),
		EstValue:   at(7, "0"),
	}
}

func fields(r Record) []string {
	return []string{
		r.JobRequest,
		r.Submitted,
		string(r.Status),
		r.Submitter,
		r.Assigned,
		string(r.Priority),
		r.DueDate,
		r.EstValue,
	}
}
