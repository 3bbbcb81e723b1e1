package sheet

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the display format of record dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// isoDateLayout is accepted for filter bounds, matching HTML date inputs.
const isoDateLayout = "2006-01-02"

// ParseDate parses a DD-MM-YYYY or YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want DD-MM-YYYY or YYYY-MM-DD", s)
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders the view by a single field.
type Sort struct {
	Field     Field     `json:"key"`
	Direction Direction `json:"direction"`
}

// DateRange is an inclusive range over the submitted date. Both bounds must be
// set for the range to apply.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Active reports whether both bounds are set.
func (d DateRange) Active() bool {
	return strings.TrimSpace(d.Start) != "" && strings.TrimSpace(d.End) != ""
}

// Filter is a conjunction of optional predicates. Zero-valued predicates are
// not applied.
type Filter struct {
	Statuses   []Status   `json:"status,omitempty"`
	Priorities []Priority `json:"priority,omitempty"`
	Submitter  string     `json:"submitter,omitempty"`
	DateRange  DateRange  `json:"dateRange,omitzero"`
}

// IsZero reports whether the filter has no active predicates.
func (f Filter) IsZero() bool {
	return len(f.Statuses) == 0 &&
		len(f.Priorities) == 0 &&
		strings.TrimSpace(f.Submitter) == "" &&
		!f.DateRange.Active()
}

// Query is the complete input of the view pipeline besides the records.
type Query struct {
	Search string
	Filter Filter
	Sort   *Sort
}

// ComputeView applies search, then filter, then sort and returns a new slice.
// The input is never modified.
func ComputeView(records []Record, q Query) []Record {
	out := make([]Record, 0, len(records))

	match := newMatcher(q)
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
	}

	if q.Sort != nil && q.Sort.Field.Valid() {
		sortRecords(out, *q.Sort)
	}

	return out
}

func newMatcher(q Query) func(Record) bool {
	search := strings.ToLower(q.Search)
	submitter := strings.ToLower(strings.TrimSpace(q.Filter.Submitter))

	var (
		start, end time.Time
		ranged     bool
	)
	if q.Filter.DateRange.Active() {
		s, errS := ParseDate(q.Filter.DateRange.Start)
		e, errE := ParseDate(q.Filter.DateRange.End)
		if errS != nil || errE != nil {
			// An unparsable bound matches nothing.
			return func(Record) bool { return false }
		}
		start, end, ranged = s, e, true
	}

	return func(r Record) bool {
		if search != "" && !matchesSearch(r, search) {
			return false
		}
		if len(q.Filter.Statuses) > 0 && !slices.Contains(q.Filter.Statuses, r.Status) {
			return false
		}
		if len(q.Filter.Priorities) > 0 && !slices.Contains(q.Filter.Priorities, r.Priority) {
			return false
		}
		if submitter != "" && !strings.Contains(strings.ToLower(r.Submitter), submitter) {
			return false
		}
		if ranged {
			d, err := ParseDate(r.Submitted)
			if err != nil || d.Before(start) || d.After(end) {
				return false
			}
		}
		return true
	}
}

// matchesSearch expects a lower-cased query.
func matchesSearch(r Record, query string) bool {
	for _, v := range []string{r.JobRequest, r.Submitter, r.Assigned, string(r.Status), string(r.Priority)} {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

func sortRecords(records []Record, s Sort) {
	slices.SortStableFunc(records, func(a, b Record) int {
		c := strings.Compare(a.Value(s.Field), b.Value(s.Field))
		if s.Direction == Desc {
			return -c
		}
		return c
	})
}
