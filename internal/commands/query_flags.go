package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

// queryFlags are the view flags shared by ls, export and import.
type queryFlags struct {
	search     string
	statuses   []string
	priorities []string
	submitter  string
	from       string
	to         string
	sort       string
	desc       bool
}

func (q *queryFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "free-text search over job request, submitter, assigned, status and priority",
			Destination: &q.search,
		},
		&cli.StringSliceFlag{
			Name:        "status",
			Usage:       "keep rows with this status (repeatable)",
			Destination: &q.statuses,
		},
		&cli.StringSliceFlag{
			Name:        "priority",
			Usage:       "keep rows with this priority (repeatable)",
			Destination: &q.priorities,
		},
		&cli.StringFlag{
			Name:        "submitter",
			Usage:       "keep rows whose submitter contains this text",
			Destination: &q.submitter,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "submitted on or after this date (DD-MM-YYYY or YYYY-MM-DD)",
			Destination: &q.from,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "submitted on or before this date (DD-MM-YYYY or YYYY-MM-DD)",
			Destination: &q.to,
		},
		&cli.StringFlag{
			Name:        "sort",
			Usage:       "sort by field key (" + fieldKeys() + ")",
			Destination: &q.sort,
		},
		&cli.BoolFlag{
			Name:        "desc",
			Usage:       "sort descending",
			Destination: &q.desc,
		},
	}
}

// apply sets the query on s.
func (q *queryFlags) apply(s *sheet.Sheet) error {
	f, err := q.filter()
	if err != nil {
		return err
	}

	s.SetSearchQuery(q.search)
	s.SetFilter(f)

	if q.sort == "" {
		return nil
	}
	field, err := sheet.ParseField(q.sort)
	if err != nil {
		return err
	}
	dir := sheet.Asc
	if q.desc {
		dir = sheet.Desc
	}
	return s.SetSort(field, dir)
}

func (q *queryFlags) filter() (sheet.Filter, error) {
	var f sheet.Filter

	for _, raw := range q.statuses {
		st, ok := matchEnum(raw, sheet.Statuses)
		if !ok {
			return f, fmt.Errorf("unknown status %q", raw)
		}
		f.Statuses = append(f.Statuses, st)
	}
	for _, raw := range q.priorities {
		p, ok := matchEnum(raw, sheet.Priorities)
		if !ok {
			return f, fmt.Errorf("unknown priority %q", raw)
		}
		f.Priorities = append(f.Priorities, p)
	}
	f.Submitter = q.submitter

	if (q.from == "") != (q.to == "") {
		return f, errors.New("--from and --to must be used together")
	}
	for _, d := range []string{q.from, q.to} {
		if d == "" {
			continue
		}
		if _, err := sheet.ParseDate(d); err != nil {
			return f, err
		}
	}
	f.DateRange = sheet.DateRange{Start: q.from, End: q.to}

	return f, nil
}

// matchEnum finds raw in values ignoring case and surrounding space.
func matchEnum[T ~string](raw string, values []T) (T, bool) {
	raw = strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(string(v), raw) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func fieldKeys() string {
	keys := []string{string(sheet.FieldID)}
	for _, f := range sheet.Columns {
		keys = append(keys, string(f))
	}
	return strings.Join(keys, ", ")
}
