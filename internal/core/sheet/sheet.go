package sheet

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Sheet owns a store and the active query, and derives the displayed view.
// It is the surface the UI and CLI consume.
type Sheet struct {
	store *Store
	codec Codec
	log   zerolog.Logger

	query    Query
	revision uint64

	// memoized view, valid while both counters match
	cached        []Record
	cachedVersion uint64
	cachedRev     uint64
	cacheValid    bool
}

// New creates a sheet over the given store.
func New(store *Store, codec Codec, logger zerolog.Logger) *Sheet {
	if store == nil {
		store = NewStore()
	}
	return &Sheet{
		store: store,
		codec: codec,
		log:   logger,
	}
}

// Store returns the underlying store.
func (s *Sheet) Store() *Store { return s.store }

// Codec returns the CSV codec used for import and export.
func (s *Sheet) Codec() Codec { return s.codec }

// Query returns a copy of the active query.
func (s *Sheet) Query() Query {
	q := s.query
	q.Filter.Statuses = slices.Clone(q.Filter.Statuses)
	q.Filter.Priorities = slices.Clone(q.Filter.Priorities)
	if q.Sort != nil {
		srt := *q.Sort
		q.Sort = &srt
	}
	return q
}

// View returns the records after search, filter and sort.
func (s *Sheet) View() []Record {
	if !s.cacheValid || s.cachedVersion != s.store.Version() || s.cachedRev != s.revision {
		s.cached = ComputeView(s.store.records, s.query)
		s.cachedVersion = s.store.Version()
		s.cachedRev = s.revision
		s.cacheValid = true
	}
	return slices.Clone(s.cached)
}

// SetSearchQuery replaces the free-text search.
func (s *Sheet) SetSearchQuery(q string) {
	if s.query.Search == q {
		return
	}
	s.query.Search = q
	s.revision++
}

// SetFilter replaces the structured filter.
func (s *Sheet) SetFilter(f Filter) {
	f.Statuses = slices.Clone(f.Statuses)
	f.Priorities = slices.Clone(f.Priorities)
	f.Submitter = strings.TrimSpace(f.Submitter)
	s.query.Filter = f
	s.revision++
	s.log.Debug().
		Int("statuses", len(f.Statuses)).
		Int("priorities", len(f.Priorities)).
		Str("submitter", f.Submitter).
		Bool("date_range", f.DateRange.Active()).
		Msg("filter updated")
}

// ClearFilter removes every filter predicate.
func (s *Sheet) ClearFilter() {
	s.SetFilter(Filter{})
}

// SetSort orders the view by the given field and direction.
func (s *Sheet) SetSort(field Field, dir Direction) error {
	if !field.Valid() {
		return fmt.Errorf("unknown sort field %q", field)
	}
	if dir != Asc && dir != Desc {
		return fmt.Errorf("unknown sort direction %q", dir)
	}
	s.query.Sort = &Sort{Field: field, Direction: dir}
	s.revision++
	return nil
}

// ClearSort restores insertion order.
func (s *Sheet) ClearSort() {
	s.query.Sort = nil
	s.revision++
}

// Add appends a new record and returns it with its assigned ID.
func (s *Sheet) Add(n NewRecord) Record {
	r := s.store.Add(n)
	s.log.Info().Str("id", r.ID).Msg("record added")
	return r
}

// Update merges the patch into the matching record. Unknown IDs are ignored.
func (s *Sheet) Update(id string, p Patch) bool {
	ok := s.store.Update(id, p)
	if ok {
		s.log.Info().Str("id", id).Msg("record updated")
	} else {
		s.log.Debug().Str("id", id).Msg("update ignored, record not found")
	}
	return ok
}

// Delete removes the records with the given IDs and returns how many were
// removed.
func (s *Sheet) Delete(ids ...string) int {
	n := s.store.Delete(ids...)
	s.log.Info().Int("requested", len(ids)).Int("removed", n).Msg("records deleted")
	return n
}

// ExportCSV writes the current view as CSV.
func (s *Sheet) ExportCSV(w io.Writer) error {
	view := s.View()
	if err := s.codec.Export(w, view); err != nil {
		return err
	}
	s.log.Info().Int("rows", len(view)).Str("dialect", string(s.codec.Dialect)).Msg("csv exported")
	return nil
}

// ImportCSV parses CSV input and appends every row to the store. Nothing is
// appended when parsing fails.
func (s *Sheet) ImportCSV(r io.Reader) (int, error) {
	batch, err := s.codec.Parse(r)
	if err != nil {
		s.log.Error().Err(err).Msg("csv import failed")
		return 0, err
	}

	added := s.store.AddAll(batch)
	s.log.Info().Int("rows", len(added)).Msg("csv imported")
	return len(added), nil
}
