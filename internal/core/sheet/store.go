package sheet

import (
	"slices"
	"strconv"
)

// Store holds the authoritative, insertion-ordered record collection.
//
// Store is not safe for concurrent use; it has a single owner that mutates it
// from one goroutine.
type Store struct {
	records []Record
	version uint64
}

// NewStore creates a store holding copies of the given records. Records are
// kept as given, including their IDs; duplicate IDs after the first are
// dropped.
func NewStore(records ...Record) *Store {
	s := &Store{records: make([]Record, 0, len(records))}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		r.Status = coerceStatus(r.Status)
		r.Priority = coercePriority(r.Priority)
		s.records = append(s.records, r)
	}
	return s
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []Record {
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Version is incremented on every mutation.
func (s *Store) Version() uint64 {
	return s.version
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	i := s.index(id)
	if i < 0 {
		return Record{}, false
	}
	return s.records[i], true
}

// Add appends a record and returns it with its assigned ID.
func (s *Store) Add(n NewRecord) Record {
	r := n.withID(strconv.FormatInt(s.maxID()+1, 10))
	s.records = append(s.records, r)
	s.version++
	return r
}

// AddAll appends records with sequential IDs continuing from the current
// maximum.
func (s *Store) AddAll(batch []NewRecord) []Record {
	if len(batch) == 0 {
		return nil
	}

	base := s.maxID()
	added := make([]Record, len(batch))
	for i, n := range batch {
		added[i] = n.withID(strconv.FormatInt(base+int64(i)+1, 10))
	}
	s.records = append(s.records, added...)
	s.version++
	return added
}

// Update merges the patch into the record with the given id. It returns false
// when no record matches.
func (s *Store) Update(id string, p Patch) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.records[i] = p.Apply(s.records[i])
	s.version++
	return true
}

// Delete removes every record whose ID is in ids and returns the number
// removed. Unknown IDs are ignored.
func (s *Store) Delete(ids ...string) int {
	if len(ids) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	before := len(s.records)
	s.records = slices.DeleteFunc(s.records, func(r Record) bool {
		_, ok := set[r.ID]
		return ok
	})

	removed := before - len(s.records)
	if removed > 0 {
		s.version++
	}
	return removed
}

// maxID returns the largest numeric ID, or 0 for an empty store. IDs that are
// not integers are ignored.
func (s *Store) maxID() int64 {
	var highest int64
	for _, r := range s.records {
		n, err := strconv.ParseInt(r.ID, 10, 64)
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return highest
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
}
