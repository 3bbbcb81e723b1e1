package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded() *Sheet {
	return New(NewStore(SeedRecords()...), NewCodec(DialectCompat), zerolog.Nop())
}

func TestSheetFilterThenSort(t *testing.T) {
	s := newSeeded()

	s.SetFilter(Filter{Priorities: []Priority{PriorityHigh}})
	assert.Equal(t, []string{"1", "5"}, ids(s.View()))

	require.NoError(t, s.SetSort(FieldSubmitter, Asc))
	view := s.View()
	require.Len(t, view, 2)
	assert.Equal(t, "Jessica Brown", view[0].Submitter)
	assert.Equal(t, "Max Khan", view[1].Submitter)

	s.ClearSort()
	assert.Equal(t, []string{"1", "5"}, ids(s.View()))

	s.ClearFilter()
	assert.Len(t, s.View(), 5)
}

func TestSheetAdd(t *testing.T) {
	s := newSeeded()

	r := s.Add(NewRecord{JobRequest: "X", Submitter: "Y", Assigned: "", Priority: PriorityLow, DueDate: "", EstValue: ""})
	assert.Equal(t, "6", r.ID)
	assert.Equal(t, 6, s.Store().Len())
	assert.Len(t, s.View(), 6)
}

func TestSheetImportCSV(t *testing.T) {
	t.Run("appends rows", func(t *testing.T) {
		s := newSeeded()

		n, err := s.ImportCSV(strings.NewReader("H1,H2\n\"Task A\",01-01-2025,Complete,Bob,,High,02-01-2025,100"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Equal(t, 6, s.Store().Len())

		r, ok := s.Store().Get("6")
		require.True(t, ok)
		assert.Equal(t, "Task A", r.JobRequest)
		assert.Equal(t, StatusComplete, r.Status)
	})

	t.Run("failure appends nothing", func(t *testing.T) {
		s := newSeeded()
		v := s.Store().Version()

		n, err := s.ImportCSV(strings.NewReader(""))
		require.ErrorIs(t, err, ErrInvalidFormat)
		assert.Zero(t, n)
		assert.Equal(t, 5, s.Store().Len())
		assert.Equal(t, v, s.Store().Version())
	})

	t.Run("empty store starts at one", func(t *testing.T) {
		s := New(nil, NewCodec(DialectCompat), zerolog.Nop())

		n, err := s.ImportCSV(strings.NewReader("h\nA\nB"))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"1", "2"}, ids(s.View()))
	})
}

func TestSheetExportUsesView(t *testing.T) {
	s := newSeeded()
	s.SetSearchQuery("jessica")

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(&buf))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Jessica Brown")
}

func TestSheetViewTracksMutations(t *testing.T) {
	s := newSeeded()
	s.SetSearchQuery("green")
	require.Equal(t, []string{"3"}, ids(s.View()))

	submitter := "Emily Blue"
	require.True(t, s.Update("3", Patch{Submitter: &submitter}))
	assert.Empty(t, s.View())

	s.SetSearchQuery("")
	assert.Equal(t, 4, s.Delete("1", "2", "4", "5"))
	assert.Equal(t, []string{"3"}, ids(s.View()))
}

func TestSheetViewReturnsCopy(t *testing.T) {
	s := newSeeded()
	view := s.View()
	view[0].JobRequest = "changed"

	assert.NotEqual(t, "changed", s.View()[0].JobRequest)
}

func TestSheetUpdateUnknownID(t *testing.T) {
	s := newSeeded()
	before := s.View()

	jr := "nothing"
	assert.False(t, s.Update("404", Patch{JobRequest: &jr}))
	assert.Equal(t, before, s.View())
}

func TestSheetSetSortRejectsUnknown(t *testing.T) {
	s := newSeeded()
	require.Error(t, s.SetSort(Field("color"), Asc))
	require.Error(t, s.SetSort(FieldSubmitter, Direction("sideways")))
	assert.Nil(t, s.Query().Sort)
}

func TestSheetQueryIsCopy(t *testing.T) {
	s := newSeeded()
	s.SetFilter(Filter{Statuses: []Status{StatusBlocked}})
	require.NoError(t, s.SetSort(FieldID, Desc))

	q := s.Query()
	q.Filter.Statuses[0] = StatusComplete
	q.Sort.Direction = Asc

	assert.Equal(t, StatusBlocked, s.Query().Filter.Statuses[0])
	assert.Equal(t, Desc, s.Query().Sort.Direction)
	assert.Equal(t, []string{"5"}, ids(s.View()))
}
