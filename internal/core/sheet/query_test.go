package sheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeViewSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty matches all", "", []string{"1", "2", "3", "4", "5"}},
		{"job request", "report", []string{"5"}},
		{"case insensitive", "HIGH", []string{"1", "5"}},
		{"status text", "complete", []string{"3", "4"}},
		{"submitter", "green", []string{"3"}},
		{"submitter prefix", "tom", []string{"4"}},
		{"assigned", "fruitkart", []string{"1"}},
		{"across fields", "mar", []string{"1", "2", "3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeView(SeedRecords(), Query{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestComputeViewFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter", Filter{}, []string{"1", "2", "3", "4", "5"}},
		{"priority", Filter{Priorities: []Priority{PriorityHigh}}, []string{"1", "5"}},
		{"status set", Filter{Statuses: []Status{StatusComplete, StatusBlocked}}, []string{"3", "4", "5"}},
		{
			"status and priority",
			Filter{Statuses: []Status{StatusComplete}, Priorities: []Priority{PriorityLow}},
			[]string{"3", "4"},
		},
		{"submitter substring", Filter{Submitter: "jo"}, []string{"2"}},
		{"blank submitter ignored", Filter{Submitter: "   "}, []string{"1", "2", "3", "4", "5"}},
		{
			"iso date range",
			Filter{DateRange: DateRange{Start: "2025-01-01", End: "2025-01-31"}},
			[]string{"4", "5"},
		},
		{
			"inclusive bounds",
			Filter{DateRange: DateRange{Start: "10-01-2025", End: "25-01-2025"}},
			[]string{"4", "5"},
		},
		{
			"single day",
			Filter{DateRange: DateRange{Start: "2024-10-28", End: "2024-10-28"}},
			[]string{"1", "2"},
		},
		{
			"half open range ignored",
			Filter{DateRange: DateRange{Start: "2025-01-01"}},
			[]string{"1", "2", "3", "4", "5"},
		},
		{
			"bad bound matches nothing",
			Filter{DateRange: DateRange{Start: "yesterday", End: "2025-01-31"}},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeView(SeedRecords(), Query{Filter: tt.filter})
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("unparsable record date excluded by range", func(t *testing.T) {
		records := append(SeedRecords(), Record{ID: "6", Submitted: "soon"})
		got := ComputeView(records, Query{Filter: Filter{DateRange: DateRange{Start: "2000-01-01", End: "2100-01-01"}}})
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
	})
}

func TestComputeViewSort(t *testing.T) {
	tests := []struct {
		name string
		sort Sort
		want []string
	}{
		{"submitter asc", Sort{FieldSubmitter, Asc}, []string{"3", "5", "2", "1", "4"}},
		{"submitter desc", Sort{FieldSubmitter, Desc}, []string{"4", "1", "2", "5", "3"}},
		{"est value is lexicographic", Sort{FieldEstValue, Asc}, []string{"2", "5", "3", "4", "1"}},
		{"stable asc", Sort{FieldPriority, Asc}, []string{"1", "5", "3", "4", "2"}},
		{"stable desc", Sort{FieldPriority, Desc}, []string{"2", "3", "4", "1", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srt := tt.sort
			got := ComputeView(SeedRecords(), Query{Sort: &srt})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestComputeViewDoesNotMutateInput(t *testing.T) {
	records := SeedRecords()
	original := SeedRecords()

	_ = ComputeView(records, Query{
		Search: "e",
		Filter: Filter{Priorities: []Priority{PriorityHigh, PriorityLow}},
		Sort:   &Sort{Field: FieldSubmitter, Direction: Desc},
	})

	if diff := cmp.Diff(original, records); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestComputeViewIsDeterministic(t *testing.T) {
	q := Query{Search: "a", Sort: &Sort{Field: FieldDueDate, Direction: Asc}}
	first := ComputeView(SeedRecords(), q)
	second := ComputeView(SeedRecords(), q)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestComputeViewHighPrioritySortedBySubmitter(t *testing.T) {
	got := ComputeView(SeedRecords(), Query{
		Filter: Filter{Priorities: []Priority{PriorityHigh}},
		Sort:   &Sort{Field: FieldSubmitter, Direction: Asc},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Jessica Brown", got[0].Submitter)
	assert.Equal(t, "Max Khan", got[1].Submitter)
}

func TestComputeViewEmptyFilterResultIsNotAnError(t *testing.T) {
	got := ComputeView(SeedRecords(), Query{Filter: Filter{Submitter: "nobody"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseDate(t *testing.T) {
	a, err := ParseDate("25-01-2025")
	require.NoError(t, err)
	b, err := ParseDate("2025-01-25")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	_, err = ParseDate("01/25/2025")
	assert.Error(t, err)
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Submitter: " ", DateRange: DateRange{Start: "2025-01-01"}}.IsZero())
	assert.False(t, Filter{Priorities: []Priority{PriorityLow}}.IsZero())
}
