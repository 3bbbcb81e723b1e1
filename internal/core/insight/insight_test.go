package insight

import (
	"testing"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	seed := sheet.SeedRecords()

	tests := []struct {
		kind Kind
		want []string
	}{
		{KindURLs, []string{"www.fruitkart.com", "www.markjohns.com", "www.marketgu.com", "www.example.com", "www.jessicab.com"}},
		{KindDates, []string{"28-10-2024", "10-30-2024", "05-10-2024", "16-10-2024", "10-01-2025", "16-01-2025", "25-01-2025", "30-01-2025"}},
		{KindNumbers, []string{"8,20,000", "1,500,000", "4,750,000", "5,500,000", "2,800,000"}},
		{KindNames, []string{"Max Khan", "Mark Johnson", "Emily Green", "Tom Wright", "Jessica Brown"}},
		{KindEmails, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.kind, seed))
		})
	}

	t.Run("emails in any text field", func(t *testing.T) {
		records := []sheet.Record{
			{JobRequest: "Ping ann@example.com about it", Assigned: "bob@corp.io"},
			{Submitter: "ann@example.com"},
		}
		assert.Equal(t, []string{"ann@example.com", "bob@corp.io"}, Extract(KindEmails, records))
	})

	t.Run("names skip blanks and duplicates", func(t *testing.T) {
		records := []sheet.Record{{Submitter: "A"}, {Submitter: ""}, {Submitter: "A"}, {Submitter: "B"}}
		assert.Equal(t, []string{"A", "B"}, Extract(KindNames, records))
	})
}

func TestFormatExtraction(t *testing.T) {
	assert.Equal(t, "a\nb", FormatExtraction([]string{"a", "b"}))
	assert.Equal(t, "extracted-emails.txt", KindEmails.FileName())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" URLs ")
	require.NoError(t, err)
	assert.Equal(t, KindURLs, k)

	_, err = ParseKind("phones")
	assert.Error(t, err)
}

func TestAnswer(t *testing.T) {
	seed := sheet.SeedRecords()

	t.Run("empty question", func(t *testing.T) {
		assert.Empty(t, Answer("   ", seed))
	})

	t.Run("empty view", func(t *testing.T) {
		assert.Equal(t, "There are no actions in the current view.", Answer("how many?", nil))
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, "There are **5** actions in view, **2** of them high priority.", Answer("How many actions are there?", seed))
	})

	t.Run("priority", func(t *testing.T) {
		got := Answer("How many high priority items do I have?", seed)
		assert.Contains(t, got, "| High | 2 | 40% |")
		assert.Contains(t, got, "| Medium | 1 | 20% |")
		assert.Contains(t, got, "| Low | 2 | 40% |")
		assert.Contains(t, got, "2 high priority items need immediate attention.")
	})

	t.Run("value", func(t *testing.T) {
		got := Answer("What's the average project value?", seed)
		assert.Equal(t, "The total estimated value is **15,370,000** and the average across 5 actions is **3,074,000**.", got)
	})

	t.Run("value skips non numeric", func(t *testing.T) {
		records := []sheet.Record{{EstValue: "100"}, {EstValue: "TBD"}}
		got := Answer("total value", records)
		assert.Contains(t, got, "**100**")
		assert.Contains(t, got, "1 action without a numeric value was skipped.")
	})

	t.Run("assigned", func(t *testing.T) {
		got := Answer("Which items go to external contractors?", seed)
		assert.Contains(t, got, "**5** of 5 actions are assigned to external domains")
		assert.Contains(t, got, "- www.example.com")
	})

	t.Run("status", func(t *testing.T) {
		got := Answer("status?", seed)
		assert.Contains(t, got, "- Complete: 2")
		assert.Contains(t, got, "1 action is blocked.")
	})

	t.Run("summary fallback", func(t *testing.T) {
		got := Answer("tell me something", seed)
		assert.Contains(t, got, "There are **5** actions in view.")
		assert.Contains(t, got, "- High priority: 2 (40%)")
	})
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupThousands(tt.in))
	}
}

func TestParseAmount(t *testing.T) {
	v, ok := ParseAmount("8,20,000")
	require.True(t, ok)
	assert.Equal(t, int64(820000), v)

	_, ok = ParseAmount("")
	assert.False(t, ok)
	_, ok = ParseAmount("about 5")
	assert.False(t, ok)
}

func TestDefaultColumnTypes(t *testing.T) {
	types := DefaultColumnTypes()
	assert.Len(t, types, len(sheet.Columns))
	assert.Equal(t, ColumnNumber, types[sheet.FieldEstValue])
	assert.Equal(t, ColumnURL, types[sheet.FieldAssigned])
	assert.Equal(t, ColumnText, types[sheet.FieldJobRequest])

	_, err := ParseColumnType("currency")
	assert.Error(t, err)
	assert.Equal(t, "URL/Link", ColumnURL.Label())
}
