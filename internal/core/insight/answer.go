package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

type topic int

const (
	topicSummary topic = iota
	topicValue
	topicPriority
	topicAssigned
	topicStatus
	topicCount
)

// routes are checked in order; the first keyword hit wins.
var routes = []struct {
	topic    topic
	keywords []string
}{
	{topicValue, []string{"average", "value", "worth", "budget", "cost"}},
	{topicPriority, []string{"priority", "priorities", "urgent", "high", "low"}},
	{topicAssigned, []string{"assign", "external", "contractor", "domain", "who"}},
	{topicStatus, []string{"status", "pending", "progress", "complete", "blocked", "done"}},
	{topicCount, []string{"how many", "count", "total", "number of"}},
}

func route(question string) topic {
	q := strings.ToLower(question)
	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.topic
			}
		}
	}
	return topicSummary
}

// Answer returns a markdown answer to question computed from records. An
// empty question yields an empty answer.
func Answer(question string, records []sheet.Record) string {
	if strings.TrimSpace(question) == "" {
		return ""
	}
	if len(records) == 0 {
		return "There are no actions in the current view."
	}

	switch route(question) {
	case topicValue:
		return answerValue(records)
	case topicPriority:
		return answerPriority(records)
	case topicAssigned:
		return answerAssigned(records)
	case topicStatus:
		return answerStatus(records)
	case topicCount:
		return answerCount(records)
	default:
		return answerSummary(records)
	}
}

func answerCount(records []sheet.Record) string {
	high := countPriority(records)[sheet.PriorityHigh]
	return fmt.Sprintf("There are **%d** actions in view, **%d** of them high priority.", len(records), high)
}

func answerPriority(records []sheet.Record) string {
	counts := countPriority(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Priority breakdown across **%d** actions:\n\n", len(records))
	b.WriteString("| Priority | Count | Share |\n|---|---|---|\n")
	for _, p := range sheet.Priorities {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", p, counts[p], percent(counts[p], len(records)))
	}
	if n := counts[sheet.PriorityHigh]; n > 0 {
		fmt.Fprintf(&b, "\n%d high priority %s immediate attention.", n, plural(n, "item needs", "items need"))
	}
	return b.String()
}

func answerStatus(records []sheet.Record) string {
	counts := make(map[sheet.Status]int, len(sheet.Statuses))
	for _, r := range records {
		counts[r.Status]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Status breakdown across **%d** actions:\n\n", len(records))
	for _, s := range sheet.Statuses {
		fmt.Fprintf(&b, "- %s: %d\n", s, counts[s])
	}
	if n := counts[sheet.StatusBlocked]; n > 0 {
		fmt.Fprintf(&b, "\n%d %s blocked.", n, plural(n, "action is", "actions are"))
	}
	return b.String()
}

func answerValue(records []sheet.Record) string {
	var (
		sum    int64
		parsed int
	)
	for _, r := range records {
		v, ok := ParseAmount(r.EstValue)
		if !ok {
			continue
		}
		sum += v
		parsed++
	}

	if parsed == 0 {
		return "None of the actions in view have a numeric estimated value."
	}

	avg := int64(math.Round(float64(sum) / float64(parsed)))
	out := fmt.Sprintf("The total estimated value is **%s** and the average across %d %s is **%s**.",
		GroupThousands(sum), parsed, plural(parsed, "action", "actions"), GroupThousands(avg))
	if skipped := len(records) - parsed; skipped > 0 {
		out += fmt.Sprintf(" %d %s without a numeric value %s skipped.", skipped,
			plural(skipped, "action", "actions"), plural(skipped, "was", "were"))
	}
	return out
}

func answerAssigned(records []sheet.Record) string {
	urls := Extract(KindURLs, records)

	var external int
	for _, r := range records {
		if urlRe.MatchString(r.Assigned) {
			external++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%d** of %d actions are assigned to external domains", external, len(records))
	if len(urls) == 0 {
		b.WriteString(".")
		return b.String()
	}
	b.WriteString(":\n\n")
	for _, u := range urls {
		fmt.Fprintf(&b, "- %s\n", u)
	}
	return b.String()
}

func answerSummary(records []sheet.Record) string {
	counts := countPriority(records)

	var b strings.Builder
	fmt.Fprintf(&b, "There are **%d** actions in view.\n\n", len(records))
	for _, p := range sheet.Priorities {
		fmt.Fprintf(&b, "- %s priority: %d (%s)\n", p, counts[p], percent(counts[p], len(records)))
	}
	return b.String()
}

func countPriority(records []sheet.Record) map[sheet.Priority]int {
	counts := make(map[sheet.Priority]int, len(sheet.Priorities))
	for _, r := range records {
		counts[r.Priority]++
	}
	return counts
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(float64(n)*100/float64(total)))) + "%"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ParseAmount reads an estimated value such as "8,20,000" or "1500000".
// Grouping separators are ignored.
func ParseAmount(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GroupThousands formats n with comma separators every three digits.
func GroupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
