// Package insight derives read-only facts from a set of records: extracted
// values, data-backed answers to questions and column type metadata.
package insight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

// Kind selects what Extract pulls out of the records.
type Kind string

const (
	KindEmails  Kind = "emails"
	KindURLs    Kind = "urls"
	KindDates   Kind = "dates"
	KindNumbers Kind = "numbers"
	KindNames   Kind = "names"
)

// Kinds lists every extraction kind in menu order.
var Kinds = []Kind{KindEmails, KindURLs, KindDates, KindNumbers, KindNames}

var kindInfo = map[Kind]struct{ label, description string }{
	KindEmails:  {"Email Addresses", "Extract all email addresses from the data"},
	KindURLs:    {"URLs/Websites", "Extract all website URLs and links"},
	KindDates:   {"Dates", "Extract all date values"},
	KindNumbers: {"Numbers/Values", "Extract all numeric values"},
	KindNames:   {"Names", "Extract all person names"},
}

// Label returns the menu label of the kind.
func (k Kind) Label() string { return kindInfo[k].label }

// Description returns the one-line help text of the kind.
func (k Kind) Description() string { return kindInfo[k].description }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindInfo[k]
	return ok
}

// ParseKind validates a raw kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown extraction kind %q", s)
	}
	return k, nil
}

// FileName is the download name for an extraction of this kind.
func (k Kind) FileName() string {
	return "extracted-" + string(k) + ".txt"
}

var (
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlRe    = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s,;"']+`)
	dateRe   = regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`)
	numberRe = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\b`)
)

// Extract returns the distinct values of the given kind found in records, in
// first-seen order.
func Extract(kind Kind, records []sheet.Record) []string {
	var out []string
	seen := map[string]bool{}
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	for _, r := range records {
		switch kind {
		case KindEmails:
			for _, v := range textFields(r) {
				for _, m := range emailRe.FindAllString(v, -1) {
					add(m)
				}
			}
		case KindURLs:
			for _, v := range textFields(r) {
				for _, m := range urlRe.FindAllString(v, -1) {
					add(strings.TrimRight(m, ".)"))
				}
			}
		case KindDates:
			for _, v := range []string{r.Submitted, r.DueDate, r.JobRequest} {
				for _, m := range dateRe.FindAllString(v, -1) {
					add(m)
				}
			}
		case KindNumbers:
			// dates are excluded so their digits are not reported twice
			for _, v := range []string{r.JobRequest, r.EstValue} {
				for _, m := range numberRe.FindAllString(v, -1) {
					add(m)
				}
			}
		case KindNames:
			add(r.Submitter)
		}
	}
	return out
}

// FormatExtraction renders extracted values as the download file body.
func FormatExtraction(values []string) string {
	return strings.Join(values, "\n")
}

func textFields(r sheet.Record) []string {
	return []string{r.JobRequest, r.Submitter, r.Assigned, r.EstValue}
}
