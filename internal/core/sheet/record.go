// Package sheet defines the action record model, the in-memory row store and
// the search, filter and sort pipeline that derives the displayed view.
package sheet

import (
	"strings"
	"unicode"
)

// Status is the lifecycle state of an action record.
type Status string

const (
	StatusNeedToStart Status = "Need to start"
	StatusInProgress  Status = "In-progress"
	StatusComplete    Status = "Complete"
	StatusBlocked     Status = "Blocked"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNeedToStart, StatusInProgress, StatusComplete, StatusBlocked}

// DefaultStatus is used for missing or unrecognized status values.
const DefaultStatus = StatusNeedToStart

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus maps raw input to a Status. Matching ignores case, spaces,
// hyphens and underscores; anything else becomes DefaultStatus.
func ParseStatus(raw string) Status {
	key := enumKey(raw)
	for _, v := range Statuses {
		if enumKey(string(v)) == key {
			return v
		}
	}
	return DefaultStatus
}

// Priority is the urgency of an action record.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// DefaultPriority is used for missing or unrecognized priority values.
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePriority maps raw input to a Priority using the same lenient matching
// as ParseStatus.
func ParsePriority(raw string) Priority {
	key := enumKey(raw)
	for _, v := range Priorities {
		if enumKey(string(v)) == key {
			return v
		}
	}
	return DefaultPriority
}

func enumKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Record is a single action entry in the store.
type Record struct {
	ID         string   `json:"id"`
	JobRequest string   `json:"jobRequest"`
	Submitted  string   `json:"submitted"`
	Status     Status   `json:"status"`
	Submitter  string   `json:"submitter"`
	Assigned   string   `json:"assigned"`
	Priority   Priority `json:"priority"`
	DueDate    string   `json:"dueDate"`
	EstValue   string   `json:"estValue"`
}

// NewRecord holds every field of a Record except the store-assigned ID.
type NewRecord struct {
	JobRequest string
	Submitted  string
	Status     Status
	Submitter  string
	Assigned   string
	Priority   Priority
	DueDate    string
	EstValue   string
}

func (n NewRecord) withID(id string) Record {
	return Record{
		ID:         id,
		JobRequest: n.JobRequest,
		Submitted:  n.Submitted,
		Status:     coerceStatus(n.Status),
		Submitter:  n.Submitter,
		Assigned:   n.Assigned,
		Priority:   coercePriority(n.Priority),
		DueDate:    n.DueDate,
		EstValue:   n.EstValue,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	JobRequest *string
	Submitted  *string
	Status     *Status
	Submitter  *string
	Assigned   *string
	Priority   *Priority
	DueDate    *string
	EstValue   *string
}

// Empty reports whether the patch sets no fields.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Apply returns r with the patch merged in. Enum fields are coerced.
func (p Patch) Apply(r Record) Record {
	if p.JobRequest != nil {
		r.JobRequest = *p.JobRequest
	}
	if p.Submitted != nil {
		r.Submitted = *p.Submitted
	}
	if p.Status != nil {
		r.Status = coerceStatus(*p.Status)
	}
	if p.Submitter != nil {
		r.Submitter = *p.Submitter
	}
	if p.Assigned != nil {
		r.Assigned = *p.Assigned
	}
	if p.Priority != nil {
		r.Priority = coercePriority(*p.Priority)
	}
	if p.DueDate != nil {
		r.DueDate = *p.DueDate
	}
	if p.EstValue != nil {
		r.EstValue = *p.EstValue
	}
	return r
}

// Diff builds the patch that turns from into to, leaving ID aside.
func Diff(from, to Record) Patch {
	var p Patch
	if from.JobRequest != to.JobRequest {
		p.JobRequest = &to.JobRequest
	}
	if from.Submitted != to.Submitted {
		p.Submitted = &to.Submitted
	}
	if from.Status != to.Status {
		p.Status = &to.Status
	}
	if from.Submitter != to.Submitter {
		p.Submitter = &to.Submitter
	}
	if from.Assigned != to.Assigned {
		p.Assigned = &to.Assigned
	}
	if from.Priority != to.Priority {
		p.Priority = &to.Priority
	}
	if from.DueDate != to.DueDate {
		p.DueDate = &to.DueDate
	}
	if from.EstValue != to.EstValue {
		p.EstValue = &to.EstValue
	}
	return p
}

func coerceStatus(s Status) Status {
	if s.Valid() {
		return s
	}
	return ParseStatus(string(s))
}

func coercePriority(p Priority) Priority {
	if p.Valid() {
		return p
	}
	return ParsePriority(string(p))
}
