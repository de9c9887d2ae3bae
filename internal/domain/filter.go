package domain

import (
	"slices"
	"time"
)

// dueDateLayout is the calendar date layout used for due-date comparisons.
const dueDateLayout = "2006-01-02"

// Filters selects annotations by assignee, issue citation and due date.
// Fields are ordered to minimize memory padding.
type Filters struct {
	Assignees  []string // Match any of these assignees
	Issues     []string // Match any of these citations (rendered form)
	Due        []string // Match any of these due dates
	Unassigned bool     // Also (or only) match annotations without an assignee
	Untracked  bool     // Also (or only) match annotations without a citation
	Someday    bool     // Also (or only) match annotations without a due date
	Overdue    bool     // Additionally require the due date to have passed
}

// matchField is the shared three-way field predicate: with an allow list the
// value must be listed (or absent, when unset values are included); with only
// the include-unset flag the value must be absent; with neither, everything
// matches.
func matchField(value string, allow []string, includeUnset bool) bool {
	if len(allow) > 0 {
		if value == "" {
			return includeUnset
		}
		return slices.Contains(allow, value)
	}
	if includeUnset {
		return value == ""
	}
	return true
}

// Match reports whether the annotation passes every field predicate.
// now supplies the calendar date for the overdue gate.
func (f Filters) Match(a Annotation, now time.Time) bool {
	issue := ""
	if a.Metadata.Issue != nil {
		issue = a.Metadata.Issue.String()
	}
	if !matchField(a.Metadata.Assignee, f.Assignees, f.Unassigned) {
		return false
	}
	if !matchField(issue, f.Issues, f.Untracked) {
		return false
	}
	if !matchField(a.Metadata.Due, f.Due, f.Someday) {
		return false
	}
	if f.Overdue && !IsOverdue(a.Metadata.Due, now) {
		return false
	}
	return true
}

// Apply filters the list, preserving order.
func (f Filters) Apply(list []Annotation, now time.Time) []Annotation {
	var out []Annotation
	for _, a := range list {
		if f.Match(a, now) {
			out = append(out, a)
		}
	}
	return out
}

// IsOverdue reports whether due holds a valid calendar date strictly before
// today. Absent or unparsable dates are never overdue.
func IsOverdue(due string, now time.Time) bool {
	if due == "" {
		return false
	}
	d, err := time.ParseInLocation(dueDateLayout, due, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
