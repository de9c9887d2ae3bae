package domain

import (
	"regexp"
	"strings"
)

var dueDatePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Metadata is the structured payload of a TODO annotation.
// Empty string / nil fields mean "not set".
type Metadata struct {
	Assignee string
	Due      string // YYYY-MM-DD, kept as text and parsed on demand
	Issue    *IssueRef
}

// ParseMetadata parses a comma-separated payload into a Metadata record.
// Each field is set by the first matching token; later duplicates of the
// same kind and unrecognized tokens are silently ignored. It never fails.
func ParseMetadata(payload string) Metadata {
	var m Metadata
	for _, token := range strings.Split(payload, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "@") {
			if m.Assignee == "" {
				m.Assignee = token[1:]
			}
			continue
		}
		if ref, ok := ParseIssueRef(token); ok {
			if m.Issue == nil {
				m.Issue = ref
			}
			continue
		}
		if m.Due == "" && dueDatePattern.MatchString(token) {
			m.Due = token
		}
	}
	return m
}

// String renders the canonical payload: issue reference, assignee, due date,
// in that order regardless of how the record was built. Returns "" when all
// fields are empty so the caller can omit the parenthesized block entirely.
func (m Metadata) String() string {
	var parts []string
	if m.Issue != nil {
		parts = append(parts, m.Issue.String())
	}
	if m.Assignee != "" {
		parts = append(parts, "@"+m.Assignee)
	}
	if m.Due != "" {
		parts = append(parts, m.Due)
	}
	return strings.Join(parts, ", ")
}

// IsZero reports whether no metadata field is set.
func (m Metadata) IsZero() bool {
	return m.Assignee == "" && m.Due == "" && m.Issue == nil
}
