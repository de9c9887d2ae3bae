package domain

import (
	"fmt"
	"regexp"
)

// IssueKind distinguishes the two recognized citation syntaxes.
type IssueKind int

const (
	// IssueNumbered is a bare numbered citation such as "#123".
	IssueNumbered IssueKind = iota
	// IssueProjectKey is a project-key citation such as "ABC-123".
	IssueProjectKey
)

// String returns the flag-facing name of the kind.
func (k IssueKind) String() string {
	switch k {
	case IssueNumbered:
		return "numbered"
	case IssueProjectKey:
		return "project-key"
	}
	return "unknown"
}

// ParseIssueKind parses a flag-facing kind name.
func ParseIssueKind(s string) (IssueKind, error) {
	switch s {
	case "numbered":
		return IssueNumbered, nil
	case "project-key":
		return IssueProjectKey, nil
	}
	return 0, fmt.Errorf("%w: %q (expected numbered or project-key)", ErrInvalidIssueKind, s)
}

var (
	numberedPattern   = regexp.MustCompile(`^#([0-9]+)$`)
	projectKeyPattern = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)-([0-9]+)$`)
)

// IssueRef is a classified issue citation.
// Fields are ordered to minimize memory padding.
type IssueRef struct {
	Key    string // Project key, empty for numbered citations
	Number string
	Kind   IssueKind
}

// ParseIssueRef classifies a citation token. The numbered form is tried
// first, then the project-key form; anything else is not a citation.
func ParseIssueRef(token string) (*IssueRef, bool) {
	if groups := numberedPattern.FindStringSubmatch(token); groups != nil {
		return &IssueRef{Kind: IssueNumbered, Number: groups[1]}, true
	}
	if groups := projectKeyPattern.FindStringSubmatch(token); groups != nil {
		return &IssueRef{Kind: IssueProjectKey, Key: groups[1], Number: groups[2]}, true
	}
	return nil, false
}

// String renders the canonical citation text. Citation equality is defined
// over this rendering.
func (r *IssueRef) String() string {
	if r.Kind == IssueProjectKey {
		return r.Key + "-" + r.Number
	}
	return "#" + r.Number
}
