package domain

import "slices"

// Violation is one lint rule failure label.
type Violation string

const (
	ViolationInvalidFormat      Violation = "invalid format"
	ViolationMissingAssignee    Violation = "missing assignee"
	ViolationInvalidAssignee    Violation = "invalid assignee"
	ViolationMissingIssue       Violation = "missing issue"
	ViolationInvalidIssueFormat Violation = "invalid issue format"
	ViolationInvalidProjectKey  Violation = "invalid project key"
	ViolationMissingDueDate     Violation = "missing due date"
)

// LintConfig is the active lint rule set. Zero-valued fields disable their
// rule; the format canonicality check is always on.
// Fields are ordered to minimize memory padding.
type LintConfig struct {
	AllowedAssignees []string   // Assignees outside this list are invalid
	ProjectKeys      []string   // Project keys outside this list are invalid
	IssueFormat      *IssueKind // Required citation syntax (nil = any)
	RequireAssignees bool
	RequireIssues    bool
	RequireDueDates  bool
}

// Check evaluates every rule independently and returns all violations for
// the annotation. An empty result means the annotation is clean.
func (c LintConfig) Check(a Annotation) []Violation {
	var vs []Violation
	if a.CanonicalLine() != a.RawLine {
		vs = append(vs, ViolationInvalidFormat)
	}
	if c.RequireAssignees && a.Metadata.Assignee == "" {
		vs = append(vs, ViolationMissingAssignee)
	}
	// Independent of RequireAssignees: an absent assignee is not invalid.
	if len(c.AllowedAssignees) > 0 && a.Metadata.Assignee != "" &&
		!slices.Contains(c.AllowedAssignees, a.Metadata.Assignee) {
		vs = append(vs, ViolationInvalidAssignee)
	}
	if c.RequireIssues && a.Metadata.Issue == nil {
		vs = append(vs, ViolationMissingIssue)
	}
	if c.IssueFormat != nil && a.Metadata.Issue != nil && a.Metadata.Issue.Kind != *c.IssueFormat {
		vs = append(vs, ViolationInvalidIssueFormat)
	}
	if len(c.ProjectKeys) > 0 && a.Metadata.Issue != nil && a.Metadata.Issue.Kind == IssueProjectKey &&
		!slices.Contains(c.ProjectKeys, a.Metadata.Issue.Key) {
		vs = append(vs, ViolationInvalidProjectKey)
	}
	if c.RequireDueDates && a.Metadata.Due == "" {
		vs = append(vs, ViolationMissingDueDate)
	}
	return vs
}

// LintResult pairs an annotation with its violations.
type LintResult struct {
	Annotation Annotation
	Violations []Violation
}
