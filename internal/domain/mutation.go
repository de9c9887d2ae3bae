package domain

// Mutation is the desired new state for one scanned annotation. It
// references the producing scan's (path, line, delimiter) snapshot and must
// be applied before the underlying file changes again.
// Fields are ordered to minimize memory padding.
type Mutation struct {
	Path      string
	Delimiter string
	Note      string
	Metadata  Metadata
	Line      int // 1-based, from the producing scan
}

// Selector decides whether a code-mod applies to an annotation.
type Selector func(Annotation) bool

// Transform produces the new metadata for a selected annotation.
type Transform func(Metadata) Metadata

// SelectAll matches every annotation.
func SelectAll(Annotation) bool { return true }

// SelectCitingIssue matches annotations citing the given rendered reference.
func SelectCitingIssue(ref string) Selector {
	return func(a Annotation) bool {
		return a.Metadata.Issue != nil && a.Metadata.Issue.String() == ref
	}
}

// SelectTracked matches annotations with any issue citation.
func SelectTracked(a Annotation) bool { return a.Metadata.Issue != nil }

// SelectUntracked matches annotations without an issue citation.
func SelectUntracked(a Annotation) bool { return a.Metadata.Issue == nil }

// SelectAssignedTo matches annotations assigned to the given name.
func SelectAssignedTo(name string) Selector {
	return func(a Annotation) bool { return a.Metadata.Assignee == name }
}

// SelectAssigned matches annotations with any assignee.
func SelectAssigned(a Annotation) bool { return a.Metadata.Assignee != "" }

// SelectUnassigned matches annotations without an assignee.
func SelectUnassigned(a Annotation) bool { return a.Metadata.Assignee == "" }

// SelectWithDueDate matches annotations with a due date.
func SelectWithDueDate(a Annotation) bool { return a.Metadata.Due != "" }

// SelectWithoutDueDate matches annotations without a due date.
func SelectWithoutDueDate(a Annotation) bool { return a.Metadata.Due == "" }

// SetIssue replaces the issue citation.
func SetIssue(ref *IssueRef) Transform {
	return func(m Metadata) Metadata {
		m.Issue = ref
		return m
	}
}

// ClearIssue removes the issue citation.
func ClearIssue(m Metadata) Metadata {
	m.Issue = nil
	return m
}

// SetAssignee replaces the assignee.
func SetAssignee(name string) Transform {
	return func(m Metadata) Metadata {
		m.Assignee = name
		return m
	}
}

// ClearAssignee removes the assignee.
func ClearAssignee(m Metadata) Metadata {
	m.Assignee = ""
	return m
}

// SetDueDate replaces the due date.
func SetDueDate(date string) Transform {
	return func(m Metadata) Metadata {
		m.Due = date
		return m
	}
}

// ClearDueDate removes the due date.
func ClearDueDate(m Metadata) Metadata {
	m.Due = ""
	return m
}

// KeepMetadata leaves the metadata unchanged; rewriting with it canonicalizes
// the line's formatting only.
func KeepMetadata(m Metadata) Metadata { return m }
