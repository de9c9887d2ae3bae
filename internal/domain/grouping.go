package domain

import (
	"fmt"
	"sort"
)

// GroupKey selects the metadata field a report is grouped by.
type GroupKey int

const (
	GroupByAssignee GroupKey = iota
	GroupByIssue
	GroupByDue
)

// Group sentinels for annotations without the grouped field.
const (
	UnassignedGroup = "<unassigned>"
	UntrackedGroup  = "<untracked>"
	SomedayGroup    = "<someday>"
)

// ParseGroupKey parses a flag-facing group key name. Anything but
// "assignee", "issue" or "due" is rejected at the boundary.
func ParseGroupKey(s string) (GroupKey, error) {
	switch s {
	case "assignee":
		return GroupByAssignee, nil
	case "issue":
		return GroupByIssue, nil
	case "due":
		return GroupByDue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroupKey, s)
}

// String returns the flag-facing name of the key.
func (k GroupKey) String() string {
	switch k {
	case GroupByAssignee:
		return "assignee"
	case GroupByIssue:
		return "issue"
	case GroupByDue:
		return "due"
	}
	return "unknown"
}

// GroupCount is one aggregation bucket.
type GroupCount struct {
	Key   string
	Count int
}

// GroupAndCount buckets annotations by the grouped field, substituting the
// matching sentinel for absent values. Results are sorted by count
// descending, then key ascending for a stable output order.
func GroupAndCount(list []Annotation, key GroupKey) []GroupCount {
	counts := make(map[string]int)
	for _, a := range list {
		counts[groupValue(a, key)]++
	}

	out := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func groupValue(a Annotation, key GroupKey) string {
	switch key {
	case GroupByAssignee:
		if a.Metadata.Assignee == "" {
			return UnassignedGroup
		}
		return a.Metadata.Assignee
	case GroupByIssue:
		if a.Metadata.Issue == nil {
			return UntrackedGroup
		}
		return a.Metadata.Issue.String()
	case GroupByDue:
		if a.Metadata.Due == "" {
			return SomedayGroup
		}
		return a.Metadata.Due
	}
	return ""
}
