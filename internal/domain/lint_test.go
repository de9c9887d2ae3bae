package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func canonical(t *testing.T, payload, note string) Annotation {
	t.Helper()
	meta := ParseMetadata(payload)
	return Annotation{
		Delimiter: DelimiterLine,
		RawLine:   RenderAnnotationLine("", DelimiterLine, note, meta),
		Payload:   payload,
		Note:      note,
		Metadata:  meta,
	}
}

func TestLintConfig_Check(t *testing.T) {
	numbered := IssueNumbered
	projectKey := IssueProjectKey

	tests := []struct {
		name       string
		cfg        LintConfig
		annotation Annotation
		want       []Violation
	}{
		{
			name:       "clean annotation with empty config",
			cfg:        LintConfig{},
			annotation: canonical(t, "", "fix this"),
			want:       nil,
		},
		{
			name: "non canonical formatting",
			cfg:  LintConfig{},
			annotation: Annotation{
				Delimiter: DelimiterLine,
				RawLine:   "\t//TODO:fix this",
				Note:      "fix this",
			},
			want: []Violation{ViolationInvalidFormat},
		},
		{
			name:       "missing assignee",
			cfg:        LintConfig{RequireAssignees: true},
			annotation: canonical(t, "", "fix this"),
			want:       []Violation{ViolationMissingAssignee},
		},
		{
			name:       "assignee outside allow list",
			cfg:        LintConfig{AllowedAssignees: []string{"alice"}},
			annotation: canonical(t, "@bob", "fix this"),
			want:       []Violation{ViolationInvalidAssignee},
		},
		{
			name:       "absent assignee is not invalid",
			cfg:        LintConfig{AllowedAssignees: []string{"alice"}},
			annotation: canonical(t, "", "fix this"),
			want:       nil,
		},
		{
			name:       "missing issue",
			cfg:        LintConfig{RequireIssues: true},
			annotation: canonical(t, "@alice", "fix this"),
			want:       []Violation{ViolationMissingIssue},
		},
		{
			name:       "issue format mismatch",
			cfg:        LintConfig{IssueFormat: &numbered},
			annotation: canonical(t, "PROJ-7", "fix this"),
			want:       []Violation{ViolationInvalidIssueFormat},
		},
		{
			name:       "issue format match",
			cfg:        LintConfig{IssueFormat: &projectKey},
			annotation: canonical(t, "PROJ-7", "fix this"),
			want:       nil,
		},
		{
			name:       "project key outside allow list",
			cfg:        LintConfig{ProjectKeys: []string{"CORE"}},
			annotation: canonical(t, "PROJ-7", "fix this"),
			want:       []Violation{ViolationInvalidProjectKey},
		},
		{
			name:       "numbered issue skips project key check",
			cfg:        LintConfig{ProjectKeys: []string{"CORE"}},
			annotation: canonical(t, "#7", "fix this"),
			want:       nil,
		},
		{
			name:       "missing due date",
			cfg:        LintConfig{RequireDueDates: true},
			annotation: canonical(t, "#7", "fix this"),
			want:       []Violation{ViolationMissingDueDate},
		},
		{
			name: "violations accumulate independently",
			cfg: LintConfig{
				RequireAssignees: true,
				RequireIssues:    true,
				RequireDueDates:  true,
			},
			annotation: canonical(t, "", "fix this"),
			want: []Violation{
				ViolationMissingAssignee,
				ViolationMissingIssue,
				ViolationMissingDueDate,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Check(tt.annotation))
		})
	}
}
