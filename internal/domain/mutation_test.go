package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectors(t *testing.T) {
	tracked := Annotation{Metadata: ParseMetadata("PROJ-7, @bob, 2030-01-01")}
	bare := Annotation{}

	tests := []struct {
		name        string
		selector    Selector
		wantTracked bool
		wantBare    bool
	}{
		{"all", SelectAll, true, true},
		{"citing matching issue", SelectCitingIssue("PROJ-7"), true, false},
		{"citing other issue", SelectCitingIssue("#7"), false, false},
		{"tracked", SelectTracked, true, false},
		{"untracked", SelectUntracked, false, true},
		{"assigned to bob", SelectAssignedTo("bob"), true, false},
		{"assigned to alice", SelectAssignedTo("alice"), false, false},
		{"assigned", SelectAssigned, true, false},
		{"unassigned", SelectUnassigned, false, true},
		{"with due date", SelectWithDueDate, true, false},
		{"without due date", SelectWithoutDueDate, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTracked, tt.selector(tracked))
			assert.Equal(t, tt.wantBare, tt.selector(bare))
		})
	}
}

func TestTransforms(t *testing.T) {
	base := ParseMetadata("#7, @bob, 2030-01-01")

	t.Run("set issue", func(t *testing.T) {
		ref := &IssueRef{Kind: IssueProjectKey, Key: "PROJ", Number: "9"}
		got := SetIssue(ref)(base)
		assert.Equal(t, "PROJ-9", got.Issue.String())
		assert.Equal(t, "bob", got.Assignee)
	})

	t.Run("clear issue", func(t *testing.T) {
		got := ClearIssue(base)
		assert.Nil(t, got.Issue)
		assert.Equal(t, "bob", got.Assignee)
	})

	t.Run("set assignee", func(t *testing.T) {
		got := SetAssignee("alice")(base)
		assert.Equal(t, "alice", got.Assignee)
	})

	t.Run("clear assignee", func(t *testing.T) {
		got := ClearAssignee(base)
		assert.Empty(t, got.Assignee)
		assert.Equal(t, "2030-01-01", got.Due)
	})

	t.Run("set due date", func(t *testing.T) {
		got := SetDueDate("2031-02-02")(base)
		assert.Equal(t, "2031-02-02", got.Due)
	})

	t.Run("clear due date", func(t *testing.T) {
		got := ClearDueDate(base)
		assert.Empty(t, got.Due)
	})

	t.Run("keep", func(t *testing.T) {
		assert.Equal(t, base, KeepMetadata(base))
	})

	t.Run("transforms do not mutate the input", func(t *testing.T) {
		_ = SetAssignee("alice")(base)
		_ = ClearDueDate(base)
		assert.Equal(t, "bob", base.Assignee)
		assert.Equal(t, "2030-01-01", base.Due)
	})
}
