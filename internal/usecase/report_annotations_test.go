package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/testutil"
)

func TestReportAnnotations_Execute_BareCount(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{
			{Path: "a.go", Note: "first"},
			{Path: "b.go", Note: "second"},
		},
	}
	out, err := NewReportAnnotations(scanner, fixedClock()).Execute(context.Background(), ReportAnnotationsInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Nil(t, out.Groups)
}

func TestReportAnnotations_Execute_Grouped(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{
			{Path: "a.go", Metadata: domain.ParseMetadata("@alice")},
			{Path: "b.go", Metadata: domain.ParseMetadata("@alice")},
			{Path: "c.go"},
		},
	}
	key := domain.GroupByAssignee
	out, err := NewReportAnnotations(scanner, fixedClock()).Execute(context.Background(), ReportAnnotationsInput{
		GroupBy: &key,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, []domain.GroupCount{
		{Key: "alice", Count: 2},
		{Key: domain.UnassignedGroup, Count: 1},
	}, out.Groups)
}

func TestReportAnnotations_Execute_FiltersBeforeGrouping(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{
			{Path: "a.go", Metadata: domain.ParseMetadata("@alice, #7")},
			{Path: "b.go", Metadata: domain.ParseMetadata("@bob")},
		},
	}
	key := domain.GroupByIssue
	out, err := NewReportAnnotations(scanner, fixedClock()).Execute(context.Background(), ReportAnnotationsInput{
		Filters: domain.Filters{Assignees: []string{"alice"}},
		GroupBy: &key,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, []domain.GroupCount{{Key: "#7", Count: 1}}, out.Groups)
}

func TestReportAnnotations_Execute_ScanError(t *testing.T) {
	scanErr := errors.New("walk failed")
	_, err := NewReportAnnotations(&testutil.MockScanner{Err: scanErr}, fixedClock()).
		Execute(context.Background(), ReportAnnotationsInput{})
	require.ErrorIs(t, err, scanErr)
}
