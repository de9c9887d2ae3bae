package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/testutil"
)

func TestReportCommand_BareCount(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{
			annotation("a.go", 1, "", "first"),
			annotation("b.go", 2, "", "second"),
		},
	}
	stdout, _, err := execute(t, newTestContainer(scanner, &testutil.MockRewriter{}), "report")
	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)
}

func TestReportCommand_GroupByIssue(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{
			annotation("a.go", 1, "PROJ-7", "first"),
			annotation("b.go", 2, "PROJ-7", "second"),
			annotation("c.go", 3, "", "third"),
		},
	}
	stdout, _, err := execute(t, newTestContainer(scanner, &testutil.MockRewriter{}), "report", "--group-by", "issue")
	require.NoError(t, err)
	assert.Equal(t, "PROJ-7: 2\n<untracked>: 1\n", stdout)
}

func TestReportCommand_StatAlias(t *testing.T) {
	scanner := &testutil.MockScanner{
		Annotations: []domain.Annotation{annotation("a.go", 1, "", "first")},
	}
	stdout, _, err := execute(t, newTestContainer(scanner, &testutil.MockRewriter{}), "stat")
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)
}

func TestReportCommand_UnknownGroupKeyFailsBeforeScanning(t *testing.T) {
	scanner := &testutil.MockScanner{}
	_, _, err := execute(t, newTestContainer(scanner, &testutil.MockRewriter{}), "report", "--group-by", "priority")
	require.ErrorIs(t, err, domain.ErrUnknownGroupKey)
	assert.Zero(t, scanner.Calls)
}

func TestReportCommand_NoMatchesFails(t *testing.T) {
	_, _, err := execute(t, newTestContainer(&testutil.MockScanner{}, &testutil.MockRewriter{}), "report")
	require.ErrorIs(t, err, domain.ErrNoAnnotations)
}
