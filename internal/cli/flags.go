package cli

import (
	"github.com/runoshun/todoctl/internal/domain"
	"github.com/spf13/cobra"
)

// filterOptions holds the query filter flags shared by list and report.
type filterOptions struct {
	assignees  []string
	issues     []string
	due        []string
	unassigned bool
	untracked  bool
	someday    bool
	overdue    bool
}

// addFilterFlags registers the shared filter flags on a query command.
func addFilterFlags(cmd *cobra.Command, opts *filterOptions) {
	cmd.Flags().StringArrayVar(&opts.assignees, "assignee", nil, "Match annotations assigned to this name (repeatable)")
	cmd.Flags().BoolVar(&opts.unassigned, "unassigned", false, "Match annotations without an assignee")
	cmd.Flags().StringArrayVar(&opts.issues, "issue", nil, "Match annotations citing this issue (repeatable)")
	cmd.Flags().BoolVar(&opts.untracked, "untracked", false, "Match annotations without an issue reference")
	cmd.Flags().StringArrayVar(&opts.due, "due", nil, "Match annotations due on this date (repeatable)")
	cmd.Flags().BoolVar(&opts.someday, "someday", false, "Match annotations without a due date")
	cmd.Flags().BoolVar(&opts.overdue, "overdue", false, "Match annotations whose due date has passed")
}

// filters converts the flag values into a domain filter set.
func (o filterOptions) filters() domain.Filters {
	return domain.Filters{
		Assignees:  o.assignees,
		Issues:     o.issues,
		Due:        o.due,
		Unassigned: o.unassigned,
		Untracked:  o.untracked,
		Someday:    o.someday,
		Overdue:    o.overdue,
	}
}
