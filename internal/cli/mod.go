package cli

import (
	"fmt"

	"github.com/runoshun/todoctl/internal/app"
	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newModCommand creates the mod command and its code-mod subcommands.
func newModCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Batch-rewrite annotation metadata",
		Long: `Code-mods over annotation metadata. Each subcommand selects annotations
by their current metadata and rewrites the matching lines in place; notes,
indentation and comment delimiters are preserved.

A selector that matches nothing is a reported no-op: no file is touched
and the exit code is zero.`,
	}

	cmd.AddCommand(
		newModRemoveIssueCommand(c),
		newModRemoveAllIssuesCommand(c),
		newModRenameIssueCommand(c),
		newModAddIssueCommand(c),
		newModRemoveAssigneeCommand(c),
		newModRemoveAllAssigneesCommand(c),
		newModRenameAssigneeCommand(c),
		newModAssignUnassignedCommand(c),
		newModAssignIssueCommand(c),
		newModRemoveAllDueDatesCommand(c),
		newModAddMissingDueDatesCommand(c),
		newModSetIssueDueDateCommand(c),
	)
	return cmd
}

// runMod executes one code-mod and reports the outcome.
func runMod(cmd *cobra.Command, c *app.Container, sel domain.Selector, tr domain.Transform, emptyMsg, doneMsg string) error {
	out, err := c.ModifyAnnotationsUseCase().Execute(cmd.Context(), usecase.ModifyAnnotationsInput{
		Paths:     scanPaths(cmd, c),
		Select:    sel,
		Transform: tr,
	})
	if err != nil {
		return err
	}
	if out.Count == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), emptyMsg)
		return nil
	}
	printRewriteFailures(cmd.ErrOrStderr(), out.Report)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d annotation(s) in %d file(s))\n", doneMsg, out.Count, out.Report.Files)
	return nil
}

// parseIssueFlag validates a CLI-supplied replacement issue reference
// before anything is scanned or rewritten.
func parseIssueFlag(value string) (*domain.IssueRef, error) {
	ref, ok := domain.ParseIssueRef(value)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIssueRef, value)
	}
	return ref, nil
}

func newModRemoveIssueCommand(c *app.Container) *cobra.Command {
	var issue string
	cmd := &cobra.Command{
		Use:   "remove-issue",
		Short: "Remove one issue citation everywhere it appears",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectCitingIssue(issue), domain.ClearIssue,
				fmt.Sprintf("no TODOs citing issue %q", issue),
				fmt.Sprintf("removed all citations of issue %q", issue))
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue reference to remove")
	_ = cmd.MarkFlagRequired("issue")
	return cmd
}

func newModRemoveAllIssuesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-all-issues",
		Short: "Remove every issue citation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectTracked, domain.ClearIssue,
				"no TODOs citing any issues",
				"removed all issue citations")
		},
	}
}

func newModRenameIssueCommand(c *app.Container) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "rename-issue",
		Short: "Replace one issue citation with another",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseIssueFlag(to)
			if err != nil {
				return err
			}
			return runMod(cmd, c,
				domain.SelectCitingIssue(from), domain.SetIssue(ref),
				fmt.Sprintf("no TODOs citing issue %q", from),
				fmt.Sprintf("renamed issue %q to %q", from, to))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Issue reference to replace")
	cmd.Flags().StringVar(&to, "to", "", "Replacement issue reference")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newModAddIssueCommand(c *app.Container) *cobra.Command {
	var issue string
	cmd := &cobra.Command{
		Use:   "add-issue",
		Short: "Cite an issue from every untracked annotation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseIssueFlag(issue)
			if err != nil {
				return err
			}
			return runMod(cmd, c,
				domain.SelectUntracked, domain.SetIssue(ref),
				"no untracked TODOs",
				fmt.Sprintf("all untracked TODOs now cite issue %q", issue))
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue reference to add")
	_ = cmd.MarkFlagRequired("issue")
	return cmd
}

func newModRemoveAssigneeCommand(c *app.Container) *cobra.Command {
	var assignee string
	cmd := &cobra.Command{
		Use:   "remove-assignee",
		Short: "Unassign one person everywhere",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectAssignedTo(assignee), domain.ClearAssignee,
				fmt.Sprintf("no TODOs assigned to %q", assignee),
				fmt.Sprintf("unassigned %q everywhere", assignee))
		},
	}
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee to remove")
	_ = cmd.MarkFlagRequired("assignee")
	return cmd
}

func newModRemoveAllAssigneesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-all-assignees",
		Short: "Remove every assignee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectAssigned, domain.ClearAssignee,
				"no TODOs assigned",
				"unassigned all TODOs")
		},
	}
}

func newModRenameAssigneeCommand(c *app.Container) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "rename-assignee",
		Short: "Reassign one person's annotations to another",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectAssignedTo(from), domain.SetAssignee(to),
				fmt.Sprintf("no TODOs assigned to %q", from),
				fmt.Sprintf("reassigned %q to %q", from, to))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Current assignee")
	cmd.Flags().StringVar(&to, "to", "", "New assignee")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newModAssignUnassignedCommand(c *app.Container) *cobra.Command {
	var assignee string
	cmd := &cobra.Command{
		Use:   "assign-unassigned",
		Short: "Assign every unassigned annotation to one person",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectUnassigned, domain.SetAssignee(assignee),
				"no unassigned TODOs",
				fmt.Sprintf("assigned all unassigned TODOs to %q", assignee))
		},
	}
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee to set")
	_ = cmd.MarkFlagRequired("assignee")
	return cmd
}

func newModAssignIssueCommand(c *app.Container) *cobra.Command {
	var issue, assignee string
	cmd := &cobra.Command{
		Use:   "assign-issue",
		Short: "Assign everyone's annotations citing an issue to one person",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectCitingIssue(issue), domain.SetAssignee(assignee),
				fmt.Sprintf("no TODOs citing issue %q", issue),
				fmt.Sprintf("assigned all TODOs citing issue %q to %q", issue, assignee))
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue reference to match")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee to set")
	_ = cmd.MarkFlagRequired("issue")
	_ = cmd.MarkFlagRequired("assignee")
	return cmd
}

func newModRemoveAllDueDatesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-all-due-dates",
		Short: "Remove every due date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectWithDueDate, domain.ClearDueDate,
				"no TODOs with due dates",
				"removed all due dates")
		},
	}
}

func newModAddMissingDueDatesCommand(c *app.Container) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "add-missing-due-dates",
		Short: "Set a due date on every annotation missing one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectWithoutDueDate, domain.SetDueDate(date),
				"no TODOs without due dates",
				fmt.Sprintf("all TODOs without due dates are now due %q", date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Due date to set (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newModSetIssueDueDateCommand(c *app.Container) *cobra.Command {
	var issue, date string
	cmd := &cobra.Command{
		Use:   "set-issue-due-date",
		Short: "Set a due date on every annotation citing an issue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMod(cmd, c,
				domain.SelectCitingIssue(issue), domain.SetDueDate(date),
				fmt.Sprintf("no TODOs citing issue %q", issue),
				fmt.Sprintf("all TODOs citing issue %q are now due %q", issue, date))
		},
	}
	cmd.Flags().StringVar(&issue, "issue", "", "Issue reference to match")
	cmd.Flags().StringVar(&date, "date", "", "Due date to set (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("issue")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
