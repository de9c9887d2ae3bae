package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todoctl/internal/app"
	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	lintLocationStyle  = lipgloss.NewStyle().Bold(true)
	lintViolationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// newLintCommand creates the lint command.
func newLintCommand(c *app.Container) *cobra.Command {
	var opts struct {
		allowedAssignees []string
		projectKeys      []string
		issueFormat      string
		requireAssignees bool
		requireIssues    bool
		requireDueDates  bool
	}

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check TODO annotations against a rule set",
		Long: `Check every TODO annotation against the configured rule set. Rule
defaults come from .todoctl.toml; flags override them. Canonical
formatting is always checked.

The violation report goes to stderr and the exit code is non-zero when
any annotation has a violation, so lint fits CI pipelines.

Examples:
  todoctl lint --require-issues --issue-format project-key --issue-project-keys PROJ
  todoctl lint --require-assignees --allowed-assignees alice --allowed-assignees bob`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := c.Config.Lint.Rules()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("require-assignees") {
				rules.RequireAssignees = opts.requireAssignees
			}
			if cmd.Flags().Changed("require-issues") {
				rules.RequireIssues = opts.requireIssues
			}
			if cmd.Flags().Changed("require-due-dates") {
				rules.RequireDueDates = opts.requireDueDates
			}
			if cmd.Flags().Changed("allowed-assignees") {
				rules.AllowedAssignees = opts.allowedAssignees
			}
			if cmd.Flags().Changed("issue-project-keys") {
				rules.ProjectKeys = opts.projectKeys
			}
			if cmd.Flags().Changed("issue-format") {
				kind, err := domain.ParseIssueKind(opts.issueFormat)
				if err != nil {
					return err
				}
				rules.IssueFormat = &kind
			}

			out, err := c.LintAnnotationsUseCase().Execute(cmd.Context(), usecase.LintAnnotationsInput{
				Paths: scanPaths(cmd, c),
				Rules: rules,
			})
			if err != nil {
				return err
			}

			if len(out.Results) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d annotation(s) checked, no violations\n", out.Checked)
				return nil
			}

			printLintReport(cmd.ErrOrStderr(), out.Results)
			return fmt.Errorf("%w: %d of %d annotation(s)", domain.ErrLintFailed, len(out.Results), out.Checked)
		},
	}

	cmd.Flags().BoolVar(&opts.requireAssignees, "require-assignees", false, "Flag annotations without an assignee")
	cmd.Flags().BoolVar(&opts.requireIssues, "require-issues", false, "Flag annotations without an issue reference")
	cmd.Flags().BoolVar(&opts.requireDueDates, "require-due-dates", false, "Flag annotations without a due date")
	cmd.Flags().StringArrayVar(&opts.allowedAssignees, "allowed-assignees", nil, "Flag assignees outside this list (repeatable)")
	cmd.Flags().StringVar(&opts.issueFormat, "issue-format", "", "Required citation syntax (numbered, project-key)")
	cmd.Flags().StringArrayVar(&opts.projectKeys, "issue-project-keys", nil, "Flag project keys outside this list (repeatable)")
	return cmd
}

// printLintReport writes the full violation report, one annotation per
// block with its location, matched line and violation labels.
func printLintReport(w io.Writer, results []domain.LintResult) {
	for _, r := range results {
		location := fmt.Sprintf("%s:%d", r.Annotation.Path, r.Annotation.Line)
		_, _ = fmt.Fprintf(w, "%s %s\n", lintLocationStyle.Render(location), r.Annotation.DisplayNote())
		for _, v := range r.Violations {
			_, _ = fmt.Fprintf(w, "  %s\n", lintViolationStyle.Render(string(v)))
		}
	}
}
