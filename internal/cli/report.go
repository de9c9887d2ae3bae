package cli

import (
	"fmt"

	"github.com/runoshun/todoctl/internal/app"
	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	var opts filterOptions
	var format string
	var groupBy string

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"stat"},
		Short:   "Count TODO annotations, optionally grouped",
		Long: `Count the TODO annotations matching the filters. Without --group-by
the bare count is printed; with it, per-bucket counts sorted by size.

Examples:
  # How many TODOs cite each issue?
  todoctl report --group-by issue

  # Overdue count per assignee
  todoctl report --overdue --group-by assignee`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Validate the grouping key before scanning anything.
			var key *domain.GroupKey
			if groupBy != "" {
				k, err := domain.ParseGroupKey(groupBy)
				if err != nil {
					return err
				}
				key = &k
			}

			out, err := c.ReportAnnotationsUseCase().Execute(cmd.Context(), usecase.ReportAnnotationsInput{
				Paths:   scanPaths(cmd, c),
				Filters: opts.filters(),
				GroupBy: key,
			})
			if err != nil {
				return err
			}
			if out.Total == 0 {
				return domain.ErrNoAnnotations
			}

			if key == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Total)
				return nil
			}
			return writeGroups(cmd.OutOrStdout(), out.Groups, format)
		},
	}

	addFilterFlags(cmd, &opts)
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&groupBy, "group-by", "", "Group counts by assignee, issue or due")
	return cmd
}
