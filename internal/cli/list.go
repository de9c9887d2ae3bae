package cli

import (
	"github.com/runoshun/todoctl/internal/app"
	"github.com/runoshun/todoctl/internal/domain"
	"github.com/runoshun/todoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts filterOptions
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List TODO annotations",
		Long: `List every TODO annotation found under the scan paths, optionally
narrowed by assignee, issue citation and due date.

Examples:
  # Everything assigned to alice
  todoctl list --assignee alice

  # Annotations citing either issue, plus the untracked ones
  todoctl list --issue '#12' --issue PROJ-7 --untracked

  # Past-due work, machine readable
  todoctl list --overdue --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListAnnotationsUseCase().Execute(cmd.Context(), usecase.ListAnnotationsInput{
				Paths:   scanPaths(cmd, c),
				Filters: opts.filters(),
			})
			if err != nil {
				return err
			}
			if len(out.Annotations) == 0 {
				return domain.ErrNoAnnotations
			}
			return writeAnnotations(cmd.OutOrStdout(), out.Annotations, format)
		},
	}

	addFilterFlags(cmd, &opts)
	addFormatFlag(cmd, &format)
	return cmd
}
