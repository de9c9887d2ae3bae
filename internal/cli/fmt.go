package cli

import (
	"fmt"

	"github.com/runoshun/todoctl/internal/app"
	"github.com/runoshun/todoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newFmtCommand creates the fmt command.
func newFmtCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite all TODO annotations into canonical form",
		Long: `Rewrite every TODO annotation in place into canonical form:

  <indent><delimiter> TODO(<issue>, @<assignee>, <due>): <note>

Metadata tokens are reordered, spacing is normalized, and everything else
on each line (and every other line) is left byte-for-byte intact.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.FormatAnnotationsUseCase().Execute(cmd.Context(), usecase.FormatAnnotationsInput{
				Paths: scanPaths(cmd, c),
			})
			if err != nil {
				return err
			}
			if out.Count == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no TODOs found")
				return nil
			}
			printRewriteFailures(cmd.ErrOrStderr(), out.Report)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "formatted %d annotation(s) in %d file(s)\n", out.Count, out.Report.Files)
			return nil
		},
	}
	return cmd
}
