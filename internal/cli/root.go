// Package cli provides the command-line interface for todoctl.
package cli

import (
	"github.com/runoshun/todoctl/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupQuery   = "query"
	groupRewrite = "rewrite"
)

// NewRootCommand creates the root command for todoctl.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todoctl",
		Short: "Query, lint and rewrite TODO comments",
		Long: `todoctl treats the TODO comments in a source tree as a lightweight,
queryable issue tracker. It scans for annotations of the form

  // TODO(#123, @alice, 2030-01-15): hook up the cache layer

extracts the metadata between the parentheses (issue reference, assignee,
due date), and supports filtering, reporting, lint rules, and batch
in-place rewriting of that metadata.

File walks honor .gitignore rules. Annotations are re-scanned on every
invocation; nothing is persisted.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringArray("path", nil, "Root path to scan (repeatable; default: current directory)")

	root.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: groupRewrite, Title: "Rewrite Commands:"},
	)

	listCmd := newListCommand(c)
	listCmd.GroupID = groupQuery
	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupQuery
	lintCmd := newLintCommand(c)
	lintCmd.GroupID = groupQuery

	fmtCmd := newFmtCommand(c)
	fmtCmd.GroupID = groupRewrite
	modCmd := newModCommand(c)
	modCmd.GroupID = groupRewrite

	root.AddCommand(listCmd, reportCmd, lintCmd, fmtCmd, modCmd)
	return root
}

// scanPaths resolves the root paths for a command: --path flags first,
// then configured defaults, then the current directory.
func scanPaths(cmd *cobra.Command, c *app.Container) []string {
	paths, _ := cmd.Flags().GetStringArray("path")
	if len(paths) > 0 {
		return paths
	}
	if c != nil && c.Config != nil {
		return c.Config.Scan.Paths
	}
	return nil
}
