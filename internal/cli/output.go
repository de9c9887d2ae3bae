package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/todoctl/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for query commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// addFormatFlag registers the shared output format flag.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", formatText, "Output format (text, json, yaml)")
}

// annotationRecord is the machine-readable shape of an annotation.
type annotationRecord struct {
	Path      string `json:"path" yaml:"path"`
	Line      int    `json:"line" yaml:"line"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	Issue     string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Assignee  string `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Due       string `json:"due,omitempty" yaml:"due,omitempty"`
	Note      string `json:"note" yaml:"note"`
}

func toRecords(list []domain.Annotation) []annotationRecord {
	records := make([]annotationRecord, 0, len(list))
	for _, a := range list {
		rec := annotationRecord{
			Path:      a.Path,
			Line:      a.Line,
			Delimiter: a.Delimiter,
			Assignee:  a.Metadata.Assignee,
			Due:       a.Metadata.Due,
			Note:      a.DisplayNote(),
		}
		if a.Metadata.Issue != nil {
			rec.Issue = a.Metadata.Issue.String()
		}
		records = append(records, rec)
	}
	return records
}

// writeAnnotations renders the annotation list in the requested format.
func writeAnnotations(w io.Writer, list []domain.Annotation, format string) error {
	switch format {
	case formatText:
		for _, a := range list {
			_, _ = fmt.Fprintln(w, a.String())
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(list))
	case formatYAML:
		return yaml.NewEncoder(w).Encode(toRecords(list))
	}
	return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
}

// groupRecord is the machine-readable shape of one aggregation bucket.
type groupRecord struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// writeGroups renders grouped counts in the requested format.
func writeGroups(w io.Writer, groups []domain.GroupCount, format string) error {
	switch format {
	case formatText:
		for _, g := range groups {
			_, _ = fmt.Fprintf(w, "%s: %d\n", g.Key, g.Count)
		}
		return nil
	case formatJSON:
		records := make([]groupRecord, 0, len(groups))
		for _, g := range groups {
			records = append(records, groupRecord(g))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatYAML:
		records := make([]groupRecord, 0, len(groups))
		for _, g := range groups {
			records = append(records, groupRecord(g))
		}
		return yaml.NewEncoder(w).Encode(records)
	}
	return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
}

// printRewriteFailures reports per-file rewrite errors without failing the
// command; the run is best-effort across files.
func printRewriteFailures(w io.Writer, report domain.RewriteReport) {
	for _, f := range report.Failures {
		_, _ = fmt.Fprintf(w, "warning: %s\n", f.Error())
	}
}
