// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
)

// Comment delimiters recognized by the annotation grammar.
const (
	DelimiterLine  = "//"
	DelimiterBlock = "/*"
	DelimiterHash  = "#"
)

// Annotation is one recognized TODO comment occurrence.
// Fields are ordered to minimize memory padding.
type Annotation struct {
	Path      string   // Owning file
	Delimiter string   // "//", "/*" or "#"
	RawLine   string   // Full matched line, captured verbatim
	Payload   string   // Raw text between the parentheses ("" = absent)
	Note      string   // Human-readable note (required for a valid match)
	Metadata  Metadata // Structured record parsed from Payload
	Line      int      // 1-based line number, valid only for the producing scan
}

// DisplayNote returns the note with a block comment's trailing closer
// stripped. The stored note keeps the closer so rewrites preserve it.
func (a Annotation) DisplayNote() string {
	if a.Delimiter != DelimiterBlock {
		return a.Note
	}
	return strings.TrimRight(strings.TrimSuffix(a.Note, "*/"), " \t")
}

// String renders the annotation the way search results are printed:
// path:line [issue, @assignee, due:date] note.
func (a Annotation) String() string {
	note := a.DisplayNote()
	if a.Payload == "" {
		return fmt.Sprintf("%s:%d %s", a.Path, a.Line, note)
	}

	var info []string
	if a.Metadata.Issue != nil {
		info = append(info, a.Metadata.Issue.String())
	}
	if a.Metadata.Assignee != "" {
		info = append(info, "@"+a.Metadata.Assignee)
	}
	if a.Metadata.Due != "" {
		info = append(info, "due:"+a.Metadata.Due)
	}

	// Unrecognized payloads are still shown, verbatim.
	meta := a.Payload
	if len(info) > 0 {
		meta = strings.Join(info, ", ")
	}
	return fmt.Sprintf("%s:%d [%s] %s", a.Path, a.Line, meta, note)
}

// CanonicalLine re-renders the matched line in canonical form, keeping
// whatever precedes the comment delimiter. A line whose canonical form
// differs from RawLine is not canonically formatted.
func (a Annotation) CanonicalLine() string {
	idx := strings.Index(a.RawLine, a.Delimiter)
	if idx < 0 {
		return a.RawLine
	}
	return RenderAnnotationLine(a.RawLine[:idx], a.Delimiter, a.Note, a.Metadata)
}

// Mutate returns a Mutation that rewrites this annotation with new metadata.
// The note and delimiter are carried over unchanged.
func (a Annotation) Mutate(m Metadata) Mutation {
	return Mutation{
		Path:      a.Path,
		Delimiter: a.Delimiter,
		Note:      a.Note,
		Metadata:  m,
		Line:      a.Line,
	}
}

// RenderAnnotationLine builds a canonical annotation line. The metadata
// block is omitted entirely when the metadata is empty.
func RenderAnnotationLine(leading, delimiter, note string, m Metadata) string {
	if meta := m.String(); meta != "" {
		return leading + delimiter + " TODO(" + meta + "): " + note
	}
	return leading + delimiter + " TODO: " + note
}
