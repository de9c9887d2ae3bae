package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotation_DisplayNote(t *testing.T) {
	tests := []struct {
		name       string
		annotation Annotation
		want       string
	}{
		{
			name:       "line comment unchanged",
			annotation: Annotation{Delimiter: DelimiterLine, Note: "fix this */"},
			want:       "fix this */",
		},
		{
			name:       "block comment closer stripped",
			annotation: Annotation{Delimiter: DelimiterBlock, Note: "fix this */"},
			want:       "fix this",
		},
		{
			name:       "block comment without closer",
			annotation: Annotation{Delimiter: DelimiterBlock, Note: "unterminated"},
			want:       "unterminated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.annotation.DisplayNote())
		})
	}
}

func TestAnnotation_String(t *testing.T) {
	tests := []struct {
		name       string
		annotation Annotation
		want       string
	}{
		{
			name: "bare note",
			annotation: Annotation{
				Path:      "main.go",
				Line:      3,
				Delimiter: DelimiterLine,
				Note:      "fix this",
			},
			want: "main.go:3 fix this",
		},
		{
			name: "full metadata in display order",
			annotation: Annotation{
				Path:      "main.go",
				Line:      3,
				Delimiter: DelimiterLine,
				Payload:   "@bob, #7, 2030-01-01",
				Note:      "fix this",
				Metadata:  ParseMetadata("@bob, #7, 2030-01-01"),
			},
			want: "main.go:3 [#7, @bob, due:2030-01-01] fix this",
		},
		{
			name: "unrecognized payload shown verbatim",
			annotation: Annotation{
				Path:      "main.go",
				Line:      3,
				Delimiter: DelimiterLine,
				Payload:   "urgent!!",
				Note:      "fix this",
			},
			want: "main.go:3 [urgent!!] fix this",
		},
		{
			name: "block comment note shown without closer",
			annotation: Annotation{
				Path:      "style.css",
				Line:      8,
				Delimiter: DelimiterBlock,
				Note:      "tidy */",
			},
			want: "style.css:8 tidy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.annotation.String())
		})
	}
}

func TestAnnotation_CanonicalLine(t *testing.T) {
	tests := []struct {
		name       string
		annotation Annotation
		want       string
	}{
		{
			name: "already canonical",
			annotation: Annotation{
				Delimiter: DelimiterLine,
				RawLine:   "    // TODO(@bob): fix this",
				Note:      "fix this",
				Metadata:  Metadata{Assignee: "bob"},
			},
			want: "    // TODO(@bob): fix this",
		},
		{
			name: "indentation preserved and spacing normalized",
			annotation: Annotation{
				Delimiter: DelimiterHash,
				RawLine:   "\t#todo fix this",
				Note:      "fix this",
			},
			want: "\t# TODO: fix this",
		},
		{
			name: "metadata reordered canonically",
			annotation: Annotation{
				Delimiter: DelimiterLine,
				RawLine:   "// TODO(@bob, #7): fix this",
				Note:      "fix this",
				Metadata:  ParseMetadata("@bob, #7"),
			},
			want: "// TODO(#7, @bob): fix this",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.annotation.CanonicalLine())
		})
	}
}

func TestRenderAnnotationLine(t *testing.T) {
	t.Run("empty metadata omits the block", func(t *testing.T) {
		got := RenderAnnotationLine("  ", DelimiterLine, "fix this", Metadata{})
		assert.Equal(t, "  // TODO: fix this", got)
	})

	t.Run("metadata rendered in canonical order", func(t *testing.T) {
		m := Metadata{
			Assignee: "bob",
			Due:      "2030-01-01",
			Issue:    &IssueRef{Kind: IssueNumbered, Number: "7"},
		}
		got := RenderAnnotationLine("", DelimiterHash, "fix this", m)
		assert.Equal(t, "# TODO(#7, @bob, 2030-01-01): fix this", got)
	})
}

func TestAnnotation_Mutate(t *testing.T) {
	a := Annotation{
		Path:      "main.go",
		Line:      3,
		Delimiter: DelimiterLine,
		RawLine:   "// TODO: fix this",
		Note:      "fix this",
	}
	m := a.Mutate(Metadata{Assignee: "bob"})

	assert.Equal(t, "main.go", m.Path)
	assert.Equal(t, 3, m.Line)
	assert.Equal(t, DelimiterLine, m.Delimiter)
	assert.Equal(t, "fix this", m.Note)
	assert.Equal(t, "bob", m.Metadata.Assignee)
}
