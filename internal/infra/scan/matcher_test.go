package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todoctl/internal/domain"
)

func TestNewMatcher_InvalidPattern(t *testing.T) {
	_, err := NewMatcher(`(unclosed`)
	require.Error(t, err)
}

func TestMatcher_Match(t *testing.T) {
	m, err := NewMatcher(DefaultPattern)
	require.NoError(t, err)

	tests := []struct {
		name string
		line string
		ok   bool
		want domain.Annotation
	}{
		{
			name: "bare line comment",
			line: "// TODO: fix this",
			ok:   true,
			want: domain.Annotation{
				Delimiter: "//",
				Note:      "fix this",
			},
		},
		{
			name: "hash comment with payload",
			line: "# TODO(@bob, #7): fix this",
			ok:   true,
			want: domain.Annotation{
				Delimiter: "#",
				Payload:   "@bob, #7",
				Note:      "fix this",
			},
		},
		{
			name: "block comment keeps closer in note",
			line: "/* TODO: fix this */",
			ok:   true,
			want: domain.Annotation{
				Delimiter: "/*",
				Note:      "fix this */",
			},
		},
		{
			name: "case insensitive keyword without colon",
			line: "\t// todo fix this",
			ok:   true,
			want: domain.Annotation{
				Delimiter: "//",
				Note:      "fix this",
			},
		},
		{
			name: "indentation and trailing space tolerated",
			line: "    # TODO(2030-01-01): fix this   ",
			ok:   true,
			want: domain.Annotation{
				Delimiter: "#",
				Payload:   "2030-01-01",
				Note:      "fix this",
			},
		},
		{name: "no delimiter", line: "TODO: fix this"},
		{name: "missing note", line: "// TODO:"},
		{name: "keyword not a prefix", line: "// NOTODO: fix this"},
		{name: "plain code line", line: "x := todoCount + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match("main.go", 7, tt.line)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, "main.go", got.Path)
			assert.Equal(t, 7, got.Line)
			assert.Equal(t, tt.line, got.RawLine)
			assert.Equal(t, tt.want.Delimiter, got.Delimiter)
			assert.Equal(t, tt.want.Payload, got.Payload)
			assert.Equal(t, tt.want.Note, got.Note)
			assert.Equal(t, domain.ParseMetadata(tt.want.Payload), got.Metadata)
		})
	}
}
