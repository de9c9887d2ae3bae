package scan

import (
	"fmt"
	"regexp"

	"github.com/runoshun/todoctl/internal/domain"
)

// DefaultPattern recognizes a line, block or hash comment whose first word
// is a case-insensitive TODO keyword, followed by an optional parenthesized
// metadata payload, an optional colon, and a required note.
const DefaultPattern = `^\s*(//|/\*|#)\s*(?i:todo)(?:\((.+?)\))?:?\s+(.+?)\s*$`

// Matcher matches single source lines against the annotation grammar.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles the annotation pattern. A pattern that fails to
// compile is a startup configuration error.
func NewMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile annotation pattern: %w", err)
	}
	return &Matcher{re: re}, nil
}

// Match extracts an annotation from one line. ok is false both for
// non-matches and for near matches missing a delimiter or note, which are
// dropped silently.
func (m *Matcher) Match(path string, lineNumber int, line string) (domain.Annotation, bool) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return domain.Annotation{}, false
	}
	delimiter, payload, note := groups[1], groups[2], groups[3]
	if delimiter == "" || note == "" {
		return domain.Annotation{}, false
	}
	return domain.Annotation{
		Path:      path,
		Delimiter: delimiter,
		RawLine:   line,
		Payload:   payload,
		Note:      note,
		Metadata:  domain.ParseMetadata(payload),
		Line:      lineNumber,
	}, true
}
