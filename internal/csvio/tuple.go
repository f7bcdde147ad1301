// Package csvio reads and writes the pipeline's CSV artifacts: the
// annotated play-by-play table and the on/off report.
package csvio

import (
	"fmt"
	"strings"
)

// FormatTuple renders names as the tuple literal the artifacts use for
// lineups and player sets: ('A', 'B'), with a trailing comma for single
// elements and double quotes around names containing an apostrophe.
func FormatTuple(names []string) string {
	if len(names) == 0 {
		return "()"
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteName(name)
	}
	if len(quoted) == 1 {
		return "(" + quoted[0] + ",)"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

func quoteName(name string) string {
	if strings.Contains(name, "'") && !strings.Contains(name, `"`) {
		return `"` + name + `"`
	}
	escaped := strings.ReplaceAll(name, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}

// ParseTuple reads a tuple literal back into its names. The empty tuple
// () yields an empty slice.
func ParseTuple(s string) ([]string, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return nil, fmt.Errorf("parse tuple %q: not a tuple literal", s)
	}

	inner := t[1 : len(t)-1]
	names := make([]string, 0, 5)
	i := 0
	for i < len(inner) {
		switch c := inner[i]; {
		case c == ' ' || c == ',':
			i++
		case c == '\'' || c == '"':
			name, next, err := scanQuoted(inner, i)
			if err != nil {
				return nil, fmt.Errorf("parse tuple %q: %w", s, err)
			}
			names = append(names, name)
			i = next
		default:
			return nil, fmt.Errorf("parse tuple %q: unexpected character %q", s, c)
		}
	}
	return names, nil
}

// scanQuoted consumes one quoted element starting at the opening quote,
// returning the unescaped text and the index just past the closing
// quote. Backslash escapes inside single quotes are honored.
func scanQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(s[i+1])
			i += 2
		case c == quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated quote")
}
