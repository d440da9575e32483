package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims a string and squeezes inner whitespace runs
// down to single spaces.
func CollapseSpace(s string) string {
	s = strings.TrimSpace(s)
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// NonTrivial reports whether a cell text carries real content: not
// empty, not a lone non-breaking space, at least three runes long.
func NonTrivial(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == " " {
		return false
	}
	return len([]rune(s)) >= 3
}
