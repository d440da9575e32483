package timetable

import "strings"

type dedupKey struct {
	subject string
	pair    int
	time    string
	room    string
	kind    string
	teacher string
}

// canonicalize filters out malformed candidates and removes duplicate
// records, keeping the first occurrence and preserving original order.
// Later duplicates are dropped silently, never merged.
func canonicalize(candidates []Lesson) []Lesson {
	cleaned := []Lesson{}
	seen := map[dedupKey]bool{}

	for _, c := range candidates {
		if c.Subject == "" || c.Time == "" {
			continue
		}
		// the known noise shape: a bare digit next to an empty cell
		if len(c.Raw) == 2 && digitsRegex.MatchString(strings.TrimSpace(c.Raw[0])) && c.Raw[1] == "" {
			continue
		}

		key := dedupKey{
			subject: c.Subject,
			pair:    c.Pair,
			time:    c.Time,
			room:    c.Room,
			kind:    c.Kind,
			teacher: c.Teacher,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, c)
	}

	return cleaned
}
