package notifier

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// TeacherDirectory maps surnames to full "Surname I.I." names. The
// extractor's surname pattern misses names with "ё" and names the
// page renders inside markup artifacts; this directory recovers them
// for display. It is page-specific configuration, not a general rule.
type TeacherDirectory map[string]string

func DefaultTeacherDirectory() TeacherDirectory {
	return TeacherDirectory{
		"Семёнов":    "Семёнов В.А.",
		"Иванов":     "Иванов И.И.",
		"Лумбунова":  "Лумбунова Н.Б.",
		"Извеков":    "Извеков Я.О.",
		"Тюрюханова": "Тюрюханова И.В.",
		"Елтунова":   "Елтунова И.Б.",
		"Белоусова":  "Белоусова М.В.",
		"Протасов":   "Протасов А.Е.",
		"Убеев":      "Убеев А.А.",
		"Жамбаев":    "Жамбаев Б.Ц.",
	}
}

// Lookup scans the subject text for a known surname. A single edit of
// distance is tolerated so е/ё drift and case endings in the source
// text still resolve. Surnames are tried in sorted order to keep the
// result deterministic when several could match.
func (d TeacherDirectory) Lookup(subject string) string {
	if len(d) == 0 {
		return ""
	}

	surnames := make([]string, 0, len(d))
	for surname := range d {
		surnames = append(surnames, surname)
	}
	sort.Strings(surnames)

	for _, word := range strings.Fields(subject) {
		word = strings.Trim(word, ".,;:()|")
		if len([]rune(word)) < 4 {
			continue
		}
		for _, surname := range surnames {
			if word == surname || matchr.DamerauLevenshtein(word, surname) <= 1 {
				return d[surname]
			}
		}
	}
	return ""
}
