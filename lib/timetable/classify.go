package timetable

import (
	"fmt"
	"regexp"
	"strings"

	"schedule-scraper/lib/textutil"
)

// DateContext is the date/weekday/week-number triple most recently
// observed while walking rows. It is local to a single walk: header
// rows overwrite it, lesson rows attach to whatever it currently holds.
type DateContext struct {
	Date    string // DD.MM.YYYY
	Weekday string // Cyrillic abbreviation, e.g. "Пн"
	Week    string // week number within the semester
}

func (c DateContext) Established() bool {
	return c.Date != ""
}

// Prefix is the subject-label prefix shared by every lesson of the day.
func (c DateContext) Prefix() string {
	return fmt.Sprintf("%s %s-%s", c.Date, c.Weekday, c.Week)
}

var (
	headerRegex = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})\s*([А-Яа-я]+)-(\d+)`)
	// \b is ASCII-only in RE2, so a Cyrillic letter glued to a digit
	// ("к1") would count as a boundary; spell the guards out like
	// the room pattern does
	pairRegex   = regexp.MustCompile(`(?:^|[^\pL\pN_])([1-7])(?:[^\pL\pN_]|$)`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

type rowClass int

const (
	rowNoise rowClass = iota
	rowHeader
	rowLesson
)

// rowInfo is the outcome of classifying one table row.
type rowInfo struct {
	class rowClass
	// header rows: the replacement context
	context DateContext
	// lesson rows, and header rows that inline the first pair
	pair    int
	subject string
}

// classifyRow decides what one row carries. Rules, in priority order:
// a date header (possibly with the week's first lesson collapsed into
// it, a quirk of the source layout), a lesson row, or noise.
func classifyRow(cells []string, ctx DateContext) rowInfo {
	if len(cells) == 0 {
		return rowInfo{class: rowNoise}
	}

	if m := headerRegex.FindStringSubmatch(strings.TrimSpace(cells[0])); m != nil {
		info := rowInfo{
			class:   rowHeader,
			context: DateContext{Date: m[1], Weekday: m[2], Week: m[3]},
		}
		// a 3-cell header row may also encode pair 1 inline
		if len(cells) == 3 {
			if pm := pairRegex.FindStringSubmatch(cells[1]); pm != nil && pm[1] == "1" && textutil.NonTrivial(cells[2]) {
				info.pair = 1
				info.subject = cells[2]
			}
		}
		return info
	}

	var pairCell, subjectCell string
	switch len(cells) {
	case 2:
		// rowspan on the date column leaves just [pair, subject]
		pairCell, subjectCell = cells[0], cells[1]
	case 3:
		pairCell, subjectCell = cells[1], cells[2]
	default:
		return rowInfo{class: rowNoise}
	}

	// lesson rows before any header have no date to attach to
	if !ctx.Established() {
		return rowInfo{class: rowNoise}
	}
	// a lone digit with an empty subject cell, e.g. ["8", ""]
	if strings.TrimSpace(subjectCell) == "" && digitsRegex.MatchString(strings.TrimSpace(pairCell)) {
		return rowInfo{class: rowNoise}
	}

	m := pairRegex.FindStringSubmatch(pairCell)
	if m == nil {
		return rowInfo{class: rowNoise}
	}
	if !textutil.NonTrivial(subjectCell) {
		return rowInfo{class: rowNoise}
	}

	return rowInfo{
		class:   rowLesson,
		pair:    int(m[1][0] - '0'),
		subject: subjectCell,
	}
}
