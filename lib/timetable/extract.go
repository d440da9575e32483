package timetable

import (
	"regexp"
	"strconv"
	"strings"

	"schedule-scraper/lib/textutil"
)

// Subject cells look like "ТСВПС (Практич.) 314 Извеков Я.О.". The
// three field rules below are applied independently of each other;
// none of them short-circuits the rest, and subject cleanup removes
// exactly the substrings the room/teacher rules matched.
var (
	kindRegex = regexp.MustCompile(`(?i)\((Лек|Пр|Лаб|Сем|Зач|Практич\.?)\)`)
	// covers plain numeric rooms and alphanumeric lab codes ("319",
	// "А-404"). \b is ASCII-only in RE2 so the boundaries are spelled
	// out with explicit non-alphanumeric guards.
	roomRegex = regexp.MustCompile(`(?:^|[^\pL\pN_])([А-ЯA-Z]?-?\d{2,4}[A-Za-zА-Я]?)(?:[^\pL\pN_]|$)`)
	// surname plus two single-letter initials, each with a period.
	// "ё" is deliberately outside [а-я]: surnames containing it are
	// handled by the notifier's directory fallback instead.
	teacherRegex = regexp.MustCompile(`([А-Я][а-я]+ [А-Я]\.[А-Я]\.)`)
)

var kindByMarker = map[string]string{
	"лек":     KindLecture,
	"пр":      KindPractice,
	"практич": KindPractice,
	"лаб":     KindLaboratory,
	"сем":     KindSeminar,
	"зач":     KindExam,
}

func matchKind(cell string) (string, bool) {
	m := kindRegex.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	marker := strings.ToLower(strings.TrimSuffix(m[1], "."))
	kind, ok := kindByMarker[marker]
	return kind, ok
}

func matchRoom(cell string) (string, bool) {
	m := roomRegex.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func matchTeacher(cell string) (string, bool) {
	m := teacherRegex.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// lessonFields is the extraction result for one subject cell.
type lessonFields struct {
	Subject string
	Kind    string
	Room    string
	Teacher string
}

func (n Normalizer) extractFields(cell string) lessonFields {
	var f lessonFields

	kind, ok := matchKind(cell)
	if ok {
		f.Kind = kind
	} else {
		f.Kind = KindPractice
	}

	room, roomOk := matchRoom(cell)
	if roomOk {
		if n.denied(room) {
			f.Room = ""
		} else {
			f.Room = room
		}
	}

	teacher, teacherOk := matchTeacher(cell)
	if teacherOk {
		f.Teacher = teacher
	}

	// strip the exact matched substrings so a removed token never
	// shows up half-cleaned in the label
	subject := cell
	if roomOk {
		subject = strings.ReplaceAll(subject, room, "")
	}
	if teacherOk {
		subject = strings.ReplaceAll(subject, teacher, "")
	}
	f.Subject = textutil.CollapseSpace(subject)

	return f
}

// denied reports whether a purely numeric room token is one of the
// known false positives produced by the page's layout.
func (n Normalizer) denied(room string) bool {
	v, err := strconv.Atoi(room)
	if err != nil {
		return false
	}
	for _, d := range n.RoomDenylist {
		if v == d {
			return true
		}
	}
	return false
}
