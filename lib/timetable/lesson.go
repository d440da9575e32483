package timetable

// Lesson kinds as they appear on the source pages. A parenthesized
// abbreviation in the subject cell selects one of these; anything
// unrecognized is treated as a practice session.
const (
	KindLecture    = "Лекция"
	KindPractice   = "Практика"
	KindLaboratory = "Лабораторная"
	KindSeminar    = "Семинар"
	KindExam       = "Зачет"
)

// Lesson is one scheduled class occurrence recovered from the page.
// It is produced once per normalization pass and never mutated.
type Lesson struct {
	// Pair is the slot index 1..7, or 0 for records recovered by the
	// list fallback, which has no slot information.
	Pair int `json:"pair"`
	// Time is "HH:MM-HH:MM", derived from Pair or parsed directly in
	// the fallback path.
	Time string `json:"time"`
	// Subject is "DD.MM.YYYY <Weekday>-<WeekNo> | <clean subject>".
	// The date prefix doubles as the grouping key for per-day views.
	Subject string `json:"subject"`
	Kind    string `json:"kind"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
	// Raw holds the original cell texts of the source row. Diagnostic
	// only, never semantically trusted.
	Raw []string `json:"raw"`
}
