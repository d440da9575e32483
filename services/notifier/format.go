package notifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"schedule-scraper/lib/textutil"
	"schedule-scraper/lib/timetable"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "ПОНЕДЕЛЬНИК",
	time.Tuesday:   "ВТОРНИК",
	time.Wednesday: "СРЕДА",
	time.Thursday:  "ЧЕТВЕРГ",
	time.Friday:    "ПЯТНИЦА",
	time.Saturday:  "СУББОТА",
	time.Sunday:    "ВОСКРЕСЕНЬЕ",
}

const dateLayout = "02.01.2006"

var (
	dayRegex         = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`)
	labelPrefixRegex = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}\s+[А-Яа-я]+-\d+\s*\|\s*`)
)

// groupByDay buckets lessons by the date prefix of their subject
// label. Lessons whose label carries no date (fallback records) are
// left out: without a date there is no day to show them under.
func groupByDay(lessons []timetable.Lesson) map[string][]timetable.Lesson {
	days := map[string][]timetable.Lesson{}
	for _, l := range lessons {
		m := dayRegex.FindStringSubmatch(l.Subject)
		if m == nil {
			continue
		}
		days[m[1]] = append(days[m[1]], l)
	}
	return days
}

// subjectName strips the date prefix and the technical details off a
// subject label, leaving just the course name for display.
func subjectName(l timetable.Lesson) string {
	s := labelPrefixRegex.ReplaceAllString(l.Subject, "")
	if idx := strings.Index(s, "("); idx >= 0 {
		s = s[:idx]
	}
	s = strings.NewReplacer("|", "", ":", "").Replace(s)
	return textutil.CollapseSpace(s)
}

func formatLesson(l timetable.Lesson, directory TeacherDirectory) string {
	kind := l.Kind
	if kind == "" {
		kind = timetable.KindPractice
	}

	teacher := l.Teacher
	if teacher == "" {
		teacher = directory.Lookup(l.Subject)
	}

	var details []string
	if l.Room != "" {
		details = append(details, fmt.Sprintf("📍 *%s*", l.Room))
	}
	if teacher != "" {
		details = append(details, fmt.Sprintf("👨‍🏫 *%s*", teacher))
	}

	head := fmt.Sprintf("*%s* *(%s)*", subjectName(l), kind)
	if len(details) == 0 {
		return head
	}
	return head + " | " + strings.Join(details, " | ")
}

// pickDay decides which date to show for a /schedule request at the
// given moment. Before 18:00 it is today, after it is tomorrow; when
// the wanted date has no lessons, the nearest later date that does is
// used. Returns the chosen date key, the human label, and whether any
// day could be picked at all.
func pickDay(days map[string][]timetable.Lesson, now time.Time) (string, string, bool) {
	target := now
	label := "сегодня"
	if now.Hour() >= 18 {
		target = now.AddDate(0, 0, 1)
		label = "завтра"
	}

	want := target.Format(dateLayout)
	if _, ok := days[want]; ok {
		return want, label, true
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := time.Parse(dateLayout, keys[i])
		b, _ := time.Parse(dateLayout, keys[j])
		return a.Before(b)
	})
	targetDate := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	for _, k := range keys {
		d, err := time.Parse(dateLayout, k)
		if err != nil {
			continue
		}
		if !d.Before(targetDate) {
			return k, "ближайший день", true
		}
	}
	return "", "", false
}

func formatDay(date string, dateText string, lessons []timetable.Lesson, directory TeacherDirectory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 РАСПИСАНИЕ НА %s (%s)\n", strings.ToUpper(dateText), date)
	if parsed, err := time.Parse(dateLayout, date); err == nil {
		fmt.Fprintf(&b, "🗓 %s\n", weekdayNames[parsed.Weekday()])
	}
	b.WriteString("\n")

	sorted := make([]timetable.Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pair < sorted[j].Pair
	})

	for _, l := range sorted {
		// legacy Markdown parse mode: bold is single asterisks
		if l.Pair != 0 {
			fmt.Fprintf(&b, "*%d пара* %s\n", l.Pair, l.Time)
		} else {
			fmt.Fprintf(&b, "*%s*\n", l.Time)
		}
		b.WriteString(formatLesson(l, directory))
		b.WriteString("\n\n")
	}

	return b.String()
}
