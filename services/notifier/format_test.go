package notifier

import (
	"strings"
	"testing"
	"time"

	"schedule-scraper/lib/timetable"

	"github.com/stretchr/testify/require"
)

func lesson(pair int, slot, subject, room, teacher string) timetable.Lesson {
	return timetable.Lesson{
		Pair:    pair,
		Time:    slot,
		Subject: subject,
		Kind:    timetable.KindPractice,
		Room:    room,
		Teacher: teacher,
	}
}

func TestGroupByDay(t *testing.T) {
	lessons := []timetable.Lesson{
		lesson(1, "08:30-10:00", "29.09.2025 Пн-1 | ФЛП", "319", ""),
		lesson(2, "10:10-11:40", "29.09.2025 Пн-2 | БД", "320", ""),
		lesson(1, "08:30-10:00", "30.09.2025 Вт-1 | Механика", "215", ""),
		lesson(0, "10:40-12:10", "Занятие без даты", "", ""),
	}

	days := groupByDay(lessons)
	require.Len(t, days, 2)
	require.Len(t, days["29.09.2025"], 2)
	require.Len(t, days["30.09.2025"], 1)
}

func TestSubjectName(t *testing.T) {
	cases := []struct {
		label    string
		expected string
	}{
		{"29.09.2025 Пн-1 | ФЛП (Практич.) 319 Елтунова И.Б.", "ФЛП"},
		{"29.09.2025 Пн-1 | Базы данных (Лек)", "Базы данных"},
		{"Занятие без даты", "Занятие без даты"},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, subjectName(timetable.Lesson{Subject: c.label}))
	}
}

func TestFormatLesson(t *testing.T) {
	dir := DefaultTeacherDirectory()

	{
		// extracted teacher wins over the directory
		out := formatLesson(lesson(2, "10:10-11:40", "29.09.2025 Пн-2 | ФЛП", "319", "Елтунова И.Б."), dir)
		require.Contains(t, out, "*ФЛП*")
		require.Contains(t, out, "📍 *319*")
		require.Contains(t, out, "👨‍🏫 *Елтунова И.Б.*")
	}
	{
		// no extracted teacher, surname in the label resolves via directory
		out := formatLesson(lesson(1, "08:30-10:00", "29.09.2025 Пн-1 | Механика Семенов", "215", ""), dir)
		require.Contains(t, out, "👨‍🏫 *Семёнов В.А.*")
	}
	{
		// nothing beyond the subject
		out := formatLesson(lesson(3, "12:20-13:50", "29.09.2025 Пн-3 | Физкультура", "", ""), dir)
		require.NotContains(t, out, "📍")
		require.NotContains(t, out, "👨‍🏫")
	}
}

func TestPickDay(t *testing.T) {
	days := map[string][]timetable.Lesson{
		"29.09.2025": {lesson(1, "08:30-10:00", "29.09.2025 Пн-1 | ФЛП", "", "")},
		"01.10.2025": {lesson(1, "08:30-10:00", "01.10.2025 Ср-1 | БД", "", "")},
	}

	{
		// morning request lands on today
		date, label, ok := pickDay(days, time.Date(2025, 9, 29, 10, 0, 0, 0, time.UTC))
		require.True(t, ok)
		require.Equal(t, "29.09.2025", date)
		require.Equal(t, "сегодня", label)
	}
	{
		// after 18:00 the wanted day is tomorrow, which has no lessons,
		// so the nearest later day wins
		date, label, ok := pickDay(days, time.Date(2025, 9, 29, 19, 0, 0, 0, time.UTC))
		require.True(t, ok)
		require.Equal(t, "01.10.2025", date)
		require.Equal(t, "ближайший день", label)
	}
	{
		// everything already in the past
		_, _, ok := pickDay(days, time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC))
		require.False(t, ok)
	}
	{
		_, _, ok := pickDay(map[string][]timetable.Lesson{}, time.Date(2025, 9, 29, 10, 0, 0, 0, time.UTC))
		require.False(t, ok)
	}
}

func TestFormatDay(t *testing.T) {
	dir := DefaultTeacherDirectory()
	lessons := []timetable.Lesson{
		lesson(2, "10:10-11:40", "29.09.2025 Пн-2 | БД (Лек)", "320", ""),
		lesson(1, "08:30-10:00", "29.09.2025 Пн-1 | ФЛП", "319", "Елтунова И.Б."),
	}

	out := formatDay("29.09.2025", "сегодня", lessons, dir)
	require.Contains(t, out, "РАСПИСАНИЕ НА СЕГОДНЯ (29.09.2025)")
	require.Contains(t, out, "ПОНЕДЕЛЬНИК")
	// legacy Markdown has no ** syntax
	require.NotContains(t, out, "**")
	// pairs come out in slot order regardless of extraction order
	require.Less(t,
		indexOf(t, out, "*1 пара* 08:30-10:00"),
		indexOf(t, out, "*2 пара* 10:10-11:40"))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in output", needle)
	return idx
}
