package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchKind(t *testing.T) {
	cases := []struct {
		cell   string
		expect string
		found  bool
	}{
		{cell: "ОС (Лек) 308", expect: KindLecture, found: true},
		{cell: "ФЛП (Практич.) 319", expect: KindPractice, found: true},
		{cell: "ФЛП (Практич) 319", expect: KindPractice, found: true},
		{cell: "ТСВПС (Пр) 314", expect: KindPractice, found: true},
		{cell: "БД (Лаб) А-404", expect: KindLaboratory, found: true},
		{cell: "Философия (Сем)", expect: KindSeminar, found: true},
		{cell: "Физкультура (Зач)", expect: KindExam, found: true},
		{cell: "физра (зач)", expect: KindExam, found: true},
		{cell: "ОС 308 Иванов И.И.", expect: "", found: false},
		{cell: "ОС Лек 308", expect: "", found: false},
	}

	for _, test := range cases {
		kind, ok := matchKind(test.cell)
		require.Equal(t, test.found, ok, test.cell)
		require.Equal(t, test.expect, kind, test.cell)
	}
}

func TestMatchRoom(t *testing.T) {
	cases := []struct {
		cell   string
		expect string
		found  bool
	}{
		{cell: "ФЛП (Практич.) 319 Елтунова И.Б.", expect: "319", found: true},
		{cell: "БД (Лаб) А-404 Иванов И.И.", expect: "А-404", found: true},
		{cell: "319", expect: "319", found: true},
		{cell: "ОС (Лек)", expect: "", found: false},
		// single digits are not rooms
		{cell: "пара 8", expect: "", found: false},
	}

	for _, test := range cases {
		room, ok := matchRoom(test.cell)
		require.Equal(t, test.found, ok, test.cell)
		require.Equal(t, test.expect, room, test.cell)
	}
}

func TestMatchTeacher(t *testing.T) {
	cases := []struct {
		cell   string
		expect string
		found  bool
	}{
		{cell: "ФЛП (Практич.) 319 Елтунова И.Б.", expect: "Елтунова И.Б.", found: true},
		{cell: "ТСВПС (Практич.) 314 Извеков Я.О.", expect: "Извеков Я.О.", found: true},
		{cell: "ОС (Лек) 308", expect: "", found: false},
		// "ё" falls outside the surname pattern on purpose; the
		// notifier's directory covers these
		{cell: "ОС (Практич.) 308 Семёнов В.А.", expect: "", found: false},
	}

	for _, test := range cases {
		teacher, ok := matchTeacher(test.cell)
		require.Equal(t, test.found, ok, test.cell)
		require.Equal(t, test.expect, teacher, test.cell)
	}
}

func TestExtractFields(t *testing.T) {
	n := New()

	{
		f := n.extractFields("ФЛП (Практич.) 319 Елтунова И.Б.")
		require.Equal(t, KindPractice, f.Kind)
		require.Equal(t, "319", f.Room)
		require.Equal(t, "Елтунова И.Б.", f.Teacher)
		require.Equal(t, "ФЛП (Практич.)", f.Subject)
	}
	{
		// no kind marker defaults to practice
		f := n.extractFields("Иностранный язык 215 Белоусова М.В.")
		require.Equal(t, KindPractice, f.Kind)
		require.Equal(t, "215", f.Room)
		require.Equal(t, "Белоусова М.В.", f.Teacher)
		require.Equal(t, "Иностранный язык", f.Subject)
	}
	{
		// denylisted numeric room is cleared, not kept
		f := n.extractFields("Физкультура (Пр) 12 Протасов А.Е.")
		require.Equal(t, "", f.Room)
		require.Equal(t, KindPractice, f.Kind)
		// the matched token is still stripped from the label
		require.Equal(t, "Физкультура (Пр)", f.Subject)
	}
	{
		// the denylist only covers purely numeric tokens
		f := n.extractFields("БД (Лаб) А-404 Тюрюханова И.В.")
		require.Equal(t, KindLaboratory, f.Kind)
		require.Equal(t, "А-404", f.Room)
		require.Equal(t, "Тюрюханова И.В.", f.Teacher)
	}
}
