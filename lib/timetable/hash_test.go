package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleLessons() []Lesson {
	return []Lesson{
		{
			Pair:    1,
			Time:    "08:30-10:00",
			Subject: "29.09.2025 Пн-1 | ОС (Лек)",
			Kind:    KindLecture,
			Room:    "308",
			Teacher: "Иванов И.И.",
		},
		{
			Pair:    2,
			Time:    "10:10-11:40",
			Subject: "29.09.2025 Пн-1 | ФЛП (Практич.)",
			Kind:    KindPractice,
			Room:    "319",
			Teacher: "Елтунова И.Б.",
		},
	}
}

func TestHashIgnoresTeacher(t *testing.T) {
	a := sampleLessons()
	b := sampleLessons()
	b[1].Teacher = "Белоусова М.В."

	hashA, err := Hash(a)
	require.NoError(t, err)
	hashB, err := Hash(b)
	require.NoError(t, err)
	require.Equal(t, hashA, hashB)
}

func TestHashSensitivity(t *testing.T) {
	base, err := Hash(sampleLessons())
	require.NoError(t, err)

	mutations := []func(l []Lesson) []Lesson{
		func(l []Lesson) []Lesson { l[0].Room = "309"; return l },
		func(l []Lesson) []Lesson { l[0].Kind = KindSeminar; return l },
		func(l []Lesson) []Lesson { l[0].Time = "10:10-11:40"; return l },
		func(l []Lesson) []Lesson { l[0].Subject += " изм."; return l },
		func(l []Lesson) []Lesson { l[0].Pair = 3; return l },
		// appending changes the hash
		func(l []Lesson) []Lesson { return append(l, Lesson{Pair: 7, Time: "19:10-20:40", Subject: "x | y"}) },
		// so does removal
		func(l []Lesson) []Lesson { return l[:1] },
		// and reordering
		func(l []Lesson) []Lesson { l[0], l[1] = l[1], l[0]; return l },
	}

	for i, mutate := range mutations {
		mutated, err := Hash(mutate(sampleLessons()))
		require.NoError(t, err)
		require.NotEqual(t, base, mutated, "mutation %d", i)
	}
}

func TestHashDeterministic(t *testing.T) {
	first, err := Hash(sampleLessons())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Hash(sampleLessons())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
