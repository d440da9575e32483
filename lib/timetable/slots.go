package timetable

// The daily slot grid is fixed by the institute and not present in the
// markup, so pair numbers map to times through this table. Pair numbers
// are fully enumerated: the classifier never produces a value outside
// 1..7, callers must range-check anything else themselves.
var slotTimes = [...][2]string{
	1: {"08:30", "10:00"},
	2: {"10:10", "11:40"},
	3: {"12:20", "13:50"},
	4: {"14:10", "15:40"},
	5: {"15:50", "17:20"},
	6: {"17:30", "19:00"},
	7: {"19:10", "20:40"},
}

func SlotTime(pair int) (start, end string) {
	t := slotTimes[pair]
	return t[0], t[1]
}

// SlotRange returns the "HH:MM-HH:MM" form used by Lesson.Time.
func SlotRange(pair int) string {
	start, end := SlotTime(pair)
	return start + "-" + end
}
