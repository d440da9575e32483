package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Irkutsk")
	if err != nil {
		panic(err)
	}
}

// force timezone to be the institute's local time because the host
// running the scraper may be anywhere, and week boundaries / "show
// tomorrow after 18:00" logic depend on <time.Time>.Year()/Day()/Hour()
func Now() time.Time {
	return time.Now().In(Location)
}

// WeekStart returns the Monday of the calendar week containing t,
// truncated to midnight in t's location.
func WeekStart(t time.Time) time.Time {
	days := int(t.Weekday()) - int(time.Monday)
	if days < 0 {
		days += 7
	}
	monday := t.AddDate(0, 0, -days)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
