package timezone

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		now    time.Time
		expect time.Time
	}{
		{
			// a monday maps to itself
			now:    time.Date(2025, time.September, 29, 13, 45, 0, 0, Location),
			expect: time.Date(2025, time.September, 29, 0, 0, 0, 0, Location),
		},
		{
			now:    time.Date(2025, time.October, 2, 8, 0, 0, 0, Location),
			expect: time.Date(2025, time.September, 29, 0, 0, 0, 0, Location),
		},
		{
			// sunday belongs to the week that started six days earlier
			now:    time.Date(2025, time.October, 5, 23, 59, 0, 0, Location),
			expect: time.Date(2025, time.September, 29, 0, 0, 0, 0, Location),
		},
		{
			// week spanning a month boundary
			now:    time.Date(2025, time.September, 1, 0, 0, 0, 0, Location),
			expect: time.Date(2025, time.September, 1, 0, 0, 0, 0, Location),
		},
	}

	for _, test := range cases {
		got := WeekStart(test.now)
		if !got.Equal(test.expect) {
			t.Fatalf("WeekStart(%v) = %v, expected %v", test.now, got, test.expect)
		}
	}
}
