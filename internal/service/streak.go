package service

import (
	"sort"
	"time"
)

// Streaks holds consecutive-day counts over the days a user logged meals.
type Streaks struct {
	Current int
	Best    int
}

// UTCDay truncates ts to midnight of its UTC calendar date.
func UTCDay(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ComputeStreaks counts the run of days ending today (UTC, derived from now) and the longest
// run anywhere. days may contain duplicates and arbitrary times of day.
func ComputeStreaks(days []time.Time, now time.Time) Streaks {
	set := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		set[UTCDay(d)] = struct{}{}
	}
	if len(set) == 0 {
		return Streaks{}
	}

	var current int
	for day := UTCDay(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := set[day]; !ok {
			break
		}
		current++
	}

	sorted := make([]time.Time, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDate(0, 0, 1).Equal(sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	return Streaks{Current: current, Best: best}
}
