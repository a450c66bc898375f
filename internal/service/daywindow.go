package service

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DayWindow is the half-open UTC interval [Start, End) covering one local calendar day.
type DayWindow struct {
	Date  string
	Start time.Time
	End   time.Time
}

// ResolveDayWindow maps a client-local date to UTC. offsetMinutes follows the browser
// getTimezoneOffset convention: positive when local time is behind UTC. An empty date means
// the current UTC date according to now.
func ResolveDayWindow(date string, offsetMinutes int, now time.Time) (DayWindow, error) {
	var midnight time.Time
	if date == "" {
		y, m, d := now.UTC().Date()
		midnight = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return DayWindow{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		midnight = parsed
	}

	start := midnight.Add(time.Duration(offsetMinutes) * time.Minute)
	return DayWindow{
		Date:  midnight.Format(dateLayout),
		Start: start,
		End:   start.Add(24 * time.Hour),
	}, nil
}
