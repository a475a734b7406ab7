package entity

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPeriod is returned for lookback periods outside the supported set.
var ErrUnknownPeriod = errors.New("unknown period")

// periods maps Yahoo-style range names to calendar offsets (years, months, days).
var periods = map[string][3]int{
	"5d":  {0, 0, -5},
	"1mo": {0, -1, 0},
	"3mo": {0, -3, 0},
	"6mo": {0, -6, 0},
	"1y":  {-1, 0, 0},
	"2y":  {-2, 0, 0},
	"5y":  {-5, 0, 0},
}

// PeriodStart returns the first instant covered by a lookback period ending at now.
// Providers that take explicit date ranges use it to emulate range names like "6mo".
func PeriodStart(now time.Time, period string) (time.Time, error) {
	off, ok := periods[period]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	return now.AddDate(off[0], off[1], off[2]), nil
}
