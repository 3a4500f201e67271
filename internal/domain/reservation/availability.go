package reservation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Availability windows are half-open [start, end): a 09:00-10:00 window
// accepts the 09:00 slot and rejects the 10:00 one. A lesson fits only
// when its full hour is inside a single window.

// ParseHM converts an "HH:MM" label to minutes since midnight.
func ParseHM(hm string) (int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

// ValidWindow checks an interval is well-formed and non-empty.
func ValidWindow(start, end string) bool {
	s, ok := ParseHM(start)
	if !ok {
		return false
	}
	e, ok := ParseHM(end)
	if !ok {
		return false
	}
	return s < e
}

// UnitWindow converts a discrete hour label into its unit-length interval,
// the canonical form for schedules written as hour sets.
func UnitWindow(hour string) (string, string, bool) {
	m, ok := ParseHM(hour)
	if !ok || m%60 != 0 || m >= 23*60+60 {
		return "", "", false
	}
	if m == 23*60 {
		return hour, "24:00", true
	}
	return hour, fmt.Sprintf("%02d:00", m/60+1), true
}

// covers reports whether some window on the given weekday contains the
// whole lesson hour starting at startMinutes.
func covers(rows []models.Availability, weekday int, startMinutes int) bool {
	for _, row := range rows {
		if row.Weekday != weekday {
			continue
		}

		s, ok := ParseHM(row.StartTime)
		if !ok {
			continue
		}

		e := 24 * 60
		if row.EndTime != "24:00" {
			var okEnd bool
			if e, okEnd = ParseHM(row.EndTime); !okEnd {
				continue
			}
		}

		if s <= startMinutes && startMinutes+60 <= e {
			return true
		}
	}
	return false
}
