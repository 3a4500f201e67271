package reservation

import (
	"testing"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

func TestParseHM(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"09:60", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		m, ok := ParseHM(c.in)
		if ok != c.ok || (ok && m != c.minutes) {
			t.Errorf("ParseHM(%q) = (%d, %v), want (%d, %v)", c.in, m, ok, c.minutes, c.ok)
		}
	}
}

func TestValidWindow(t *testing.T) {
	if !ValidWindow("09:00", "12:00") {
		t.Error("09:00-12:00 should be valid")
	}
	if ValidWindow("12:00", "09:00") {
		t.Error("reversed window should be invalid")
	}
	if ValidWindow("09:00", "09:00") {
		t.Error("empty window should be invalid")
	}
	if ValidWindow("9h", "12:00") {
		t.Error("malformed start should be invalid")
	}
}

func TestUnitWindow(t *testing.T) {
	t.Run("hour label becomes a unit interval", func(t *testing.T) {
		start, end, ok := UnitWindow("09:00")
		if !ok || start != "09:00" || end != "10:00" {
			t.Errorf("got (%q, %q, %v)", start, end, ok)
		}
	})

	t.Run("last hour of the day closes at 24:00", func(t *testing.T) {
		start, end, ok := UnitWindow("23:00")
		if !ok || start != "23:00" || end != "24:00" {
			t.Errorf("got (%q, %q, %v)", start, end, ok)
		}
	})

	t.Run("rejects non-hour labels", func(t *testing.T) {
		for _, in := range []string{"09:30", "9:00", "24:00", "bad"} {
			if _, _, ok := UnitWindow(in); ok {
				t.Errorf("UnitWindow(%q) should fail", in)
			}
		}
	})
}

func TestCovers(t *testing.T) {
	rows := []models.Availability{
		{Weekday: 1, StartTime: "09:00", EndTime: "12:00"},
		{Weekday: 1, StartTime: "14:00", EndTime: "16:00"},
		{Weekday: 3, StartTime: "23:00", EndTime: "24:00"},
	}

	cases := []struct {
		weekday int
		minutes int
		want    bool
	}{
		{1, 9 * 60, true},
		{1, 11 * 60, true},
		{1, 12 * 60, false}, // end is exclusive
		{1, 13 * 60, false}, // gap between windows
		{1, 14 * 60, true},
		{1, 15 * 60, true},
		{1, 16 * 60, false},
		{2, 9 * 60, false}, // no windows that day
		{3, 23 * 60, true}, // 24:00 end admits the 23:00 lesson
	}

	for _, c := range cases {
		if got := covers(rows, c.weekday, c.minutes); got != c.want {
			t.Errorf("covers(day=%d, min=%d) = %v, want %v", c.weekday, c.minutes, got, c.want)
		}
	}
}
