package reservation

import (
	"testing"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		if !ValidStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "refused", "scheduled", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanCancel(t *testing.T) {
	if err := CanCancel(StatusPending); err != nil {
		t.Errorf("pending should be cancellable: %v", err)
	}
	if err := CanCancel(StatusConfirmed); err != nil {
		t.Errorf("confirmed should be cancellable: %v", err)
	}
	if err := CanCancel(StatusCancelled); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancelled should refuse cancellation, got %v", err)
	}
}
