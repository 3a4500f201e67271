package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Rejection codes returned by Evaluate. Every rejection is terminal and
// maps 1:1 to an HTTP answer at the handler boundary.
const (
	CodeInvalidSlot             = "invalid_slot"
	CodeInstructorNotFound      = "instructor_not_found"
	CodeNoInstructorAvailable   = "no_instructor_available"
	CodeOutsideAvailability     = "outside_availability"
	CodeSlotAlreadyBooked       = "slot_already_booked"
	CodeDuplicateStudentBooking = "duplicate_student_booking"
)

// ConflictScope selects how wide the duplicate-student check looks.
type ConflictScope string

const (
	ScopeAnyInstructor  ConflictScope = "any-instructor"
	ScopeSameInstructor ConflictScope = "same-instructor"
)

func ParseScope(s string) ConflictScope {
	if ConflictScope(s) == ScopeSameInstructor {
		return ScopeSameInstructor
	}
	return ScopeAnyInstructor
}

// Candidate is a proposed booking as it arrives from the calendar.
type Candidate struct {
	Slot string

	StudentName  string
	StudentEmail string
	StudentPhone string

	// InstructorID nil means auto-assignment.
	InstructorID *uint
}

// Engine is the admission rule: a pure check-and-normalize pass over a
// candidate. It never writes; persistence belongs to the caller.
type Engine struct {
	repo  Repository
	scope ConflictScope
	loc   *time.Location
}

func NewEngine(repo Repository, scope ConflictScope, loc *time.Location) *Engine {
	return &Engine{
		repo:  repo,
		scope: scope,
		loc:   loc,
	}
}

var slotLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseSlot turns a raw slot string into the canonical instant: parsed,
// bounds-checked, snapped to the top of its hour in the reference zone,
// stored UTC.
func (e *Engine) ParseSlot(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidSlot)
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		for _, layout := range slotLayouts {
			if t, err = time.ParseInLocation(layout, raw, e.loc); err == nil {
				break
			}
		}
	}
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidSlot)
	}

	local := t.In(e.loc)
	if local.Year() < 2000 || local.Year() > 2100 {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidSlot)
	}

	slot := time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), 0, 0, 0,
		e.loc,
	)
	return slot.UTC(), nil
}

// Evaluate runs the admission pipeline and returns the reservation ready
// for persistence, or a coded rejection.
func (e *Engine) Evaluate(
	ctx context.Context,
	in Candidate,
) (*models.Reservation, error) {

	slot, err := e.ParseSlot(in.Slot)
	if err != nil {
		return nil, err
	}

	var instructor *models.User

	if in.InstructorID != nil {
		u, err := e.repo.GetUser(ctx, *in.InstructorID)
		if err != nil {
			return nil, err
		}
		if u == nil || u.Role != models.RoleInstructor {
			return nil, httperr.ErrBusiness(CodeInstructorNotFound)
		}

		ok, err := e.isAvailable(ctx, u.ID, slot)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness(CodeOutsideAvailability)
		}

		existing, err := e.repo.FindBySlotAndInstructor(ctx, slot, u.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, httperr.ErrBusiness(CodeSlotAlreadyBooked)
		}

		instructor = u
	} else {
		candidates, err := e.AvailableInstructors(ctx, slot)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, httperr.ErrBusiness(CodeNoInstructorAvailable)
		}
		instructor = &candidates[0]
	}

	email := strings.ToLower(strings.TrimSpace(in.StudentEmail))

	var scopeInstructor *uint
	if e.scope == ScopeSameInstructor {
		scopeInstructor = &instructor.ID
	}

	dup, err := e.repo.FindBySlotAndStudent(ctx, slot, email, scopeInstructor)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, httperr.ErrBusiness(CodeDuplicateStudentBooking)
	}

	instructorID := instructor.ID

	return &models.Reservation{
		SlotTime:     slot,
		StudentName:  strings.TrimSpace(in.StudentName),
		StudentEmail: email,
		StudentPhone: strings.TrimSpace(in.StudentPhone),
		InstructorID: &instructorID,
		Status:       string(InitialStatus()),
	}, nil
}

// AvailableInstructors returns the instructors free and on duty for the
// slot, in ascending id order. Auto-assignment takes the first.
func (e *Engine) AvailableInstructors(
	ctx context.Context,
	slot time.Time,
) ([]models.User, error) {

	instructors, err := e.repo.ListInstructors(ctx)
	if err != nil {
		return nil, err
	}

	free := make([]models.User, 0, len(instructors))
	for _, ins := range instructors {
		ok, err := e.isAvailable(ctx, ins.ID, slot)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		existing, err := e.repo.FindBySlotAndInstructor(ctx, slot, ins.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		free = append(free, ins)
	}

	return free, nil
}

// isAvailable derives the slot's weekday and hour in the reference zone
// and checks the instructor's schedule. An instructor with no schedule at
// all is bookable at any hour.
func (e *Engine) isAvailable(
	ctx context.Context,
	instructorID uint,
	slot time.Time,
) (bool, error) {

	rows, err := e.repo.ListAvailability(ctx, instructorID)
	if err != nil {
		return false, err
	}

	if len(rows) == 0 {
		return true, nil
	}

	local := slot.In(e.loc)
	weekday := int(local.Weekday())
	startMinutes := local.Hour() * 60

	return covers(rows, weekday, startMinutes), nil
}
