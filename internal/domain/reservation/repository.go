package reservation

import (
	"context"
	"time"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Repository is the store boundary the admission engine reads through.
// Lookup methods return (nil, nil) when nothing matches; errors are
// reserved for store failures.
type Repository interface {
	// -------- User Directory --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// ListInstructors returns instructors ordered by ascending id, the
	// deterministic order auto-assignment relies on.
	ListInstructors(
		ctx context.Context,
	) ([]models.User, error)

	ListAvailability(
		ctx context.Context,
		userID uint,
	) ([]models.Availability, error)

	// -------- Reservation (conflict lookups) --------
	FindBySlotAndInstructor(
		ctx context.Context,
		slot time.Time,
		instructorID uint,
	) (*models.Reservation, error)

	// FindBySlotAndStudent scopes to one instructor when instructorID is
	// set, to any instructor when nil. Cancelled rows never count.
	FindBySlotAndStudent(
		ctx context.Context,
		slot time.Time,
		studentEmail string,
		instructorID *uint,
	) (*models.Reservation, error)

	// -------- Reservation (writes, owned by the use cases) --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	DeleteReservation(
		ctx context.Context,
		id uint,
	) (bool, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	ListReservations(
		ctx context.Context,
		from *time.Time,
		to *time.Time,
	) ([]models.Reservation, error)
}
