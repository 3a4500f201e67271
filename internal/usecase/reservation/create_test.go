package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// stubRepo is the minimal in-memory Repository for use-case tests.
type stubRepo struct {
	users        map[uint]*models.User
	reservations map[uint]*models.Reservation
	nextID       uint

	createErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users:        make(map[uint]*models.User),
		reservations: make(map[uint]*models.Reservation),
	}
}

func (s *stubRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	return s.users[id], nil
}

func (s *stubRepo) ListInstructors(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if u.Role == models.RoleInstructor {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAvailability(_ context.Context, _ uint) ([]models.Availability, error) {
	return nil, nil
}

func (s *stubRepo) FindBySlotAndInstructor(_ context.Context, slot time.Time, instructorID uint) (*models.Reservation, error) {
	for _, r := range s.reservations {
		if r.InstructorID != nil && *r.InstructorID == instructorID && r.SlotTime.Equal(slot) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) FindBySlotAndStudent(_ context.Context, slot time.Time, email string, _ *uint) (*models.Reservation, error) {
	for _, r := range s.reservations {
		if r.StudentEmail == email && r.SlotTime.Equal(slot) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) CreateReservation(_ context.Context, r *models.Reservation) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	r.ID = s.nextID
	s.reservations[r.ID] = r
	return nil
}

func (s *stubRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	return s.reservations[id], nil
}

func (s *stubRepo) DeleteReservation(_ context.Context, id uint) (bool, error) {
	if _, ok := s.reservations[id]; !ok {
		return false, nil
	}
	delete(s.reservations, id)
	return true, nil
}

func (s *stubRepo) UpdateReservation(_ context.Context, r *models.Reservation) error {
	s.reservations[r.ID] = r
	return nil
}

func (s *stubRepo) ListReservations(_ context.Context, _, _ *time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range s.reservations {
		out = append(out, *r)
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)

// stubNotifier records dispatched notifications.
type stubNotifier struct {
	created   []string
	cancelled []string
}

func (n *stubNotifier) ReservationCreated(r *models.Reservation, instructorName string) {
	n.created = append(n.created, instructorName)
}

func (n *stubNotifier) ReservationCancelled(r *models.Reservation, instructorName string) {
	n.cancelled = append(n.cancelled, instructorName)
}

func testEngine(t *testing.T, repo domain.Repository) *domain.Engine {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("failed to load Europe/Paris: %v", err)
	}
	return domain.NewEngine(repo, domain.ScopeAnyInstructor, loc)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	instructorID := uint(1)
	okCandidate := domain.Candidate{
		Slot:         "2026-09-07 09:00",
		StudentName:  "Claire Martin",
		StudentEmail: "claire@example.com",
		InstructorID: &instructorID,
	}

	t.Run("persists and notifies with instructor name", func(t *testing.T) {
		repo := newStubRepo()
		repo.users[1] = &models.User{ID: 1, Role: models.RoleInstructor, FirstName: "Anne", LastName: "Bernard"}
		notifier := &stubNotifier{}

		uc := NewCreateReservation(repo, testEngine(t, repo), notifier, zap.NewNop())

		res, err := uc.Execute(ctx, okCandidate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == 0 {
			t.Error("reservation should be persisted with an id")
		}
		if res.CancelToken == "" {
			t.Error("cancel token should be set")
		}
		if len(notifier.created) != 1 || notifier.created[0] != "Anne Bernard" {
			t.Errorf("expected one created notice for Anne Bernard, got %v", notifier.created)
		}
	})

	t.Run("rejection leaves no state and sends nothing", func(t *testing.T) {
		repo := newStubRepo()
		notifier := &stubNotifier{}

		uc := NewCreateReservation(repo, testEngine(t, repo), notifier, zap.NewNop())

		_, err := uc.Execute(ctx, okCandidate)
		if !httperr.IsBusiness(err, domain.CodeInstructorNotFound) {
			t.Fatalf("expected instructor_not_found, got %v", err)
		}
		if len(repo.reservations) != 0 {
			t.Error("no reservation should be persisted")
		}
		if len(notifier.created) != 0 {
			t.Error("no notification should be sent")
		}
	})

	t.Run("unique violation maps to slot_already_booked", func(t *testing.T) {
		repo := newStubRepo()
		repo.users[1] = &models.User{ID: 1, Role: models.RoleInstructor, FirstName: "Anne", LastName: "Bernard"}
		repo.createErr = &pgconn.PgError{Code: "23505"}
		notifier := &stubNotifier{}

		uc := NewCreateReservation(repo, testEngine(t, repo), notifier, zap.NewNop())

		_, err := uc.Execute(ctx, okCandidate)
		if !httperr.IsBusiness(err, domain.CodeSlotAlreadyBooked) {
			t.Fatalf("expected slot_already_booked, got %v", err)
		}
		if len(notifier.created) != 0 {
			t.Error("no notification should be sent on conflict")
		}
	})
}
