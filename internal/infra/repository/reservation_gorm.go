package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
	ucuser "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/user"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// User Directory
// --------------------------------------------------

func (r *ReservationGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *ReservationGormRepository) ListInstructors(
	ctx context.Context,
) ([]models.User, error) {

	var instructors []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleInstructor).
		Order("id ASC").
		Find(&instructors).Error; err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *ReservationGormRepository) ListAvailability(
	ctx context.Context,
	userID uint,
) ([]models.Availability, error) {

	var rows []models.Availability
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ReservationGormRepository) DetachInstructor(
	ctx context.Context,
	instructorID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("instructor_id = ?", instructorID).
		Update("instructor_id", nil)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// Reservation (conflict lookups)
// --------------------------------------------------

func (r *ReservationGormRepository) FindBySlotAndInstructor(
	ctx context.Context,
	slot time.Time,
	instructorID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).
		Where(
			"slot_time = ? AND instructor_id = ? AND status <> ?",
			slot, instructorID, string(domain.StatusCancelled),
		).
		First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindBySlotAndStudent(
	ctx context.Context,
	slot time.Time,
	studentEmail string,
	instructorID *uint,
) (*models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Where(
			"slot_time = ? AND LOWER(student_email) = ? AND status <> ?",
			slot, studentEmail, string(domain.StatusCancelled),
		)

	if instructorID != nil {
		q = q.Where("instructor_id = ?", *instructorID)
	}

	var res models.Reservation
	if err := q.First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Reservation (writes)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		First(&res, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Preload("Instructor")

	if from != nil {
		q = q.Where("slot_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("slot_time < ?", *to)
	}

	var out []models.Reservation
	if err := q.Order("slot_time ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time checks
var _ domain.Repository = (*ReservationGormRepository)(nil)
var _ ucuser.Directory = (*ReservationGormRepository)(nil)
