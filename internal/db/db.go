package db

import (
	"log"
	"time"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/config"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Availability{},
		&models.Reservation{},
		&models.EmailLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The double-booking invariant lives in the store, not in the
	// application check: two requests racing past the engine's early
	// exit still cannot both insert.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservations_slot_instructor
        ON reservations (slot_time, instructor_id)
        WHERE instructor_id IS NOT NULL AND status <> 'cancelled'
    `)

	return db
}
