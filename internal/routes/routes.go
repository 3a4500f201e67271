package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/config"
	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/handlers"
	infraRepo "github.com/AutoEcolePlanner/lesson-scheduler/internal/infra/repository"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/mailer"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/middleware"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/ratelimit"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/timezone"
	ucres "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/reservation"
	ucuser "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewReservationGormRepository(db)

	sender := mailer.NewSMTPSender(cfg.SMTP)
	dispatcher := mailer.NewDispatcher(sender, mailer.NewGormRecorder(db), log)

	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		limiter = ratelimit.NewRedisLimiter(
			redis.NewClient(opts),
			cfg.MailRateLimit,
			cfg.MailRateWindow,
		)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.MailRateLimit, cfg.MailRateWindow)
	}

	engine := domain.NewEngine(
		repo,
		domain.ParseScope(cfg.StudentConflictScope),
		timezone.Location(cfg.Timezone),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucres.NewCreateReservation(repo, engine, dispatcher, log)
	cancelReservationUC := ucres.NewCancelReservation(repo, dispatcher, log)
	updateStatusUC := ucres.NewUpdateReservationStatus(repo, log)
	listSlotsUC := ucres.NewListSlots(repo)
	availableInstructorsUC := ucres.NewAvailableInstructors(engine)

	deletePersonUC := ucuser.NewDeletePerson(repo, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, deletePersonUC)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		updateStatusUC,
		listSlotsUC,
		cfg.Timezone,
	)
	instructorHandler := handlers.NewInstructorHandler(availableInstructorsUC)
	mailHandler := handlers.NewMailHandler(db, limiter, dispatcher)

	// ======================================================
	// PUBLIC (calendar front-end)
	// ======================================================
	r.POST("/login", authHandler.Login)
	r.GET("/slots", reservationHandler.ListSlots)
	r.POST("/reservations", reservationHandler.Create)
	r.GET("/moniteurs/available", instructorHandler.Available)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.DELETE("/reservations/:id", reservationHandler.Delete)
		secured.PUT("/reservations/:id/status", reservationHandler.UpdateStatus)

		admin := secured.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.List)
			admin.POST("/users", userHandler.Create)
			admin.DELETE("/users/:id", userHandler.Delete)
			admin.PUT("/users/:id/availability", userHandler.UpdateAvailability)

			admin.POST("/send-mail-all", mailHandler.SendAll)
		}
	}
}
