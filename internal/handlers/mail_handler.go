package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/mailer"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/middleware"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/ratelimit"
)

type MailHandler struct {
	db         *gorm.DB
	limiter    ratelimit.Limiter
	dispatcher *mailer.Dispatcher
}

func NewMailHandler(
	db *gorm.DB,
	limiter ratelimit.Limiter,
	dispatcher *mailer.Dispatcher,
) *MailHandler {
	return &MailHandler{
		db:         db,
		limiter:    limiter,
		dispatcher: dispatcher,
	}
}

type SendMailAllRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendAll queues one bulk message to every person with an address. The
// limiter is keyed by the admin's email so one over-eager admin cannot
// drain the SMTP quota.
func (h *MailHandler) SendAll(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	adminEmail := c.MustGet(middleware.ContextUserEmail).(string)

	var req SendMailAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	allowed, err := h.limiter.Allow(c.Request.Context(), adminEmail)
	if err != nil {
		httperr.Internal(c, "rate_limiter_unavailable", "Service de limitation indisponible.")
		return
	}
	if !allowed {
		httperr.TooManyRequests(c, "rate_limited", "Trop d'envois récents, réessayez plus tard.")
		return
	}

	var users []models.User
	if err := h.db.
		Where("email <> ''").
		Order("id ASC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_recipients", "Erreur lors du chargement des destinataires.")
		return
	}

	recipients := make([]string, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, u.Email)
	}

	h.dispatcher.Bulk(&adminID, recipients, req.Subject, req.Message)

	c.JSON(http.StatusOK, gin.H{"count": len(recipients)})
}
