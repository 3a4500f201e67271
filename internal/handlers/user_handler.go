package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httpresp"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
	ucuser "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/user"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/validators"
)

type UserHandler struct {
	db       *gorm.DB
	deleteUC *ucuser.DeletePerson
}

func NewUserHandler(db *gorm.DB, deleteUC *ucuser.DeletePerson) *UserHandler {
	return &UserHandler{
		db:       db,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required,oneof=admin instructor student"`
	Password  string `json:"password" binding:"omitempty,min=6"`
}

type AvailabilityWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityDayConfig struct {
	Weekday int                  `json:"weekday" binding:"min=0,max=6"`
	Windows []AvailabilityWindow `json:"windows"`

	// Hours is the discrete-label form some clients still send; each
	// label becomes a unit-length window.
	Hours []string `json:"hours"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Preload("Availability").
		Order("id ASC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Erreur lors du chargement des utilisateurs.")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email != "" {
		var count int64
		h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			httperr.Conflict(c, "duplicate_email", "Cette adresse e-mail est déjà utilisée.")
			return
		}

		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'adresse e-mail semble invalide.")
			return
		}
	}

	user := models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     req.Phone,
		Role:      req.Role,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erreur lors de la création.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_email", "Cette adresse e-mail est déjà utilisée.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erreur lors de la création.")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ======================================================
// DELETE (instructor detach cascade)
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// AVAILABILITY (replace wholesale)
// ======================================================

func (h *UserHandler) UpdateAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}
	userID := uint(id)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Utilisateur introuvable.")
		return
	}

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.Availability
	for _, d := range req.Days {
		for _, w := range d.Windows {
			if !domain.ValidWindow(w.Start, w.End) {
				httperr.BadRequest(c, "invalid_window", "Plage horaire invalide.")
				return
			}
			toCreate = append(toCreate, models.Availability{
				UserID:    userID,
				Weekday:   d.Weekday,
				StartTime: w.Start,
				EndTime:   w.End,
			})
		}

		for _, hour := range d.Hours {
			start, end, ok := domain.UnitWindow(hour)
			if !ok {
				httperr.BadRequest(c, "invalid_window", "Heure invalide.")
				return
			}
			toCreate = append(toCreate, models.Availability{
				UserID:    userID,
				Weekday:   d.Weekday,
				StartTime: start,
				EndTime:   end,
			})
		}
	}

	if err := h.db.Where("user_id = ?", userID).Delete(&models.Availability{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_availability", "Erreur lors de la mise à jour.")
		return
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_availability", "Erreur lors de la mise à jour.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
