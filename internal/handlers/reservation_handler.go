package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httpresp"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/timezone"
	ucres "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucres.CreateReservation
	cancelUC *ucres.CancelReservation
	statusUC *ucres.UpdateReservationStatus
	slotsUC  *ucres.ListSlots
	tz       string
}

func NewReservationHandler(
	createUC *ucres.CreateReservation,
	cancelUC *ucres.CancelReservation,
	statusUC *ucres.UpdateReservationStatus,
	slotsUC *ucres.ListSlots,
	tz string,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		statusUC: statusUC,
		slotsUC:  slotsUC,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Slot         string `json:"slot" binding:"required"`
	StudentName  string `json:"student_name" binding:"required"`
	StudentEmail string `json:"student_email" binding:"required,email"`
	StudentPhone string `json:"student_phone"`
	InstructorID *uint  `json:"instructor_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), domain.Candidate{
		Slot:         req.Slot,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		StudentPhone: req.StudentPhone,
		InstructorID: req.InstructorID,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// SLOTS (calendar view)
// ======================================================

func (h *ReservationHandler) ListSlots(c *gin.Context) {
	loc := timezone.Location(h.tz)

	var from, to *time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.ParseInLocation("2006-01-02", fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Date de début invalide.")
			return
		}
		from = &t
	}

	if toStr := c.Query("to"); toStr != "" {
		t, err := time.ParseInLocation("2006-01-02", toStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Date de fin invalide.")
			return
		}
		end := t.Add(24 * time.Hour)
		to = &end
	}

	events, err := h.slotsUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Erreur lors du chargement du calendrier.")
		return
	}

	httpresp.List(c, events)
}

// ======================================================
// CANCEL (hard delete)
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "cancelled",
		"reservation": res,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.statusUC.Execute(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
