package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httpresp"
	ucres "github.com/AutoEcolePlanner/lesson-scheduler/internal/usecase/reservation"
)

type InstructorHandler struct {
	availableUC *ucres.AvailableInstructors
}

func NewInstructorHandler(availableUC *ucres.AvailableInstructors) *InstructorHandler {
	return &InstructorHandler{availableUC: availableUC}
}

// Available lists instructors free and on duty for one slot. The calendar
// front-end queries either ?date=2026-09-07&time=09:00 or the legacy
// French pair ?jour&heure.
func (h *InstructorHandler) Available(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = c.Query("jour")
	}

	hour := c.Query("time")
	if hour == "" {
		hour = c.Query("heure")
	}

	if date == "" || hour == "" {
		httperr.BadRequest(c, "missing_query", "Paramètres date et heure obligatoires.")
		return
	}

	instructors, err := h.availableUC.Execute(c.Request.Context(), date+" "+hour)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, instructors)
}
