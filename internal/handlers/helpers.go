package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
)

// writeBusiness maps an admission/lifecycle rejection to its HTTP answer.
func writeBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Une erreur interne est survenue.")
		return
	}

	switch code {
	case domain.CodeInvalidSlot:
		httperr.BadRequest(c, code, "Créneau invalide.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Statut invalide.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Le statut actuel ne permet pas cette action.")
	case domain.CodeInstructorNotFound:
		httperr.NotFound(c, code, "Moniteur introuvable.")
	case "reservation_not_found":
		httperr.NotFound(c, code, "Réservation introuvable.")
	case "user_not_found":
		httperr.NotFound(c, code, "Utilisateur introuvable.")
	case domain.CodeSlotAlreadyBooked:
		httperr.Conflict(c, code, "Ce créneau est déjà réservé.")
	case domain.CodeDuplicateStudentBooking:
		httperr.Conflict(c, code, "Vous avez déjà une réservation sur ce créneau.")
	case domain.CodeNoInstructorAvailable:
		httperr.Conflict(c, code, "Aucun moniteur disponible sur ce créneau.")
	case domain.CodeOutsideAvailability:
		httperr.Conflict(c, code, "Le moniteur n'est pas disponible à cette heure.")
	default:
		httperr.Internal(c, code, "Une erreur interne est survenue.")
	}
}
