package mailer

import (
	"fmt"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/timezone"
)

const slotDisplayLayout = "02/01/2006 à 15:04"

// ReservationCreated queues the confirmation notice for a freshly
// persisted booking.
func (d *Dispatcher) ReservationCreated(r *models.Reservation, instructorName string) {
	if r.StudentEmail == "" {
		return
	}

	when := r.SlotTime.In(timezone.Location(timezone.DefaultTimezone)).Format(slotDisplayLayout)

	body := fmt.Sprintf(
		"Bonjour %s,\n\nVotre leçon de conduite du %s est enregistrée.\n",
		r.StudentName, when,
	)
	if instructorName != "" {
		body += fmt.Sprintf("Moniteur : %s.\n", instructorName)
	}
	body += "\nÀ bientôt,\nL'auto-école"

	d.Dispatch(Event{
		Recipients: []string{r.StudentEmail},
		Subject:    "Confirmation de votre réservation",
		Body:       body,
	})
}

// ReservationCancelled queues the cancellation notice.
func (d *Dispatcher) ReservationCancelled(r *models.Reservation, instructorName string) {
	if r.StudentEmail == "" {
		return
	}

	when := r.SlotTime.In(timezone.Location(timezone.DefaultTimezone)).Format(slotDisplayLayout)

	body := fmt.Sprintf(
		"Bonjour %s,\n\nVotre leçon de conduite du %s a été annulée.\n",
		r.StudentName, when,
	)
	if instructorName != "" {
		body += fmt.Sprintf("Moniteur concerné : %s.\n", instructorName)
	}
	body += "\nÀ bientôt,\nL'auto-école"

	d.Dispatch(Event{
		Recipients: []string{r.StudentEmail},
		Subject:    "Annulation de votre réservation",
		Body:       body,
	})
}

// Bulk queues one message to every recipient list entry at once.
func (d *Dispatcher) Bulk(senderID *uint, recipients []string, subject, body string) {
	if len(recipients) == 0 {
		return
	}

	d.Dispatch(Event{
		SenderID:   senderID,
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
	})
}
