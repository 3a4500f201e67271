package mailer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

type Event struct {
	SenderID   *uint
	Recipients []string
	Subject    string
	Body       string
}

// Dispatcher sends mail best-effort off the request path: a full queue
// drops the event, a failed delivery is logged and recorded, and neither
// ever reaches the HTTP response.
type Dispatcher struct {
	sender   Sender
	recorder Recorder
	log      *zap.Logger
	queue    chan Event
}

func NewDispatcher(sender Sender, recorder Recorder, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender:   sender,
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	err := d.sender.Send(ev.Recipients, ev.Subject, ev.Body)

	entry := &models.EmailLog{
		SenderID:   ev.SenderID,
		Recipients: strings.Join(ev.Recipients, ","),
		Subject:    ev.Subject,
		Body:       ev.Body,
		Outcome:    models.MailOutcomeSent,
	}

	if err != nil {
		entry.Outcome = models.MailOutcomeFailed
		entry.Error = err.Error()
		d.log.Warn("mail delivery failed",
			zap.Strings("recipients", ev.Recipients),
			zap.String("subject", ev.Subject),
			zap.Error(err),
		)
	} else {
		d.log.Info("mail delivered",
			zap.Int("recipients", len(ev.Recipients)),
			zap.String("subject", ev.Subject),
		)
	}

	if recErr := d.recorder.Record(entry); recErr != nil {
		d.log.Warn("mail log write failed", zap.Error(recErr))
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block a request
		d.log.Warn("mail queue full, dropping event",
			zap.String("subject", ev.Subject),
		)
	}
}
