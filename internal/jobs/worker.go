package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"fraternos-backend/internal/notify"
	"fraternos-backend/internal/report"
	"fraternos-backend/internal/roster"
)

// ComplianceSource looks up a member's compliance row for the progress mail.
type ComplianceSource func(memberID string) (report.Compliance, bool)

// Worker processes notification tasks. A member missing from the roster or
// the session sheet is logged and the task dropped; a send failure is
// returned so the task retries.
type Worker struct {
	dir        *roster.Directory
	notifier   *notify.Notifier
	compliance ComplianceSource
	log        *logrus.Logger
}

func NewWorker(dir *roster.Directory, notifier *notify.Notifier, compliance ComplianceSource, log *logrus.Logger) *Worker {
	return &Worker{dir: dir, notifier: notifier, compliance: compliance, log: log}
}

func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRegistrationEmail, w.HandleRegistrationEmail)
	mux.HandleFunc(TypeProgressEmail, w.HandleProgressEmail)
}

func (w *Worker) HandleRegistrationEmail(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("registration payload: %w: %w", err, asynq.SkipRetry)
	}

	member, ok := w.dir.Lookup(payload.MemberID)
	if !ok {
		w.log.WithFields(logrus.Fields{"member": payload.MemberID, "batch": payload.BatchID}).
			Warn("registration task for member not on roster, dropping")
		return nil
	}
	return w.notifier.SendRegistration(member)
}

func (w *Worker) HandleProgressEmail(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("progress payload: %w: %w", err, asynq.SkipRetry)
	}

	member, ok := w.dir.Lookup(payload.MemberID)
	if !ok {
		w.log.WithFields(logrus.Fields{"member": payload.MemberID, "batch": payload.BatchID}).
			Warn("progress task for member not on roster, dropping")
		return nil
	}
	comp, ok := w.compliance(payload.MemberID)
	if !ok {
		w.log.WithFields(logrus.Fields{"member": payload.MemberID, "batch": payload.BatchID}).
			Warn("progress task for member not on session sheet, dropping")
		return nil
	}
	return w.notifier.SendProgress(member, comp)
}
