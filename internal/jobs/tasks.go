// Package jobs queues and processes the notification emails. Each recipient
// becomes one task so a bad address or SMTP hiccup never takes down the
// whole batch.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeRegistrationEmail = "notify:registration"
	TypeProgressEmail     = "notify:progress"

	// QueueMail keeps notification traffic off the default queue.
	QueueMail = "mail"
)

// EmailPayload identifies one recipient within a batch.
type EmailPayload struct {
	MemberID string `json:"member_id"`
	BatchID  string `json:"batch_id"`
}

func NewRegistrationEmailTask(memberID, batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EmailPayload{MemberID: memberID, BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRegistrationEmail, payload, asynq.Queue(QueueMail)), nil
}

func NewProgressEmailTask(memberID, batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EmailPayload{MemberID: memberID, BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProgressEmail, payload, asynq.Queue(QueueMail)), nil
}
