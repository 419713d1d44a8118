package jobs

import (
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"fraternos-backend/internal/model"
)

// BatchResult summarizes an enqueue pass over a recipient list.
type BatchResult struct {
	BatchID  string `json:"batch_id"`
	Enqueued int    `json:"enqueued"`
	Skipped  int    `json:"skipped"`
}

// Client enqueues notification batches. Members without an email on the
// roster are skipped up front instead of producing doomed tasks.
type Client struct {
	client *asynq.Client
	log    *logrus.Logger
}

func NewClient(redisAddr string, log *logrus.Logger) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
		log:    log,
	}
}

func (c *Client) Close() error { return c.client.Close() }

// EnqueueRegistrationBatch queues one registration mail per member with an
// email address and returns the batch summary.
func (c *Client) EnqueueRegistrationBatch(members []model.Member) (BatchResult, error) {
	return c.enqueueBatch(members, NewRegistrationEmailTask)
}

// EnqueueProgressBatch queues one progress mail per member with an email
// address.
func (c *Client) EnqueueProgressBatch(members []model.Member) (BatchResult, error) {
	return c.enqueueBatch(members, NewProgressEmailTask)
}

func (c *Client) enqueueBatch(members []model.Member, newTask func(memberID, batchID string) (*asynq.Task, error)) (BatchResult, error) {
	result := BatchResult{BatchID: uuid.NewString()}
	for _, member := range members {
		if member.Email == "" {
			c.log.WithField("member", member.ID).Warn("skipping member without email")
			result.Skipped++
			continue
		}
		task, err := newTask(member.ID, result.BatchID)
		if err != nil {
			return result, err
		}
		if _, err := c.client.Enqueue(task); err != nil {
			return result, err
		}
		result.Enqueued++
	}
	c.log.WithFields(logrus.Fields{
		"batch":    result.BatchID,
		"enqueued": result.Enqueued,
		"skipped":  result.Skipped,
	}).Info("notification batch enqueued")
	return result, nil
}
