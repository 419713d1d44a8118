package handler

import (
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/jobs"
	"fraternos-backend/internal/model"
	"fraternos-backend/internal/roster"
)

type NotifyHandler struct {
	jobs *jobs.Client
	dir  *roster.Directory
}

func NewNotifyHandler(jobsClient *jobs.Client, dir *roster.Directory) *NotifyHandler {
	return &NotifyHandler{jobs: jobsClient, dir: dir}
}

func (h *NotifyHandler) recipients(c *fiber.Ctx) []model.Member {
	if committee := c.Query("committee"); committee != "" {
		return h.dir.Committee(committee)
	}
	return h.dir.Members()
}

// Registration queues the QR registration mail for every roster member, or
// for one committee when ?committee= is given.
func (h *NotifyHandler) Registration(c *fiber.Ctx) error {
	members := h.recipients(c)
	if len(members) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no members matched"})
	}

	result, err := h.jobs.EnqueueRegistrationBatch(members)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not enqueue batch"})
	}

	return c.JSON(fiber.Map{
		"message": "registration batch enqueued",
		"data":    result,
	})
}

// Progress queues the progress mail the same way.
func (h *NotifyHandler) Progress(c *fiber.Ctx) error {
	members := h.recipients(c)
	if len(members) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no members matched"})
	}

	result, err := h.jobs.EnqueueProgressBatch(members)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not enqueue batch"})
	}

	return c.JSON(fiber.Map{
		"message": "progress batch enqueued",
		"data":    result,
	})
}
