package handler

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/attendance"
	"fraternos-backend/internal/export"
	"fraternos-backend/internal/roster"
	"fraternos-backend/internal/store"
)

type AttendanceHandler struct {
	recorder *attendance.Recorder
	events   store.EventStore
	validate *validator.Validate
}

func NewAttendanceHandler(recorder *attendance.Recorder, events store.EventStore) *AttendanceHandler {
	return &AttendanceHandler{recorder: recorder, events: events, validate: validator.New()}
}

type ScanRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

// Scan records one attendance event for the scanned or typed identifier. The
// server decides check-in vs check-out; the client only sends who.
func (h *AttendanceHandler) Scan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "member_id is required"})
	}

	ev, err := h.recorder.Record(c.UserContext(), req.MemberID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrUnknownMember):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "identifier not on the roster"})
		case errors.Is(err, store.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "attendance store unreachable, scan not saved"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save the scan"})
		}
	}

	return c.JSON(fiber.Map{
		"message":   fmt.Sprintf("%s registered", ev.Kind),
		"kind":      ev.Kind,
		"member_id": ev.MemberID,
		"name":      ev.Name,
		"committee": ev.Committee,
		"date":      ev.Date,
		"time":      ev.Time,
	})
}

// Today lists the events recorded on the current date, newest last.
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	events, err := h.events.ByDate(c.UserContext(), today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load today's events"})
	}

	return c.JSON(fiber.Map{
		"message": "events loaded",
		"date":    today,
		"data":    events,
	})
}

// Export streams the full event log as a CSV download.
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	events, err := h.events.All(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load events"})
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, events); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not build export"})
	}

	filename := fmt.Sprintf("attendance_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
