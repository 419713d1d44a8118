package routes

import (
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/attendance"
	"fraternos-backend/internal/handler"
	"fraternos-backend/internal/middleware"
	"fraternos-backend/internal/store"
)

func SetupAttendanceRoutes(app *fiber.App, recorder *attendance.Recorder, events store.EventStore, jwtSecret string) {
	hdl := handler.NewAttendanceHandler(recorder, events)

	api := app.Group("/api/attendance", middleware.Auth(jwtSecret))

	api.Post("/record", hdl.Scan)
	api.Get("/today", hdl.Today)
	api.Get("/export", hdl.Export)
}
