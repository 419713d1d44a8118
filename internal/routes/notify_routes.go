package routes

import (
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/handler"
	"fraternos-backend/internal/jobs"
	"fraternos-backend/internal/middleware"
	"fraternos-backend/internal/roster"
)

func SetupNotifyRoutes(app *fiber.App, jobsClient *jobs.Client, dir *roster.Directory, jwtSecret string) {
	hdl := handler.NewNotifyHandler(jobsClient, dir)

	api := app.Group("/api/notify", middleware.Auth(jwtSecret))

	api.Post("/registration", hdl.Registration)
	api.Post("/progress", hdl.Progress)
}
