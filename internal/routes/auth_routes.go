package routes

import (
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/handler"
)

func SetupAuthRoutes(app *fiber.App, passphraseHash, jwtSecret string) {
	hdl := handler.NewAuthHandler(passphraseHash, jwtSecret)

	api := app.Group("/api/auth")
	api.Post("/gate", hdl.Gate)
}
