package routes

import (
	"github.com/gofiber/fiber/v2"

	"fraternos-backend/internal/handler"
	"fraternos-backend/internal/reconcile"
	"fraternos-backend/internal/roster"
	"fraternos-backend/internal/store"
)

// Report endpoints are read-only and stay outside the passphrase gate; the
// numbers they serve go to the members themselves.
func SetupReportRoutes(app *fiber.App, events store.EventStore, dir *roster.Directory, policy reconcile.NegativePolicy, sessionsPath string) {
	hdl := handler.NewReportHandler(events, dir, policy, sessionsPath)

	app.Get("/api/members/:id/summary", hdl.MemberSummary)

	api := app.Group("/api/reports")
	api.Get("/committees", hdl.CommitteeTotals)
	api.Get("/compliance", hdl.Compliance)
}
