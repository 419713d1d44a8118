package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fraternos-backend/config"
	"fraternos-backend/internal/attendance"
	"fraternos-backend/internal/jobs"
	"fraternos-backend/internal/reconcile"
	"fraternos-backend/internal/roster"
	"fraternos-backend/internal/routes"
	"fraternos-backend/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Warn(".env not found, using system environment")
	}
	cfg := config.Load()

	dir, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Fatalf("roster load failed: %v", err)
	}
	log.Infof("roster loaded: %d members", dir.Len())

	var events store.EventStore
	switch cfg.StoreBackend {
	case "sheets":
		events, err = store.NewSheetsStore(context.Background(), cfg.SheetsID, cfg.SheetsCredentials)
		if err != nil {
			log.Fatalf("sheets store init failed: %v", err)
		}
		log.Info("using spreadsheet event store")
	default:
		db := config.ConnectDB(cfg)
		events = store.NewGormStore(db)
		log.Infof("using %s event store", cfg.DBDriver)
	}

	recorder := attendance.NewRecorder(dir, events)
	jobsClient := jobs.NewClient(cfg.RedisAddr, log)
	defer jobsClient.Close()

	policy := reconcile.ParsePolicy(cfg.NegativePolicy)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, cfg.PassphraseHash, cfg.JWTSecret)
	routes.SetupAttendanceRoutes(app, recorder, events, cfg.JWTSecret)
	routes.SetupReportRoutes(app, events, dir, policy, cfg.SessionsPath)
	routes.SetupNotifyRoutes(app, jobsClient, dir, cfg.JWTSecret)

	log.Infof("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
