// The worker drains the notification queue: it renders QR codes and charts
// and sends the mails the API enqueued.
package main

import (
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fraternos-backend/config"
	"fraternos-backend/internal/jobs"
	"fraternos-backend/internal/notify"
	"fraternos-backend/internal/report"
	"fraternos-backend/internal/roster"
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

	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	charts := &notify.ChartRenderer{FontPath: cfg.ChartFont}
	notifier := notify.NewNotifier(mailer, charts, cfg.WorkDir, cfg.WhatsAppGroups, log)

	// The session sheet is read once at startup; progress batches are sent
	// right after the sheet is updated, so a restart picks up new data.
	compliance := func(memberID string) (report.Compliance, bool) {
		return report.Compliance{}, false
	}
	if rows, err := report.LoadSessions(cfg.SessionsPath); err != nil {
		log.Warnf("session sheet unavailable, progress mails will be dropped: %v", err)
	} else {
		byMember := make(map[string]report.Compliance, len(rows))
		for _, row := range rows {
			byMember[row.MemberID] = report.Compute(row)
		}
		compliance = func(memberID string) (report.Compliance, bool) {
			comp, ok := byMember[memberID]
			return comp, ok
		}
	}

	worker := jobs.NewWorker(dir, notifier, compliance, log)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{jobs.QueueMail: 1},
		},
	)

	mux := asynq.NewServeMux()
	worker.Register(mux)

	log.Info("worker started, waiting for notification tasks")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
