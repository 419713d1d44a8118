// Package notify assembles and sends the per-member emails: the registration
// mail with the personal QR attached, and the progress mail with rendered
// attendance charts embedded.
package notify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"fraternos-backend/internal/model"
	"fraternos-backend/internal/qrcode"
	"fraternos-backend/internal/report"
)

// Notifier builds one member's notification payload and hands it to the
// mailer. The worker calls it once per task.
type Notifier struct {
	mailer   Mailer
	charts   *ChartRenderer
	workDir  string
	whatsApp map[string]string // committee label -> group link
	log      *logrus.Logger
}

func NewNotifier(mailer Mailer, charts *ChartRenderer, workDir string, whatsApp map[string]string, log *logrus.Logger) *Notifier {
	return &Notifier{mailer: mailer, charts: charts, workDir: workDir, whatsApp: whatsApp, log: log}
}

// SendRegistration generates the member's QR and mails it with the
// registration template. Members without an email on the roster fail fast so
// the caller can log and move on.
func (n *Notifier) SendRegistration(member model.Member) error {
	if member.Email == "" {
		return fmt.Errorf("no email on roster for member %s", member.ID)
	}

	qrPath, err := qrcode.Generate(member.ID, filepath.Join(n.workDir, "qr"), FileSafeName(member.Name))
	if err != nil {
		return fmt.Errorf("qr for %s: %w", member.ID, err)
	}

	html, err := RenderRegistration(RegistrationData{
		Name:         member.Name,
		Committee:    member.Committee,
		WhatsAppLink: n.whatsApp[member.Committee],
	})
	if err != nil {
		return err
	}

	if err := n.mailer.Send(Message{
		To:          member.Email,
		Subject:     SubjectRegistration,
		HTML:        html,
		Attachments: []string{qrPath},
	}); err != nil {
		return err
	}
	n.log.WithFields(logrus.Fields{"member": member.ID, "email": member.Email}).Info("registration mail sent")
	return nil
}

// SendProgress renders the member's two donut rings and justification bar
// and mails them embedded in the progress template.
func (n *Notifier) SendProgress(member model.Member, comp report.Compliance) error {
	if member.Email == "" {
		return fmt.Errorf("no email on roster for member %s", member.ID)
	}

	figures := FiguresFor(comp)
	chartDir := filepath.Join(n.workDir, "charts")
	if err := os.MkdirAll(chartDir, 0o755); err != nil {
		return err
	}

	base := FileSafeName(member.Name)
	currentPath := filepath.Join(chartDir, base+"_current.png")
	totalPath := filepath.Join(chartDir, base+"_total.png")
	barPath := filepath.Join(chartDir, base+"_justifications.png")

	if err := n.charts.Donut(figures.CurrentPct, RingColor(figures.CurrentPct), currentPath); err != nil {
		return fmt.Errorf("current ring for %s: %w", member.ID, err)
	}
	if err := n.charts.Donut(figures.TotalPct, RingColor(figures.TotalPct), totalPath); err != nil {
		return fmt.Errorf("total ring for %s: %w", member.ID, err)
	}
	if err := n.charts.ProgressBar(figures.JustificationsPct, barPath); err != nil {
		return fmt.Errorf("justification bar for %s: %w", member.ID, err)
	}

	html, err := RenderProgress(ProgressData{
		Name:              member.Name,
		RequiredPct:       report.RequiredThreshold(comp.Semester),
		MaxJustifications: report.MaxJustifications,
		CurrentCID:        filepath.Base(currentPath),
		TotalCID:          filepath.Base(totalPath),
		BarCID:            filepath.Base(barPath),
	})
	if err != nil {
		return err
	}

	if err := n.mailer.Send(Message{
		To:      member.Email,
		Subject: SubjectProgress,
		HTML:    html,
		Embeds:  []string{currentPath, totalPath, barPath},
	}); err != nil {
		return err
	}
	n.log.WithFields(logrus.Fields{"member": member.ID, "email": member.Email}).Info("progress mail sent")
	return nil
}
