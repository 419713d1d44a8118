package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraternos-backend/internal/model"
	"fraternos-backend/internal/report"
)

type fakeMailer struct {
	sent []Message
	err  error
}

func (f *fakeMailer) Send(msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestFileSafeName(t *testing.T) {
	assert.Equal(t, "Jose_Perez", FileSafeName("José Pérez"))
	assert.Equal(t, "Maria_Nunez_Ibanez", FileSafeName("  María Núñez Ibáñez "))
	assert.Equal(t, "Ana", FileSafeName("Ana"))
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "Jose_Perez", ShortName("José Pérez García"))
	assert.Equal(t, "Ana_SinApellido", ShortName("Ana"))
	assert.Equal(t, "Desconocido_SinApellido", ShortName(""))
}

func TestRingColor(t *testing.T) {
	assert.Equal(t, ringGreen, RingColor(80))
	assert.Equal(t, ringGreen, RingColor(95.5))
	assert.Equal(t, ringOrange, RingColor(79.9))
	assert.Equal(t, ringOrange, RingColor(50))
	assert.Equal(t, ringRed, RingColor(49.9))
	assert.Equal(t, ringRed, RingColor(0))
}

func TestFiguresFor(t *testing.T) {
	comp := report.Compliance{CurrentPct: 75, TotalPct: 60, JustificationsPct: 50}
	figures := FiguresFor(comp)
	assert.Equal(t, 75.0, figures.CurrentPct)
	assert.Equal(t, 60.0, figures.TotalPct)
	assert.Equal(t, 50.0, figures.JustificationsPct)
}

func TestChartRendererWritesFiles(t *testing.T) {
	dir := t.TempDir()
	r := &ChartRenderer{}

	donut := filepath.Join(dir, "ring.png")
	require.NoError(t, r.Donut(72.5, ringOrange, donut))
	info, err := os.Stat(donut)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	bar := filepath.Join(dir, "bar.png")
	require.NoError(t, r.ProgressBar(125, bar))
	info, err = os.Stat(bar)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderRegistration(t *testing.T) {
	html, err := RenderRegistration(RegistrationData{
		Name:         "José Pérez",
		Committee:    "Logística",
		WhatsAppLink: "https://chat.whatsapp.com/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "José Pérez")
	assert.Contains(t, html, "Logística")
	assert.Contains(t, html, "https://chat.whatsapp.com/abc")

	// No link configured: the fallback line replaces the anchor.
	html, err = RenderRegistration(RegistrationData{Name: "Ana", Committee: "Registro"})
	require.NoError(t, err)
	assert.NotContains(t, html, "Click aquí")
	assert.Contains(t, html, "en caso de que haya uno disponible")
}

func TestRenderProgress(t *testing.T) {
	html, err := RenderProgress(ProgressData{
		Name:              "Ana",
		RequiredPct:       80,
		MaxJustifications: 4,
		CurrentCID:        "Ana_current.png",
		TotalCID:          "Ana_total.png",
		BarCID:            "Ana_justifications.png",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "cid:Ana_current.png")
	assert.Contains(t, html, "cid:Ana_total.png")
	assert.Contains(t, html, "cid:Ana_justifications.png")
	assert.Contains(t, html, "80%")
	assert.Contains(t, html, "máximo 4")
}

func TestSendRegistration(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, &ChartRenderer{}, t.TempDir(),
		map[string]string{"Logística": "https://chat.whatsapp.com/abc"}, quietLog())

	member := model.Member{ID: "A01", Name: "José Pérez", Committee: "Logística", Email: "jose@example.com"}
	require.NoError(t, n.SendRegistration(member))

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "jose@example.com", msg.To)
	assert.Equal(t, SubjectRegistration, msg.Subject)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "Jose_Perez.png", filepath.Base(msg.Attachments[0]))
	_, err := os.Stat(msg.Attachments[0])
	assert.NoError(t, err)
	assert.Contains(t, msg.HTML, "https://chat.whatsapp.com/abc")
}

func TestSendRegistrationNoEmail(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, &ChartRenderer{}, t.TempDir(), nil, quietLog())

	err := n.SendRegistration(model.Member{ID: "A02", Name: "Ana"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "A02"))
	assert.Empty(t, mailer.sent)
}

func TestSendProgress(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, &ChartRenderer{}, t.TempDir(), nil, quietLog())

	member := model.Member{ID: "A01", Name: "José Pérez", Email: "jose@example.com"}
	comp := report.Compliance{MemberID: "A01", Semester: 3, CurrentPct: 85, TotalPct: 60, JustificationsPct: 25}
	require.NoError(t, n.SendProgress(member, comp))

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, SubjectProgress, msg.Subject)
	require.Len(t, msg.Embeds, 3)
	for _, path := range msg.Embeds {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
	assert.Contains(t, msg.HTML, "cid:Jose_Perez_current.png")
	assert.Contains(t, msg.HTML, "80%")
}
