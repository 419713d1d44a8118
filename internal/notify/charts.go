package notify

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"fraternos-backend/internal/report"
)

// ProgressFigures are the numbers the rendered notification images are bound
// to. They come straight from the compliance report; tests assert on these,
// not on pixels.
type ProgressFigures struct {
	CurrentPct        float64
	TotalPct          float64
	JustificationsPct float64
}

// FiguresFor extracts the chart bindings from a compliance row.
func FiguresFor(c report.Compliance) ProgressFigures {
	return ProgressFigures{
		CurrentPct:        c.CurrentPct,
		TotalPct:          c.TotalPct,
		JustificationsPct: c.JustificationsPct,
	}
}

var (
	ringGreen  = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	ringOrange = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	ringRed    = color.RGBA{R: 0xcd, G: 0x5c, B: 0x5c, A: 0xff}
	trackGray  = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	barRed     = color.RGBA{R: 0xc8, G: 0x32, B: 0x32, A: 0xff}
	textDark   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// RingColor picks the ring color from the rendered percentage: green at or
// above 80, orange at or above 50, red below.
func RingColor(pct float64) color.Color {
	switch {
	case pct >= 80:
		return ringGreen
	case pct >= 50:
		return ringOrange
	default:
		return ringRed
	}
}

// ChartRenderer draws the two donut rings and the justification bar. An
// optional TTF path sets the label typeface; without it the built-in face
// is used.
type ChartRenderer struct {
	FontPath string
}

func (r *ChartRenderer) applyFont(dc *gg.Context, points float64) {
	if r.FontPath == "" {
		return
	}
	// Fall back to the default face silently if the font cannot load.
	_ = dc.LoadFontFace(r.FontPath, points)
}

// Donut renders a 350x350 ring filled clockwise from twelve o'clock, with
// the percentage centered. Values outside 0–100 are clipped for drawing
// only; the label always shows the real value.
func (r *ChartRenderer) Donut(pct float64, ringColor color.Color, path string) error {
	const size = 350
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx, cy := float64(size)/2, float64(size)/2
	const ringWidth = 42.0
	radius := float64(size)/2 - ringWidth

	dc.SetLineWidth(ringWidth)
	dc.SetColor(trackGray)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	clipped := math.Max(0, math.Min(100, pct))
	if clipped > 0 {
		start := -math.Pi / 2
		dc.SetColor(ringColor)
		dc.DrawArc(cx, cy, radius, start, start+2*math.Pi*clipped/100)
		dc.Stroke()
	}

	r.applyFont(dc, 42)
	dc.SetColor(textDark)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", pct), cx, cy, 0.5, 0.5)
	return dc.SavePNG(path)
}

// ProgressBar renders a 450x90 horizontal bar for the justification
// allowance, red fill over a gray track, percentage centered.
func (r *ChartRenderer) ProgressBar(pct float64, path string) error {
	const width, height = 450, 90
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	const barH = 36.0
	barY := (float64(height) - barH) / 2

	dc.SetColor(trackGray)
	dc.DrawRectangle(0, barY, width, barH)
	dc.Fill()

	clipped := math.Max(0, math.Min(100, pct))
	if clipped > 0 {
		dc.SetColor(barRed)
		dc.DrawRectangle(0, barY, width*clipped/100, barH)
		dc.Fill()
	}

	r.applyFont(dc, 24)
	dc.SetColor(textDark)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", pct), width/2, float64(height)/2, 0.5, 0.5)
	return dc.SavePNG(path)
}
