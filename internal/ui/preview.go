// Package ui provides a terminal preview of the LED matrix so the unit can
// be exercised without hardware. Each character cell shows two vertically
// stacked pixels using the half-block glyph with foreground/background
// colors.
package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fly-the-w/internal/animation"
	"fly-the-w/internal/plugin"
)

// Preview is the terminal matrix application.
type Preview struct {
	app    *tview.Application
	matrix *tview.TextView
	status *tview.TextView
}

// NewPreview builds the two-panel layout: the matrix on top, a one-line
// status bar underneath.
func NewPreview() *Preview {
	matrix := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	matrix.SetTitle(" Fly the W ").SetBorder(true)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	status.SetBorder(false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(matrix, 0, 1, false).
		AddItem(status, 1, 0, false)

	app := tview.NewApplication().SetRoot(layout, true)
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return &Preview{app: app, matrix: matrix, status: status}
}

// Run blocks until the application stops.
func (p *Preview) Run() error {
	return p.app.Run()
}

// Stop terminates the application loop.
func (p *Preview) Stop() {
	p.app.Stop()
}

// UpdateFrame redraws the matrix and status bar. Safe to call from any
// goroutine; the draw is queued onto the UI loop.
func (p *Preview) UpdateFrame(frame animation.Frame, info plugin.Status) {
	text := renderFrame(frame)
	statusLine := renderStatus(info)
	p.app.QueueUpdateDraw(func() {
		p.matrix.SetText(text)
		p.status.SetText(statusLine)
	})
}

// renderFrame encodes the frame as tview color tags, two pixel rows per
// text line via the upper-half-block glyph.
func renderFrame(frame animation.Frame) string {
	var b strings.Builder
	for y := 0; y < frame.Height; y += 2 {
		for x := 0; x < frame.Width; x++ {
			top := frame.At(x, y)
			bottom := frame.At(x, y+1)
			fmt.Fprintf(&b, "[#%02x%02x%02x:#%02x%02x%02x]▀", top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		b.WriteString("[-:-]\n")
	}
	return b.String()
}

func renderStatus(info plugin.Status) string {
	if !info.Celebrating {
		return fmt.Sprintf("[gray]idle, watching %s (q to quit)", info.Team)
	}
	return fmt.Sprintf("[gold]%s WIN %s[-] until %s",
		info.Team, info.Score, info.ExpiresAt.Format("15:04:05"))
}
