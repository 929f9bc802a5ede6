package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

const (
	logPanelWidth = 320
	logLineHeight = 14 // basicfont 7x13 plus one pixel
	panelPad      = 8
)

var (
	panelBg     = color.RGBA{R: 10, G: 10, B: 14, A: 248}
	panelEdge   = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	panelTitle  = color.RGBA{R: 24, G: 24, B: 34, A: 255}
	panelRecent = color.RGBA{R: 34, G: 34, B: 48, A: 160}
	panelText   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	panelDim    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// categoryColors tags each event line with a small coloured marker.
var categoryColors = map[string]color.RGBA{
	maze.EventMove:   {R: 0xFF, G: 0x7F, B: 0x00, A: 255},
	maze.EventSolver: {R: 80, G: 140, B: 230, A: 255},
	maze.EventToggle: {R: 0xBE, G: 0xBE, B: 0xBE, A: 255},
	maze.EventResult: {R: 0x00, G: 0xFF, B: 0x00, A: 255},
}

// EventPanel renders the HUD block and the newest session events down the
// right side of the window.
type EventPanel struct {
	face text.Face
}

// NewEventPanel creates a panel drawing with face.
func NewEventPanel(face text.Face) *EventPanel {
	return &EventPanel{face: face}
}

// visibleEvents returns the newest events that fit in rows lines, oldest first.
func visibleEvents(events []maze.Event, rows int) []maze.Event {
	if rows <= 0 {
		return nil
	}
	if len(events) > rows {
		return events[len(events)-rows:]
	}
	return events
}

// Draw fills the panel at panelX with the HUD lines followed by the event tail.
func (p *EventPanel) Draw(screen *ebiten.Image, panelX, panelH int, hud []string, events []maze.Event) {
	x := float32(panelX)
	vector.FillRect(screen, x, 0, logPanelWidth, float32(panelH), panelBg, false)
	vector.StrokeLine(screen, x, 0, x, float32(panelH), 1, panelEdge, false)

	y := panelPad
	for _, line := range hud {
		p.print(screen, line, panelX+panelPad, y, panelText)
		y += logLineHeight
	}
	y += logLineHeight / 2

	vector.FillRect(screen, x, float32(y), logPanelWidth, logLineHeight+2, panelTitle, false)
	p.print(screen, "EVENTS", panelX+panelPad, y+1, panelText)
	y += logLineHeight + 4

	visible := visibleEvents(events, (panelH-y)/logLineHeight)
	const recent = 3
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.FillRect(screen, x+2, float32(y), logPanelWidth-4, logLineHeight, panelRecent, false)
		}
		vector.FillRect(screen, x+5, float32(y+4), 3, 6, categoryColors[e.Category], false)

		col := panelDim
		if isRecent {
			col = panelText
		}
		p.print(screen, eventLine(e), panelX+12, y, col)
		y += logLineHeight
	}
}

// eventLine is the compact panel form of an event.
func eventLine(e maze.Event) string {
	line := e.Key + " " + e.Value
	const maxRunes = (logPanelWidth - 16) / 7
	if r := []rune(line); len(r) > maxRunes {
		line = string(r[:maxRunes-1]) + "~"
	}
	return line
}

func (p *EventPanel) print(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, p.face, op)
}
