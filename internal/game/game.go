// Package game is the ebiten window shell around a maze session: it draws
// the grid under fog, maps keys to moves and toggles and ticks the session.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Fog-Maze/internal/config"
	"github.com/Garsondee/Fog-Maze/internal/maze"
	"github.com/Garsondee/Fog-Maze/internal/render"
)

var backdrop = color.RGBA{R: 18, G: 18, B: 22, A: 255}

type Game struct {
	cfg  config.Config
	log  logrus.FieldLogger
	seed int64
	rng  *maze.Rand

	session *maze.Session
	opts    maze.PlayOptions
	mazes   int // generated so far, including the current one

	width     int // board plus event panel
	height    int
	boardSide int

	// Offscreen buffer holding one pixel per cell, scaled up on blit.
	boardBuf *ebiten.Image
	face     text.Face
	panel    *EventPanel

	copyText func(string) error
	status   string // last one-off message shown in the HUD
}

// New builds a game around a freshly generated maze.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		log:       logrus.StandardLogger(),
		seed:      time.Now().UnixNano(),
		opts:      maze.PlayOptions{FogEnabled: cfg.Play.FogEnabled, AIEnabled: cfg.Play.AIEnabled},
		boardSide: cfg.Display.WindowSize,
		width:     cfg.Display.WindowSize + logPanelWidth,
		height:    cfg.Display.WindowSize,
		face:      text.NewGoXFace(basicfont.Face7x13),
		copyText:  writeClipboard,
	}
	for _, o := range opts {
		o(g)
	}
	g.rng = maze.NewRand(g.seed)
	g.panel = NewEventPanel(g.face)
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Session returns the active play-through.
func (g *Game) Session() *maze.Session { return g.session }

// Options returns the current runtime toggles.
func (g *Game) Options() maze.PlayOptions { return g.opts }

// regenerate replaces the session with a new maze drawn from the game's
// generator. The old session is kept when generation fails.
func (g *Game) regenerate() error {
	res, err := maze.Generate(g.cfg.Generation, g.rng, g.log)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	g.mazes++
	g.session = maze.NewSession(res, g.cfg.Play, g.rng, g.log.WithField("maze_id", res.ID))
	if g.opts.AIEnabled {
		g.session.ResetSolver()
	}
	g.status = ""
	return nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.session.Update(time.Second/time.Duration(ebiten.TPS()), g.opts)
	return nil
}

// handleInput maps edge-triggered key presses to actions. Arrow keys also
// repeat while held.
func (g *Game) handleInput() {
	for _, b := range keyBindings {
		pressed := inpututil.IsKeyJustPressed(b.key)
		if b.repeat {
			pressed = repeating(inpututil.KeyPressDuration(b.key))
		}
		if pressed {
			g.apply(b.act)
		}
	}
}

// apply performs one input action against the session.
func (g *Game) apply(a action) {
	switch a {
	case actUp, actDown, actLeft, actRight:
		g.session.HandleMove(a.direction(), g.opts)
	case actToggleFog:
		g.opts.FogEnabled = !g.opts.FogEnabled
		g.session.Toggle(g.opts, "fog")
	case actToggleAI:
		g.opts.AIEnabled = !g.opts.AIEnabled
		g.session.Toggle(g.opts, "ai")
	case actCopy:
		if err := g.copyText(clipboardText(g.session, g.seed)); err != nil {
			g.log.WithError(err).Warn("copy to clipboard failed")
			g.status = "copy failed"
			return
		}
		g.status = "copied maze to clipboard"
	case actRegenerate:
		if err := g.regenerate(); err != nil {
			g.log.WithError(err).Error("regenerate failed")
			g.status = "regenerate failed, keeping current maze"
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	grid := g.session.Grid()
	n := grid.Size()
	if g.boardBuf == nil || g.boardBuf.Bounds().Dx() != n {
		g.boardBuf = ebiten.NewImage(n, n)
	}
	img := render.Image(grid, render.Options{
		CellSize:   1,
		Fog:        g.opts.FogEnabled,
		ShowPlayer: true,
		Player:     g.session.Player(),
	})
	g.boardBuf.WritePixels(img.Pix)

	cell := float64(g.boardSide) / float64(n)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	screen.DrawImage(g.boardBuf, op)

	g.panel.Draw(screen, g.boardSide, g.height, g.hudLines(), g.session.Events.Entries())
}

// hudLines is the status block shown at the top of the side panel.
func (g *Game) hudLines() []string {
	s := g.session
	grid := s.Grid()
	lines := []string{
		fmt.Sprintf("FOG MAZE  %dx%d  seed %d", grid.Size(), grid.Size(), g.seed),
		fmt.Sprintf("maze #%d  path %d  attempts %d", g.mazes, len(s.Maze.DecisivePath), s.Maze.Attempts),
		fmt.Sprintf("player %v  tick %d", s.Player(), s.Tick()),
		fmt.Sprintf("[F] fog %s   [A] ai %s", onOff(g.opts.FogEnabled), onOff(g.opts.AIEnabled)),
	}
	if sv := s.Solver(); sv != nil {
		lines = append(lines, fmt.Sprintf("solver steps %d  back %d  depth %d",
			sv.Steps(), sv.Backtracks(), sv.Depth()))
		if sv.GaveUp() {
			lines = append(lines, "solver gave up: no route")
		}
	}
	if s.Won() {
		lines = append(lines, "GOAL REACHED  [R] new maze")
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	lines = append(lines, "arrows move  [C] copy  [R] regenerate")
	return lines
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
