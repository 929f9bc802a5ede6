package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

const captionHeight = 20

var (
	captionBg   = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	captionText = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Options controls a snapshot.
type Options struct {
	CellSize   int  // pixels per cell; values below 1 are treated as 1
	Fog        bool // paint hidden cells in the fog colour
	ShowPlayer bool
	Player     maze.Position
	Caption    string // drawn in a strip above the grid when non-empty
}

// Image rasterises g. The result is Size*CellSize pixels square plus the
// caption strip.
func Image(g *maze.Grid, opts Options) *image.RGBA {
	cs := opts.CellSize
	if cs < 1 {
		cs = 1
	}
	top := 0
	if opts.Caption != "" {
		top = captionHeight
	}
	side := g.Size() * cs
	img := image.NewRGBA(image.Rect(0, 0, side, side+top))

	if top > 0 {
		draw.Draw(img, image.Rect(0, 0, side, top), &image.Uniform{C: captionBg}, image.Point{}, draw.Src)
		drawCaption(img, opts.Caption, 4, top-6)
	}

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := maze.Position{X: x, Y: y}
			c := CellColor(g.CellAt(p), g.FogAt(p), opts.Fog)
			fillCell(img, x*cs, top+y*cs, cs, c)
		}
	}
	if opts.ShowPlayer && g.InBounds(opts.Player) {
		fillCell(img, opts.Player.X*cs, top+opts.Player.Y*cs, cs, ColorPlayer)
	}
	return img
}

func fillCell(img *image.RGBA, x, y, size int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+size, y+size), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawCaption(img *image.RGBA, s string, x, baseline int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// WritePNG encodes a snapshot of g to w.
func WritePNG(w io.Writer, g *maze.Grid, opts Options) error {
	if err := png.Encode(w, Image(g, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes a snapshot of g to path.
func SavePNG(path string, g *maze.Grid, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, g, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
