package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

func corridor(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.ParseGrid("####\n#SG#\n####\n####\n")
	require.NoError(t, err)
	return g
}

func TestCellColor_FogPolicy(t *testing.T) {
	cases := []struct {
		cell   maze.CellState
		hidden bool
		fog    bool
		want   any
	}{
		{maze.Path, false, true, ColorPath},
		{maze.Path, true, true, ColorFog},
		{maze.Wall, true, true, ColorFog},
		{maze.Wall, true, false, ColorWall},
		{maze.Start, true, true, ColorStart},
		{maze.Goal, true, true, ColorGoal},
	}
	for _, c := range cases {
		require.Equal(t, c.want, CellColor(c.cell, c.hidden, c.fog), "%v hidden=%v fog=%v", c.cell, c.hidden, c.fog)
	}
}

func TestImage_PaintsCellsAndPlayer(t *testing.T) {
	g := corridor(t)
	img := Image(g, Options{CellSize: 3, ShowPlayer: true, Player: maze.Position{X: 1, Y: 1}})
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())

	require.Equal(t, ColorWall, img.RGBAAt(0, 0))
	require.Equal(t, ColorPlayer, img.RGBAAt(4, 4), "player drawn over start")
	require.Equal(t, ColorGoal, img.RGBAAt(7, 5))
}

func TestImage_FogAndCaption(t *testing.T) {
	g := corridor(t)
	img := Image(g, Options{CellSize: 2, Fog: true, Caption: "seed 1"})
	require.Equal(t, 8+captionHeight, img.Bounds().Dy())
	require.Equal(t, ColorFog, img.RGBAAt(0, captionHeight), "hidden wall under fog")
	require.Equal(t, ColorStart, img.RGBAAt(2, captionHeight+2), "start never fogged")
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, corridor(t), Options{CellSize: 5}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 20, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, SavePNG(path, corridor(t), Options{}))
}
