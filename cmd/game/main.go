package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Fog-Maze/internal/config"
	"github.com/Garsondee/Fog-Maze/internal/game"
	"github.com/Garsondee/Fog-Maze/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		size       int
		seed       int64
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "fog-maze",
		Short: "Walk a procedurally generated maze under fog of war",
		Long: `Opens a window with a freshly generated maze. Arrow keys move,
F toggles fog, A hands control to the backtracking solver, C copies the
maze to the clipboard and R generates a new one.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(configPath, size)
			if err != nil {
				return err
			}
			opts := []game.Option{game.WithLogger(log)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, game.WithSeed(seed))
			}
			g, err := game.New(cfg, opts...)
			if err != nil {
				return err
			}
			ebiten.SetWindowTitle(cfg.Display.Title)
			w, h := g.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "board edge length (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (random when unset)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}
