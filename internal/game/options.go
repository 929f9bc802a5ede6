package game

import "github.com/sirupsen/logrus"

// Option configures a Game during construction.
type Option func(*Game)

// WithSeed fixes the generator seed so the maze sequence is reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithLogger routes generation and session events to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.copyText = write }
}
