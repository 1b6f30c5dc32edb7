package game

import "github.com/charmbracelet/log"

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	logger *log.Logger
	mines  []Position // fixed layout; overrides the RNG when set
}

// WithLogger sets the logger used for debug records about moves.
// Default is a logger that discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithMines places mines at exactly these positions instead of sampling them.
// The mine count passed to NewGame must match len(mines).
func WithMines(mines []Position) Option {
	return func(c *gameConfig) {
		c.mines = mines
	}
}
