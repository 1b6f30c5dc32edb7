package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Difficulty is a named board configuration offered to players.
type Difficulty struct {
	Slug        string
	Name        string
	Description string
	Rows        int
	Cols        int
	Mines       int
}

// DefaultDifficulty is the preset used when none is chosen.
const DefaultDifficulty = "chill"

var presets = []Difficulty{
	{Slug: "beginner", Name: "Beginner Wave", Description: "white water", Rows: 8, Cols: 8, Mines: 5},
	{Slug: "chill", Name: "Pretty chill wave", Description: "Classic beginner mode", Rows: 10, Cols: 10, Mines: 10},
	{Slug: "medium", Name: "Medium wave", Description: "Getting challenging", Rows: 12, Cols: 12, Mines: 20},
	{Slug: "massive", Name: "Massive Swell", Description: "For experienced players", Rows: 16, Cols: 16, Mines: 40},
	{Slug: "mega", Name: "Mega Extreme Wave", Description: "Only for the brave", Rows: 16, Cols: 30, Mines: 99},
}

// Difficulties returns the built-in presets, easiest first.
func Difficulties() []Difficulty {
	return slices.Clone(presets)
}

// LookupDifficulty finds a preset by slug.
func LookupDifficulty(slug string) (Difficulty, bool) {
	i := slices.IndexFunc(presets, func(d Difficulty) bool { return d.Slug == slug })
	if i < 0 {
		return Difficulty{}, false
	}
	return presets[i], true
}

// Validate checks that the difficulty describes a legal board.
func (d Difficulty) Validate() error {
	if d.Slug == "" {
		return fmt.Errorf("difficulty %q: slug is required", d.Name)
	}
	if err := Validate(d.Rows, d.Cols, d.Mines); err != nil {
		return fmt.Errorf("difficulty %q: %w", d.Slug, err)
	}
	return nil
}

// NewGame starts a game with this difficulty's dimensions.
func (d Difficulty) NewGame(rng *rand.Rand, opts ...Option) (*Game, error) {
	return NewGame(rng, d.Rows, d.Cols, d.Mines, opts...)
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name, d.Rows, d.Cols, d.Mines)
}
