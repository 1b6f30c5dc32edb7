// Package config loads minesurfer settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/minesurfer/internal/game"
)

// Config is the complete file configuration.
//
//	log_level          = "info"
//	seed               = 0
//	default_difficulty = "chill"
//
//	difficulty "tiny" {
//	  name        = "Tiny"
//	  rows        = 4
//	  cols        = 4
//	  mines       = 2
//	  description = "warm-up"
//	}
type Config struct {
	LogLevel          string             `hcl:"log_level,optional"`
	Seed              int64              `hcl:"seed,optional"`
	DefaultDifficulty string             `hcl:"default_difficulty,optional"`
	Custom            []DifficultyConfig `hcl:"difficulty,block"`
}

// DifficultyConfig adds a board preset, or replaces a built-in one with the
// same slug.
type DifficultyConfig struct {
	Slug        string `hcl:"slug,label"`
	Name        string `hcl:"name,optional"`
	Description string `hcl:"description,optional"`
	Rows        int    `hcl:"rows"`
	Cols        int    `hcl:"cols"`
	Mines       int    `hcl:"mines"`
}

func (d DifficultyConfig) difficulty() game.Difficulty {
	name := d.Name
	if name == "" {
		name = d.Slug
	}
	return game.Difficulty{
		Slug:        d.Slug,
		Name:        name,
		Description: d.Description,
		Rows:        d.Rows,
		Cols:        d.Cols,
		Mines:       d.Mines,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:          "warn",
		DefaultDifficulty: game.DefaultDifficulty,
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.DefaultDifficulty == "" {
		cfg.DefaultDifficulty = game.DefaultDifficulty
	}

	return &cfg, nil
}

// Validate checks log level, custom boards and the default difficulty.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	seen := make(map[string]bool)
	for _, d := range c.Custom {
		if seen[d.Slug] {
			return fmt.Errorf("duplicate difficulty %q", d.Slug)
		}
		seen[d.Slug] = true
		if err := d.difficulty().Validate(); err != nil {
			return err
		}
	}

	if _, err := c.Difficulty(c.DefaultDifficulty); err != nil {
		return fmt.Errorf("default_difficulty: %w", err)
	}
	return nil
}

// Difficulties returns the built-in presets with custom blocks applied:
// a custom slug matching a preset replaces it in place, new slugs follow.
func (c *Config) Difficulties() []game.Difficulty {
	out := game.Difficulties()
	for _, dc := range c.Custom {
		d := dc.difficulty()
		i := slices.IndexFunc(out, func(p game.Difficulty) bool { return p.Slug == d.Slug })
		if i >= 0 {
			out[i] = d
			continue
		}
		out = append(out, d)
	}
	return out
}

// Difficulty resolves a slug against Difficulties.
func (c *Config) Difficulty(slug string) (game.Difficulty, error) {
	for _, d := range c.Difficulties() {
		if d.Slug == slug {
			return d, nil
		}
	}
	return game.Difficulty{}, fmt.Errorf("unknown difficulty %q", slug)
}
