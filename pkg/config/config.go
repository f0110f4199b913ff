package config

import (
	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/palette"
)

// Config is the resolved tagtint configuration
type Config struct {
	Output  Output            `koanf:"output"`
	Palette Palette           `koanf:"palette"`
	Colors  map[string]string `koanf:"colors"`
	Log     Log               `koanf:"log"`
}

// Output controls how formatted text is written
type Output struct {
	Format  string `koanf:"format"`
	Width   int    `koanf:"width"`
	NoColor bool   `koanf:"no_color"`
}

// Palette lists the palettes layered on top of the standard colors
type Palette struct {
	Builtin []string `koanf:"builtin"`
	Files   []string `koanf:"files"`
}

// Log controls logging
type Log struct {
	Verbosity int `koanf:"verbosity"`
}

func (c *Config) validate() error {
	if c.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigParse, "output.width must not be negative, got %d", c.Output.Width)
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigParse, "log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// ColorTable builds the named-color table described by the configuration
func (c *Config) ColorTable() (*markup.ColorTable, error) {
	table := markup.NewColorTable()

	for _, name := range c.Palette.Builtin {
		p, err := palette.Builtin(name)
		if err != nil {
			return nil, err
		}
		if err := p.Apply(table); err != nil {
			return nil, err
		}
	}

	for _, path := range c.Palette.Files {
		p, err := palette.Load(path)
		if err != nil {
			return nil, err
		}
		if err := p.Apply(table); err != nil {
			return nil, err
		}
	}

	if len(c.Colors) > 0 {
		inline := &palette.Palette{Name: "config", Colors: c.Colors}
		if err := inline.Apply(table); err != nil {
			return nil, err
		}
	}

	return table, nil
}
