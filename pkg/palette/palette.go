// Package palette loads named-color tables from YAML or TOML files into a
// markup.ColorTable and writes tables back out as TOML.
//
// A palette file maps names to color expressions. Values use the same syntax
// as the <c> tag: #rrggbb, #rgb, (r,g,b), or the name of another color.
//
//	name: solarized
//	colors:
//	  base03: "#002b36"
//	  accent: yellow
package palette

import (
	"bytes"
	"embed"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/markup"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*
var builtinFS embed.FS

// Encoding is the on-disk syntax of a palette
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// Palette is a named set of color expressions
type Palette struct {
	Name   string            `yaml:"name,omitempty" toml:"name,omitempty"`
	Colors map[string]string `yaml:"colors" toml:"colors"`
}

// EncodingFor picks the encoding from a file extension
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML, nil
	case ".toml":
		return EncodingTOML, nil
	default:
		return "", errors.Newf(errors.ErrPaletteInvalid, "unsupported palette extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Load reads a palette file. A leading ~/ is expanded to the home directory.
func Load(path string) (*Palette, error) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(xdg.Home, rest)
	}

	enc, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPaletteLoad, "failed to read palette %s", path).
			WithDetail("path", path)
	}

	p, err := Parse(data, enc)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes palette data
func Parse(data []byte, enc Encoding) (*Palette, error) {
	var p Palette
	var err error
	switch enc {
	case EncodingYAML:
		err = yaml.Unmarshal(data, &p)
	case EncodingTOML:
		err = toml.Unmarshal(data, &p)
	default:
		return nil, errors.Newf(errors.ErrPaletteInvalid, "unknown palette encoding %q", enc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPaletteParse, "failed to parse %s palette", enc)
	}
	if p.Colors == nil {
		p.Colors = map[string]string{}
	}
	return &p, nil
}

// Builtin returns one of the palettes shipped with tagtint
func Builtin(name string) (*Palette, error) {
	for _, enc := range []Encoding{EncodingYAML, EncodingTOML} {
		data, err := builtinFS.ReadFile("builtin/" + name + "." + string(enc))
		if err != nil {
			continue
		}
		return Parse(data, enc)
	}
	return nil, errors.Newf(errors.ErrNotFound, "no builtin palette named %q", name).
		WithDetail("available", BuiltinNames())
}

// BuiltinNames lists the shipped palettes
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Apply resolves every entry and adds it to table. Entries may refer to
// names already in the table or defined elsewhere in the palette; the first
// entry that resolves to nothing aborts with ErrColorInvalid and leaves the
// entries resolved so far in place.
func (p *Palette) Apply(table *markup.ColorTable) error {
	pending := make([]string, 0, len(p.Colors))
	for name := range p.Colors {
		pending = append(pending, name)
	}
	sort.Strings(pending)

	for len(pending) > 0 {
		var next []string
		for _, name := range pending {
			c, ok := table.Resolve(p.Colors[name])
			if !ok {
				next = append(next, name)
				continue
			}
			table.Add(name, c)
		}
		if len(next) == len(pending) {
			name := next[0]
			return errors.Newf(errors.ErrColorInvalid, "cannot resolve color %q for %q", p.Colors[name], name).
				WithDetail("palette", p.Name).
				WithDetail("name", name)
		}
		pending = next
	}
	return nil
}

// FromTable snapshots a table as a palette of hex values
func FromTable(name string, table *markup.ColorTable) *Palette {
	p := &Palette{Name: name, Colors: map[string]string{}}
	for n, c := range table.Snapshot() {
		p.Colors[n] = c.Hex()
	}
	return p
}

// WriteTOML encodes the palette as TOML
func (p *Palette) WriteTOML(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode palette")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write palette")
	}
	return nil
}
