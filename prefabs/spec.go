package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/milk9111/maidmodes/mode"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ModeSpec holds the tunable half of a mode. For built-in modes it is laid
// over the compiled-in descriptor; for scripted modes it is the whole
// descriptor and Script names the source.
type ModeSpec struct {
	Name         string          `yaml:"name"`
	Priority     int             `yaml:"priority"`
	System       bool            `yaml:"system"`
	Anytime      *bool           `yaml:"anytime_update"`
	Search       string          `yaml:"search"`
	EntitySearch *bool           `yaml:"entity_search"`
	Entries      []EntrySpec     `yaml:"entries"`
	Thresholds   mode.Thresholds `yaml:"thresholds"`
	Blocks       mode.BlockRange `yaml:"blocks"`
	Tint         *YAMLColor      `yaml:"tint"`
	Script       string          `yaml:"script"`
}

type EntrySpec struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func LoadModeSpec(name string) (ModeSpec, error) {
	return LoadSpec[ModeSpec](name)
}

// Scripted reports whether the spec describes a tengo mode.
func (s ModeSpec) Scripted() bool {
	return strings.TrimSpace(s.Script) != ""
}

// TintColor returns the configured tint, or nil.
func (s ModeSpec) TintColor() color.Color {
	if s.Tint == nil {
		return nil
	}
	return s.Tint.Color
}

// Apply overlays the non-zero fields of s onto d.
func (s ModeSpec) Apply(d *mode.Descriptor) error {
	if s.Priority != 0 {
		d.Priority = s.Priority
	}
	if s.Anytime != nil {
		d.AnytimeUpdate = *s.Anytime
	}
	if s.EntitySearch != nil {
		d.EntitySearch = *s.EntitySearch
	}
	if s.Search != "" {
		st, err := mode.ParseSearchStrategy(s.Search)
		if err != nil {
			return fmt.Errorf("prefabs: mode %s: %w", d.Name, err)
		}
		d.Search = st
	}
	opt := copier.Option{IgnoreEmpty: true}
	if err := copier.CopyWithOption(&d.Thresholds, &s.Thresholds, opt); err != nil {
		return fmt.Errorf("prefabs: mode %s thresholds: %w", d.Name, err)
	}
	if err := copier.CopyWithOption(&d.Blocks, &s.Blocks, opt); err != nil {
		return fmt.Errorf("prefabs: mode %s blocks: %w", d.Name, err)
	}
	if err := mode.ValidatePriority(d.Priority, d.System); err != nil {
		return fmt.Errorf("prefabs: mode %s: %w", d.Name, err)
	}
	return nil
}

// Base builds the static descriptor of a scripted mode. Its hooks are
// filled in by the script package.
func (s ModeSpec) Base() (mode.Descriptor, error) {
	if strings.TrimSpace(s.Name) == "" {
		return mode.Descriptor{}, fmt.Errorf("prefabs: mode spec without a name")
	}
	if len(s.Entries) == 0 {
		return mode.Descriptor{}, fmt.Errorf("prefabs: mode %s declares no entries", s.Name)
	}
	d := mode.Descriptor{Name: s.Name, System: s.System}
	for _, e := range s.Entries {
		d.Entries = append(d.Entries, mode.Entry{ID: mode.ID(e.ID), Name: e.Name})
	}
	if err := s.Apply(&d); err != nil {
		return mode.Descriptor{}, err
	}
	return d, nil
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
