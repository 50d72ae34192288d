package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/fonts"
	"github.com/gridshape/chartlayout/pkg/layout"
)

// Preset is the TOML description of a chart layout.
//
//	[margin]
//	top = 4
//	bottom = 4
//	left = 4
//	right = 4
//
//	[labels]
//	x = 40      # bottom band
//	y = 40      # left band
//	top = 0
//	right = 0
//
//	[caption]
//	text = "Graph Title"
//	family = "sans-serif"
//	points = 40.0
type Preset struct {
	Margin  MarginConfig  `toml:"margin"`
	Labels  LabelConfig   `toml:"labels"`
	Caption CaptionConfig `toml:"caption"`
}

// MarginConfig holds the four outer margin bands in pixels.
type MarginConfig struct {
	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
	Right  int `toml:"right"`
}

// LabelConfig holds the four axis-label bands in pixels. X is the bottom
// band, Y the left band, matching the primary axes.
type LabelConfig struct {
	X     int `toml:"x"`
	Y     int `toml:"y"`
	Top   int `toml:"top"`
	Right int `toml:"right"`
}

// CaptionConfig describes the optional title. An empty Text means no
// title band. Family defaults to the built-in face, Points to 20.
type CaptionConfig struct {
	Text   string  `toml:"text"`
	Family string  `toml:"family"`
	Points float64 `toml:"points"`
}

// DefaultPreset is used when no --config is given: small margins, primary
// label bands, no caption.
func DefaultPreset() *Preset {
	return &Preset{
		Margin: MarginConfig{Top: 4, Bottom: 4, Left: 4, Right: 4},
		Labels: LabelConfig{X: 40, Y: 40},
	}
}

// LoadPreset reads and validates a TOML preset file. Unknown keys and
// negative sizes are rejected with INVALID_CONFIG.
func LoadPreset(path string) (*Preset, error) {
	var p Preset
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding preset %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "preset %s has unknown keys: %v", path, undecoded)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Preset) validate() error {
	sides := []struct {
		name string
		v    int
	}{
		{"margin.top", p.Margin.Top}, {"margin.bottom", p.Margin.Bottom},
		{"margin.left", p.Margin.Left}, {"margin.right", p.Margin.Right},
		{"labels.x", p.Labels.X}, {"labels.y", p.Labels.Y},
		{"labels.top", p.Labels.Top}, {"labels.right", p.Labels.Right},
	}
	for _, s := range sides {
		if s.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s is negative (%d)", s.name, s.v)
		}
	}
	if p.Caption.Text != "" && p.Caption.Points < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "caption.points is negative (%v)", p.Caption.Points)
	}
	return nil
}

// Build turns the preset into a layout descriptor. Caption resolution can
// fail with a font error, which is passed through untouched.
func (p *Preset) Build() (*layout.Layout, error) {
	l := layout.New().
		SetAllMargins(p.Margin.Top, p.Margin.Bottom, p.Margin.Left, p.Margin.Right).
		SetAllLabelAreaSizes(p.Labels.Top, p.Labels.X, p.Labels.Y, p.Labels.Right)

	if p.Caption.Text != "" {
		family := p.Caption.Family
		if family == "" {
			family = fonts.DefaultFamily
		}
		points := p.Caption.Points
		if points == 0 {
			points = 20
		}
		if _, err := l.Caption(p.Caption.Text, family, points); err != nil {
			return nil, err
		}
	}
	return l, nil
}
