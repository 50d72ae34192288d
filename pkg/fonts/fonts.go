// Package fonts resolves font family names to parsed, measurable fonts.
//
// Resolution checks an in-memory registry first and falls back to a system
// font lookup via go-findfont. The registry always contains the built-in
// "sans-serif" family, backed by the Go Regular face compiled into the
// binary, so callers (and tests) never depend on the host's font
// installation unless they ask for a specific family.
package fonts

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gridshape/chartlayout/pkg/errors"
)

// DefaultFamily always resolves, backed by the embedded Go Regular face.
const DefaultFamily = "sans-serif"

var (
	mu       sync.Mutex
	registry = map[string]*truetype.Font{}

	builtinOnce sync.Once
)

// builtin parses the embedded default face into the registry. Go Regular
// ships with x/image, so this cannot fail at runtime; a parse error here
// means a broken toolchain and panics.
func builtin() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("fonts: embedded Go Regular is unparsable: " + err.Error())
	}
	mu.Lock()
	registry[DefaultFamily] = f
	mu.Unlock()
}

// Register parses ttf and makes it resolvable under family, replacing any
// previous registration. Family matching is case-insensitive.
func Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFontParse, err, "parsing font data for %q", family)
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(family)] = f
	return nil
}

// Resolve returns the parsed font for family: first from the registry,
// then from the system font directories. An unknown family is reported
// with ErrCodeFontNotFound; a file that exists but cannot be parsed with
// ErrCodeFontParse.
func Resolve(family string) (*truetype.Font, error) {
	builtinOnce.Do(builtin)

	key := strings.ToLower(family)
	mu.Lock()
	f, ok := registry[key]
	mu.Unlock()
	if ok {
		return f, nil
	}

	path, err := findfont.Find(family)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "no font for family %q", family)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "reading font file %s", path)
	}
	f, err = truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontParse, err, "parsing font file %s", path)
	}

	mu.Lock()
	registry[key] = f
	mu.Unlock()
	return f, nil
}

// Face builds a measurable face for f at the given point size. DPI is
// fixed at 72 so one point maps to one pixel.
func Face(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
