// Package fonts resolves LED matrix fonts by name.
package fonts

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"ledtext/fonts/convert"
	"ledtext/fonts/glyph"
	"ledtext/fonts/mono5x8"
	"ledtext/fonts/prop8"

	"tinygo.org/x/tinyfont"
)

// Default is the font used when no name is given.
const Default = "prop8"

// BDFPrefix selects a BDF file: "bdf:/path/to/font.bdf".
const BDFPrefix = "bdf:"

var ErrUnknownFont = errors.New("unknown font")

// Names lists the built-in fonts.
func Names() []string {
	return []string{"prop8", "mono5x8", "tomthumb"}
}

// Lookup resolves a built-in font name or a BDF file reference.
func Lookup(name string) (glyph.Provider, error) {
	switch {
	case name == "" || name == "prop8":
		return prop8.Font, nil
	case name == "mono5x8":
		return mono5x8.Font, nil
	case name == "tomthumb":
		return tomThumb()
	case strings.HasPrefix(name, BDFPrefix):
		t, err := convert.LoadBDF(strings.TrimPrefix(name, BDFPrefix), convert.Options{})
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("font %q: %w", name, ErrUnknownFont)
}

var tomThumbState struct {
	once sync.Once
	t    *glyph.Table
	err  error
}

// tomThumb captures tinyfont's 3x5 TomThumb font once.
func tomThumb() (glyph.Provider, error) {
	st := &tomThumbState
	st.once.Do(func() {
		st.t, st.err = convert.FromFonter(&tinyfont.TomThumb, convert.ASCII(), convert.Options{Name: "tomthumb"})
	})
	if st.err != nil {
		return nil, st.err
	}
	return st.t, nil
}
