// Package convert builds LED glyph tables from other font formats: tinyfont
// fonts, golang.org/x/image font faces and BDF files.
package convert

import (
	"errors"
	"fmt"

	"tinygo.org/x/tinyfont"
)

// LineMetrics derives the line extent of f over runes.
//
// It returns:
//   - height: rows spanned by all glyphs, top of the tallest to the bottom of
//     the lowest descender
//   - ascent: rows from that top to the baseline
//
// The computation scans glyph headers only; nothing is drawn.
func LineMetrics(f tinyfont.Fonter, runes []rune) (height int, ascent int, err error) {
	if f == nil {
		return 0, 0, errors.New("nil font")
	}

	minY := 0
	maxY := 0
	first := true
	for _, r := range runes {
		info := f.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		y0 := int(info.YOffset)
		y1 := y0 + int(info.Height)
		if first {
			minY, maxY = y0, y1
			first = false
			continue
		}
		if y0 < minY {
			minY = y0
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	if first {
		return 0, 0, errors.New("no glyphs")
	}

	height = maxY - minY
	ascent = -minY
	if height <= 0 || ascent < 0 {
		return 0, 0, fmt.Errorf("invalid metrics: height=%d ascent=%d", height, ascent)
	}
	return height, ascent, nil
}
