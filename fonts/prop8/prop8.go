// Package prop8 is the proportional LED matrix font.
//
// Glyphs fit an 8x8 cell (a few ligatures such as Æ and ‰ are wider) and
// cover Latin-1, part of Latin Extended-A, spacing modifiers and common
// typographic and currency symbols.
package prop8

import "ledtext/fonts/glyph"

// Blank is the fallback for code points the font does not cover.
const Blank = ' '

const cellWidth = 8

// Font is the proportional table.
var Font = glyph.MustNewTable("prop8", cellWidth, Blank, glyphs)
