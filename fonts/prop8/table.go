package prop8

import "ledtext/fonts/glyph"

var glyphs = []glyph.Glyph{
	{Rune: ' ', Width: 3, Height: 1, XOffset: -1, YOffset: 7, XAdvance: 4, Columns: []byte{0x00, 0x00, 0x00}},
	{Rune: '!', Width: 1, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x5F}},
	{Rune: '"', Width: 3, Height: 3, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x07, 0x00, 0x07}},
	{Rune: '#', Width: 6, Height: 6, XOffset: 1, YOffset: 1, XAdvance: 8, Columns: []byte{0x12, 0x3F, 0x12, 0x12, 0x3F, 0x12}},
	{Rune: '$', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x24, 0x2A, 0x7F, 0x2A, 0x10}},
	{Rune: '%', Width: 7, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x06, 0x29, 0x16, 0x08, 0x34, 0x4A, 0x30}},
	{Rune: '&', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x36, 0x49, 0x49, 0x49, 0x72}},
	{Rune: '\'', Width: 1, Height: 3, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x07}},
	{Rune: '(', Width: 3, Height: 7, XOffset: 3, YOffset: 0, XAdvance: 7, Columns: []byte{0x1C, 0x22, 0x41}},
	{Rune: ')', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x41, 0x22, 0x1C}},
	{Rune: '*', Width: 5, Height: 5, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x0A, 0x04, 0x1F, 0x04, 0x0A}},
	{Rune: '+', Width: 5, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x04, 0x04, 0x1F, 0x04, 0x04}},
	{Rune: ',', Width: 2, Height: 3, XOffset: 1, YOffset: 5, XAdvance: 5, Columns: []byte{0x04, 0x03}},
	{Rune: '-', Width: 4, Height: 1, XOffset: 1, YOffset: 3, XAdvance: 6, Columns: []byte{0x01, 0x01, 0x01, 0x01}},
	{Rune: '.', Width: 1, Height: 1, XOffset: 2, YOffset: 6, XAdvance: 5, Columns: []byte{0x01}},
	{Rune: '/', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x60, 0x1C, 0x03}},
	{Rune: '0', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x51, 0x49, 0x45, 0x3E}},
	{Rune: '1', Width: 3, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x04, 0x02, 0x7F}},
	{Rune: '2', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x42, 0x61, 0x51, 0x49, 0x46}},
	{Rune: '3', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x22, 0x41, 0x49, 0x49, 0x36}},
	{Rune: '4', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x18, 0x14, 0x12, 0x11, 0x7F}},
	{Rune: '5', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x27, 0x45, 0x45, 0x45, 0x39}},
	{Rune: '6', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x49, 0x49, 0x49, 0x32}},
	{Rune: '7', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x61, 0x11, 0x09, 0x05, 0x03}},
	{Rune: '8', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x36, 0x49, 0x49, 0x49, 0x36}},
	{Rune: '9', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x26, 0x49, 0x49, 0x49, 0x3E}},
	{Rune: ':', Width: 1, Height: 5, XOffset: 2, YOffset: 2, XAdvance: 5, Columns: []byte{0x11}},
	{Rune: ';', Width: 2, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 5, Columns: []byte{0x20, 0x19}},
	{Rune: '<', Width: 3, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 5, Columns: []byte{0x04, 0x0A, 0x11}},
	{Rune: '=', Width: 4, Height: 3, XOffset: 1, YOffset: 2, XAdvance: 6, Columns: []byte{0x05, 0x05, 0x05, 0x05}},
	{Rune: '>', Width: 3, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 5, Columns: []byte{0x11, 0x0A, 0x04}},
	{Rune: '?', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x02, 0x01, 0x51, 0x09, 0x06}},
	{Rune: '@', Width: 7, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x7E, 0x81, 0x99, 0xA5, 0xBD, 0xA1, 0x1E}},
	{Rune: 'A', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7E, 0x11, 0x11, 0x11, 0x7E}},
	{Rune: 'B', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x49, 0x49, 0x49, 0x36}},
	{Rune: 'C', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x41, 0x41, 0x41, 0x22}},
	{Rune: 'D', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x41, 0x41, 0x41, 0x3E}},
	{Rune: 'E', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x49, 0x49, 0x41, 0x41}},
	{Rune: 'F', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x09, 0x09, 0x01, 0x01}},
	{Rune: 'G', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x41, 0x41, 0x49, 0x7A}},
	{Rune: 'H', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x08, 0x08, 0x08, 0x7F}},
	{Rune: 'I', Width: 1, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x7F}},
	{Rune: 'J', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x20, 0x40, 0x40, 0x40, 0x3F}},
	{Rune: 'K', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x08, 0x14, 0x22, 0x41}},
	{Rune: 'L', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x40, 0x40, 0x40, 0x40}},
	{Rune: 'M', Width: 7, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x7F, 0x04, 0x08, 0x10, 0x08, 0x04, 0x7F}},
	{Rune: 'N', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x04, 0x08, 0x10, 0x7F}},
	{Rune: 'O', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x41, 0x41, 0x41, 0x3E}},
	{Rune: 'P', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x11, 0x11, 0x11, 0x0E}},
	{Rune: 'Q', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3E, 0x41, 0x51, 0x21, 0x5E}},
	{Rune: 'R', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x11, 0x11, 0x31, 0x4E}},
	{Rune: 'S', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x26, 0x49, 0x49, 0x49, 0x32}},
	{Rune: 'T', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x01, 0x01, 0x7F, 0x01, 0x01}},
	{Rune: 'U', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3F, 0x40, 0x40, 0x40, 0x3F}},
	{Rune: 'V', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x1F, 0x20, 0x40, 0x20, 0x1F}},
	{Rune: 'W', Width: 7, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x3F, 0x40, 0x40, 0x3C, 0x40, 0x40, 0x3F}},
	{Rune: 'X', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x63, 0x14, 0x08, 0x14, 0x63}},
	{Rune: 'Y', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x03, 0x04, 0x78, 0x04, 0x03}},
	{Rune: 'Z', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x61, 0x51, 0x49, 0x45, 0x43}},
	{Rune: '[', Width: 3, Height: 7, XOffset: 3, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x41, 0x41}},
	{Rune: '\\', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x03, 0x1C, 0x60}},
	{Rune: ']', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x41, 0x41, 0x7F}},
	{Rune: '^', Width: 5, Height: 3, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x04, 0x02, 0x01, 0x02, 0x04}},
	{Rune: '_', Width: 5, Height: 1, XOffset: 0, YOffset: 7, XAdvance: 5, Columns: []byte{0x01, 0x01, 0x01, 0x01, 0x01}},
	{Rune: '`', Width: 2, Height: 2, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x01, 0x02}},
	{Rune: 'a', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x08, 0x15, 0x15, 0x15, 0x1E}},
	{Rune: 'b', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x44, 0x44, 0x44, 0x38}},
	{Rune: 'c', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x0E, 0x11, 0x11, 0x11, 0x0A}},
	{Rune: 'd', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x44, 0x44, 0x44, 0x7F}},
	{Rune: 'e', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x0E, 0x15, 0x15, 0x15, 0x06}},
	{Rune: 'f', Width: 4, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 6, Columns: []byte{0x04, 0x7E, 0x05, 0x05}},
	{Rune: 'g', Width: 5, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x06, 0x29, 0x29, 0x29, 0x1F}},
	{Rune: 'h', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x04, 0x04, 0x04, 0x78}},
	{Rune: 'i', Width: 1, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x7D}},
	{Rune: 'j', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x40, 0x80, 0x80, 0x80, 0x7D}},
	{Rune: 'k', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x10, 0x18, 0x24, 0x40}},
	{Rune: 'l', Width: 2, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x3F, 0x40}},
	{Rune: 'm', Width: 7, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 9, Columns: []byte{0x1F, 0x01, 0x01, 0x06, 0x01, 0x01, 0x1E}},
	{Rune: 'n', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x1F, 0x01, 0x01, 0x01, 0x1E}},
	{Rune: 'o', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x0E, 0x11, 0x11, 0x11, 0x0E}},
	{Rune: 'p', Width: 5, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x3F, 0x09, 0x09, 0x09, 0x06}},
	{Rune: 'q', Width: 5, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x06, 0x09, 0x09, 0x09, 0x3F}},
	{Rune: 'r', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x1F, 0x04, 0x02, 0x01, 0x01}},
	{Rune: 's', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x12, 0x15, 0x15, 0x15, 0x08}},
	{Rune: 't', Width: 4, Height: 6, XOffset: 1, YOffset: 1, XAdvance: 6, Columns: []byte{0x02, 0x1F, 0x22, 0x22}},
	{Rune: 'u', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x0F, 0x10, 0x10, 0x10, 0x0F}},
	{Rune: 'v', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x07, 0x08, 0x10, 0x08, 0x07}},
	{Rune: 'w', Width: 7, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 9, Columns: []byte{0x0F, 0x10, 0x10, 0x0C, 0x10, 0x10, 0x0F}},
	{Rune: 'x', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x11, 0x0A, 0x04, 0x0A, 0x11}},
	{Rune: 'y', Width: 5, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x07, 0x28, 0x28, 0x28, 0x1F}},
	{Rune: 'z', Width: 5, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x11, 0x19, 0x15, 0x13, 0x11}},
	{Rune: '{', Width: 4, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x08, 0x36, 0x41, 0x41}},
	{Rune: '|', Width: 1, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x7F}},
	{Rune: '}', Width: 4, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x41, 0x41, 0x36, 0x08}},
	{Rune: '~', Width: 6, Height: 2, XOffset: 1, YOffset: 0, XAdvance: 8, Columns: []byte{0x02, 0x01, 0x01, 0x02, 0x02, 0x01}},
	{Rune: '\u00a0', Width: 3, Height: 1, XOffset: -1, YOffset: 7, XAdvance: 4, Columns: []byte{0x00, 0x00, 0x00}},
	{Rune: '¡', Width: 1, Height: 7, XOffset: 2, YOffset: 1, XAdvance: 5, Columns: []byte{0x7D}},
	{Rune: '¢', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x1C, 0x22, 0x7F, 0x22, 0x14}},
	{Rune: '£', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 8, Columns: []byte{0x48, 0x7E, 0x49, 0x49, 0x41, 0x22}},
	{Rune: '¥', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x2B, 0x2C, 0x78, 0x2C, 0x2B}},
	{Rune: '¦', Width: 1, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x77}},
	{Rune: '¨', Width: 3, Height: 1, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x01, 0x00, 0x01}},
	{Rune: '©', Width: 7, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x7E, 0x81, 0x99, 0xA5, 0xA5, 0x81, 0x7E}},
	{Rune: '«', Width: 6, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 8, Columns: []byte{0x04, 0x0A, 0x11, 0x04, 0x0A, 0x11}},
	{Rune: '¬', Width: 5, Height: 3, XOffset: 1, YOffset: 3, XAdvance: 7, Columns: []byte{0x01, 0x01, 0x01, 0x01, 0x07}},
	{Rune: '®', Width: 7, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x7E, 0x81, 0xBD, 0x95, 0xA9, 0x81, 0x7E}},
	{Rune: '°', Width: 4, Height: 4, XOffset: 1, YOffset: 0, XAdvance: 6, Columns: []byte{0x06, 0x09, 0x09, 0x06}},
	{Rune: '±', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x44, 0x44, 0x5F, 0x44, 0x44}},
	{Rune: '´', Width: 2, Height: 2, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x02, 0x01}},
	{Rune: 'µ', Width: 5, Height: 6, XOffset: 1, YOffset: 2, XAdvance: 7, Columns: []byte{0x3F, 0x08, 0x08, 0x08, 0x07}},
	{Rune: '¶', Width: 7, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x06, 0x0F, 0x0F, 0x7F, 0x01, 0x01, 0x7F}},
	{Rune: '·', Width: 1, Height: 1, XOffset: 2, YOffset: 3, XAdvance: 5, Columns: []byte{0x01}},
	{Rune: '¸', Width: 3, Height: 3, XOffset: 1, YOffset: 5, XAdvance: 5, Columns: []byte{0x04, 0x05, 0x02}},
	{Rune: '»', Width: 6, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 8, Columns: []byte{0x11, 0x0A, 0x04, 0x11, 0x0A, 0x04}},
	{Rune: '¿', Width: 5, Height: 7, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x30, 0x48, 0x45, 0x40, 0x20}},
	{Rune: 'À', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x78, 0x25, 0x26, 0x24, 0x78}},
	{Rune: 'Á', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x78, 0x24, 0x26, 0x25, 0x78}},
	{Rune: 'Â', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x78, 0x26, 0x25, 0x26, 0x78}},
	{Rune: 'Ã', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7A, 0x25, 0x25, 0x26, 0x7A, 0x01}},
	{Rune: 'Ä', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x78, 0x25, 0x24, 0x25, 0x78}},
	{Rune: 'Å', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7A, 0x25, 0x25, 0x25, 0x7A}},
	{Rune: 'Æ', Width: 9, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 11, Columns: []byte{0x7E, 0x11, 0x11, 0x11, 0x7F, 0x49, 0x49, 0x41, 0x41}},
	{Rune: 'Ç', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x1E, 0xA1, 0xA1, 0x61, 0x12}},
	{Rune: 'È', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x55, 0x56, 0x44, 0x44}},
	{Rune: 'É', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x54, 0x56, 0x45, 0x44}},
	{Rune: 'Ê', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x56, 0x55, 0x46, 0x44}},
	{Rune: 'Ë', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x55, 0x54, 0x45, 0x44}},
	{Rune: 'Ì', Width: 2, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x01, 0x7A}},
	{Rune: 'Í', Width: 2, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x7A, 0x01}},
	{Rune: 'Î', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x02, 0x79, 0x02}},
	{Rune: 'Ï', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x01, 0x7C, 0x01}},
	{Rune: 'Ð', Width: 6, Height: 7, XOffset: 0, YOffset: 0, XAdvance: 7, Columns: []byte{0x08, 0x7F, 0x49, 0x49, 0x41, 0x3E}},
	{Rune: 'Ñ', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7E, 0x09, 0x11, 0x22, 0x7E, 0x01}},
	{Rune: 'Ò', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x46, 0x44, 0x38}},
	{Rune: 'Ó', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x44, 0x46, 0x45, 0x38}},
	{Rune: 'Ô', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x46, 0x45, 0x46, 0x38}},
	{Rune: 'Õ', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3A, 0x45, 0x45, 0x46, 0x3A, 0x01}},
	{Rune: 'Ö', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x44, 0x45, 0x38}},
	{Rune: '×', Width: 5, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x11, 0x0A, 0x04, 0x0A, 0x11}},
	{Rune: 'Ø', Width: 7, Height: 7, XOffset: 0, YOffset: 0, XAdvance: 7, Columns: []byte{0x40, 0x3E, 0x51, 0x49, 0x45, 0x3E, 0x01}},
	{Rune: 'Ù', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x41, 0x42, 0x40, 0x3C}},
	{Rune: 'Ú', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x40, 0x42, 0x41, 0x3C}},
	{Rune: 'Û', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x42, 0x41, 0x42, 0x38}},
	{Rune: 'Ü', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x41, 0x40, 0x41, 0x3C}},
	{Rune: 'Ý', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x0C, 0x10, 0x62, 0x11, 0x0C}},
	{Rune: 'Þ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7F, 0x12, 0x12, 0x12, 0x0C}},
	{Rune: 'ß', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7E, 0x01, 0x49, 0x49, 0x36}},
	{Rune: 'à', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x20, 0x55, 0x56, 0x54, 0x78}},
	{Rune: 'á', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x20, 0x54, 0x56, 0x55, 0x78}},
	{Rune: 'â', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x20, 0x56, 0x55, 0x56, 0x78}},
	{Rune: 'ã', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x22, 0x55, 0x55, 0x56, 0x7A, 0x01}},
	{Rune: 'ä', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x20, 0x55, 0x54, 0x55, 0x78}},
	{Rune: 'å', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x22, 0x55, 0x55, 0x55, 0x7A}},
	{Rune: 'æ', Width: 9, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 11, Columns: []byte{0x08, 0x15, 0x15, 0x15, 0x0E, 0x15, 0x15, 0x15, 0x06}},
	{Rune: 'ç', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x0E, 0x91, 0xB1, 0x51, 0x0A}},
	{Rune: 'è', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x55, 0x56, 0x54, 0x18}},
	{Rune: 'é', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x54, 0x56, 0x55, 0x18}},
	{Rune: 'ê', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x56, 0x55, 0x56, 0x18}},
	{Rune: 'ë', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x55, 0x54, 0x55, 0x18}},
	{Rune: 'ì', Width: 2, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x01, 0x7A}},
	{Rune: 'í', Width: 2, Height: 7, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x7A, 0x01}},
	{Rune: 'î', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x02, 0x79, 0x02}},
	{Rune: 'ï', Width: 3, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x01, 0x7C, 0x01}},
	{Rune: 'ð', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x30, 0x48, 0x4A, 0x4A, 0x7F, 0x02}},
	{Rune: 'ñ', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7E, 0x05, 0x05, 0x06, 0x7A, 0x01}},
	{Rune: 'ò', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x46, 0x44, 0x38}},
	{Rune: 'ó', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x44, 0x46, 0x45, 0x38}},
	{Rune: 'ô', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x46, 0x45, 0x46, 0x38}},
	{Rune: 'õ', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3A, 0x45, 0x45, 0x46, 0x3A, 0x01}},
	{Rune: 'ö', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x44, 0x45, 0x38}},
	{Rune: '÷', Width: 5, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x04, 0x04, 0x15, 0x04, 0x04}},
	{Rune: 'ø', Width: 5, Height: 7, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x5C, 0x32, 0x2A, 0x26, 0x1D}},
	{Rune: 'ù', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x41, 0x42, 0x40, 0x3C}},
	{Rune: 'ú', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x40, 0x42, 0x41, 0x3C}},
	{Rune: 'û', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x42, 0x41, 0x42, 0x38}},
	{Rune: 'ü', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x3C, 0x41, 0x40, 0x41, 0x3C}},
	{Rune: 'ý', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x1C, 0xA0, 0xA2, 0xA1, 0x7C}},
	{Rune: 'þ', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0xFF, 0x24, 0x24, 0x24, 0x18}},
	{Rune: 'ÿ', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x1C, 0xA1, 0xA0, 0xA1, 0x7C}},
	{Rune: 'Ĉ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x46, 0x45, 0x46, 0x28}},
	{Rune: 'ĉ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x46, 0x45, 0x46, 0x28}},
	{Rune: 'Č', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x46, 0x45, 0x28}},
	{Rune: 'č', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x45, 0x46, 0x45, 0x28}},
	{Rune: 'Ď', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x45, 0x46, 0x45, 0x38}},
	{Rune: 'ď', Width: 9, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 12, Columns: []byte{0x38, 0x44, 0x44, 0x44, 0x7F, 0x00, 0x00, 0x04, 0x03}},
	{Rune: 'Ě', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x55, 0x56, 0x45, 0x44}},
	{Rune: 'ě', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x55, 0x56, 0x55, 0x18}},
	{Rune: 'Ĝ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x46, 0x45, 0x56, 0x74}},
	{Rune: 'ĝ', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x18, 0xA6, 0xA5, 0xA6, 0x7C}},
	{Rune: 'Ĥ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x78, 0x22, 0x21, 0x22, 0x78}},
	{Rune: 'ĥ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x08, 0x0A, 0x09, 0x72}},
	{Rune: 'ı', Width: 1, Height: 5, XOffset: 2, YOffset: 2, XAdvance: 5, Columns: []byte{0x1F}},
	{Rune: 'Ĵ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x22, 0x41, 0x42, 0x40, 0x3C}},
	{Rune: 'ĵ', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x42, 0x81, 0x82, 0x80, 0x7C}},
	{Rune: 'Ň', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x09, 0x12, 0x21, 0x7C}},
	{Rune: 'ň', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x05, 0x06, 0x05, 0x78}},
	{Rune: 'Œ', Width: 9, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 11, Columns: []byte{0x3E, 0x41, 0x41, 0x41, 0x7F, 0x49, 0x49, 0x41, 0x41}},
	{Rune: 'œ', Width: 9, Height: 5, XOffset: 1, YOffset: 2, XAdvance: 11, Columns: []byte{0x0E, 0x11, 0x11, 0x11, 0x0E, 0x15, 0x15, 0x15, 0x06}},
	{Rune: 'Ř', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x25, 0x26, 0x25, 0x58}},
	{Rune: 'ř', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x7C, 0x11, 0x0A, 0x05, 0x04}},
	{Rune: 'Ŝ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x48, 0x56, 0x55, 0x56, 0x20}},
	{Rune: 'ŝ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x48, 0x56, 0x55, 0x56, 0x20}},
	{Rune: 'Š', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x48, 0x55, 0x56, 0x55, 0x20}},
	{Rune: 'š', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x48, 0x55, 0x56, 0x55, 0x20}},
	{Rune: 'Ť', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x04, 0x05, 0x7E, 0x05, 0x04}},
	{Rune: 'ť', Width: 8, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 11, Columns: []byte{0x04, 0x3E, 0x44, 0x44, 0x00, 0x00, 0x04, 0x03}},
	{Rune: 'Ŭ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x39, 0x42, 0x42, 0x42, 0x39}},
	{Rune: 'ŭ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x39, 0x42, 0x42, 0x42, 0x39}},
	{Rune: 'Ů', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x42, 0x45, 0x42, 0x38}},
	{Rune: 'ů', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x38, 0x42, 0x45, 0x42, 0x38}},
	{Rune: 'Ÿ', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x0C, 0x11, 0x60, 0x11, 0x0C}},
	{Rune: 'Ž', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x44, 0x65, 0x56, 0x4D, 0x44}},
	{Rune: 'ž', Width: 5, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x44, 0x65, 0x56, 0x4D, 0x44}},
	{Rune: 'ˆ', Width: 3, Height: 2, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x02, 0x01, 0x02}},
	{Rune: 'ˇ', Width: 3, Height: 2, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x01, 0x02, 0x01}},
	{Rune: '˘', Width: 5, Height: 2, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x01, 0x02, 0x02, 0x02, 0x01}},
	{Rune: '˚', Width: 3, Height: 3, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x02, 0x05, 0x02}},
	{Rune: '˜', Width: 6, Height: 2, XOffset: 1, YOffset: 0, XAdvance: 8, Columns: []byte{0x02, 0x01, 0x01, 0x02, 0x02, 0x01}},
	{Rune: '–', Width: 4, Height: 1, XOffset: 1, YOffset: 3, XAdvance: 6, Columns: []byte{0x01, 0x01, 0x01, 0x01}},
	{Rune: '—', Width: 6, Height: 1, XOffset: 1, YOffset: 3, XAdvance: 8, Columns: []byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01}},
	{Rune: '‘', Width: 2, Height: 3, XOffset: 2, YOffset: 0, XAdvance: 5, Columns: []byte{0x06, 0x01}},
	{Rune: '’', Width: 2, Height: 3, XOffset: 1, YOffset: 0, XAdvance: 5, Columns: []byte{0x04, 0x03}},
	{Rune: '‚', Width: 2, Height: 3, XOffset: 1, YOffset: 5, XAdvance: 5, Columns: []byte{0x04, 0x03}},
	{Rune: '“', Width: 4, Height: 3, XOffset: 2, YOffset: 0, XAdvance: 7, Columns: []byte{0x06, 0x01, 0x06, 0x01}},
	{Rune: '”', Width: 4, Height: 3, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x04, 0x03, 0x04, 0x03}},
	{Rune: '„', Width: 4, Height: 3, XOffset: 1, YOffset: 5, XAdvance: 7, Columns: []byte{0x04, 0x03, 0x04, 0x03}},
	{Rune: '†', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x04, 0x04, 0xFF, 0x04, 0x04}},
	{Rune: '‡', Width: 5, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 7, Columns: []byte{0x24, 0x24, 0xFF, 0x24, 0x24}},
	{Rune: '•', Width: 2, Height: 2, XOffset: 2, YOffset: 3, XAdvance: 6, Columns: []byte{0x03, 0x03}},
	{Rune: '…', Width: 7, Height: 1, XOffset: 1, YOffset: 6, XAdvance: 9, Columns: []byte{0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x01}},
	{Rune: '‰', Width: 11, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 13, Columns: []byte{0x06, 0x29, 0x16, 0x08, 0x34, 0x4A, 0x30, 0x00, 0x30, 0x48, 0x30}},
	{Rune: '‹', Width: 3, Height: 5, XOffset: 3, YOffset: 1, XAdvance: 7, Columns: []byte{0x04, 0x0A, 0x11}},
	{Rune: '›', Width: 3, Height: 5, XOffset: 1, YOffset: 1, XAdvance: 7, Columns: []byte{0x11, 0x0A, 0x04}},
	{Rune: '€', Width: 6, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 8, Columns: []byte{0x14, 0x3E, 0x55, 0x45, 0x41, 0x22}},
	{Rune: '₱', Width: 7, Height: 7, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x04, 0x7F, 0x15, 0x15, 0x15, 0x0E, 0x04}},
	{Rune: '₷', Width: 8, Height: 8, XOffset: 0, YOffset: 0, XAdvance: 9, Columns: []byte{0x10, 0xE0, 0x50, 0xE6, 0x59, 0xE9, 0x49, 0x32}},
	{Rune: '℗', Width: 7, Height: 8, XOffset: 1, YOffset: 0, XAdvance: 9, Columns: []byte{0x7E, 0x81, 0xBD, 0x95, 0x89, 0x81, 0x7E}},
	{Rune: '™', Width: 9, Height: 4, XOffset: 1, YOffset: 0, XAdvance: 11, Columns: []byte{0x01, 0x0F, 0x01, 0x00, 0x0F, 0x02, 0x04, 0x02, 0x0F}},
}
