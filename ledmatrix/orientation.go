package ledmatrix

import "fmt"

// Orientation is the clockwise rotation of text on the panel.
type Orientation uint8

const (
	Rotate0 Orientation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (o Orientation) String() string {
	switch o {
	case Rotate0:
		return "0"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Degrees returns the rotation angle.
func (o Orientation) Degrees() int { return int(o%4) * 90 }

// Size returns the physical panel size for a view of w x h LEDs.
func (o Orientation) Size(w, h int) (pw, ph int) {
	if o%2 == 1 {
		return h, w
	}
	return w, h
}

// ToView maps physical LED (px, py) to the view coordinate shown there,
// for a view w x h LEDs.
func (o Orientation) ToView(px, py, w, h int) (x, y int) {
	switch o % 4 {
	case Rotate90:
		return py, h - 1 - px
	case Rotate180:
		return w - 1 - px, h - 1 - py
	case Rotate270:
		return w - 1 - py, px
	default:
		return px, py
	}
}
