package arena

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
	"golang.org/x/image/colornames"
)

// Decoration cycles through a frame string one keyframe per tick. It has no
// effect on play.
type Decoration struct {
	Position cp.Vector
	str      collision.FrameString
	color    color.Color
	index    int
}

func NewDecoration(str collision.FrameString, position cp.Vector, clr color.Color) *Decoration {
	if clr == nil {
		clr = colornames.Magenta
	}
	return &Decoration{Position: position, str: str, color: clr}
}

func (d *Decoration) Index() int { return d.index }

func (d *Decoration) Update() {
	if d.str.Len() == 0 {
		return
	}
	d.index = (d.index + 1) % d.str.Len()
}

func (d *Decoration) DrawShape() (collision.DrawShape, bool) {
	return d.str.DrawShape(d.index, d.Position, d.color)
}

// Replace swaps in new keyframes, keeping the index in range.
func (d *Decoration) Replace(str collision.FrameString, clr color.Color) {
	d.str = str
	if clr != nil {
		d.color = clr
	}
	if d.str.Len() == 0 || d.index >= d.str.Len() {
		d.index = 0
	}
}
