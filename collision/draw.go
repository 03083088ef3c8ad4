package collision

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/common"
	"golang.org/x/image/colornames"
)

// DrawShape is what a renderer needs to outline a shape: local rectangles, the
// world offset they are drawn at, and a color.
type DrawShape struct {
	Rects  []common.Rect
	Offset cp.Vector
	Color  color.Color
}

// World returns the rectangles translated by the shape's offset.
func (d DrawShape) World() []common.Rect {
	out := make([]common.Rect, len(d.Rects))
	for i, r := range d.Rects {
		out[i] = r.Offset(d.Offset)
	}
	return out
}

func orWhite(clr color.Color) color.Color {
	if clr == nil {
		return colornames.White
	}
	return clr
}

// DrawShape outlines a single hitbox. A nil color draws white.
func (h Hitbox) DrawShape(offset cp.Vector, clr color.Color) DrawShape {
	return DrawShape{Rects: []common.Rect{h.Rect}, Offset: offset, Color: orWhite(clr)}
}

// DrawShape outlines every member of the frame.
func (f Frame) DrawShape(offset cp.Vector, clr color.Color) DrawShape {
	rects := make([]common.Rect, len(f.hitboxes))
	for i, h := range f.hitboxes {
		rects[i] = h.Rect
	}
	return DrawShape{Rects: rects, Offset: offset, Color: orWhite(clr)}
}

// DrawShape outlines keyframe index. Unlike Frame, an index out of range is
// not fatal here: there is simply nothing to draw.
func (s FrameString) DrawShape(index int, offset cp.Vector, clr color.Color) (DrawShape, bool) {
	if index < 0 || index >= len(s.frames) {
		return DrawShape{}, false
	}
	return s.frames[index].DrawShape(offset, clr), true
}

// DrawShape outlines whichever variant s holds.
func (s Shape) DrawShape(offset cp.Vector, clr color.Color) DrawShape {
	if s.kind == KindSingular {
		return s.hitbox.DrawShape(offset, clr)
	}
	return s.Frame().DrawShape(offset, clr)
}

// DrawShape outlines the current interpolated frame, green by default.
func (a *Animation) DrawShape(offset cp.Vector, clr color.Color) DrawShape {
	if clr == nil {
		clr = colornames.Green
	}
	return a.lerped.DrawShape(offset, clr)
}
