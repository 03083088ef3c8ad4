package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/common"
)

// Frame is one instant of a compound shape: an ordered set of hitboxes
// authored for a direction, plus the union of their rectangles cached for
// early rejection. A Frame is immutable once built.
type Frame struct {
	hitboxes  []Hitbox
	direction Direction
	bounds    common.Rect
}

// NewFrame copies hitboxes into a new frame and computes its bounding box.
func NewFrame(hitboxes []Hitbox, direction Direction) Frame {
	owned := make([]Hitbox, len(hitboxes))
	copy(owned, hitboxes)
	return newFrame(owned, direction)
}

// newFrame takes ownership of hitboxes.
func newFrame(hitboxes []Hitbox, direction Direction) Frame {
	return Frame{
		hitboxes:  hitboxes,
		direction: direction,
		bounds:    BoundingBox(hitboxes),
	}
}

// BoundingBox returns the union of the hitboxes' rectangles, or a zero rect
// when there are none.
func BoundingBox(hitboxes []Hitbox) common.Rect {
	if len(hitboxes) == 0 {
		return common.Rect{}
	}
	bounds := hitboxes[0].Rect
	for _, h := range hitboxes[1:] {
		bounds = bounds.Union(h.Rect)
	}
	return bounds
}

// Hitboxes returns the frame's members. The slice is shared and must not be
// modified.
func (f Frame) Hitboxes() []Hitbox { return f.hitboxes }

func (f Frame) Direction() Direction { return f.direction }

func (f Frame) Bounds() common.Rect { return f.bounds }

func (f Frame) Len() int { return len(f.hitboxes) }

// AsDirection returns a copy of the frame with every member rotated from the
// frame's direction to d.
func (f Frame) AsDirection(d Direction) Frame {
	steps := f.direction.RotationsTo(d)
	rotated := make([]Hitbox, len(f.hitboxes))
	for i, h := range f.hitboxes {
		rotated[i] = h.Rotate(steps)
	}
	return newFrame(rotated, d)
}

// TwineLerp interpolates member i of f toward member i of target. Extra
// members in the longer frame are dropped.
func (f Frame) TwineLerp(target Frame, t, twine float64) Frame {
	n := min(len(f.hitboxes), len(target.hitboxes))
	out := make([]Hitbox, n)
	for i := 0; i < n; i++ {
		out[i] = f.hitboxes[i].TwineLerp(target.hitboxes[i], t, twine)
	}
	return newFrame(out, f.direction)
}

// Lerp is TwineLerp without damping.
func (f Frame) Lerp(target Frame, t float64) Frame {
	return f.TwineLerp(target, t, 1)
}

// Colliding tests f against any kind of shape.
func (f Frame) Colliding(other Shape, offset, otherOffset cp.Vector) bool {
	switch other.kind {
	case KindSingular:
		return f.CollidingSingle(other.hitbox, offset, otherOffset)
	case KindCompound:
		return f.CollidingFrame(other.frame, offset, otherOffset)
	case KindString:
		return f.CollidingFrame(other.str.Frame(other.index), offset, otherOffset)
	}
	panic(badKind(other.kind))
}

// CollidingSingle reports whether any member overlaps h.
func (f Frame) CollidingSingle(h Hitbox, offset, otherOffset cp.Vector) bool {
	return h.CollidingFrame(f, otherOffset, offset)
}

// CollidingFrame reports whether any member of f overlaps any member of
// other. The bounding boxes are compared first, so frames that are far apart
// cost a single rectangle test.
func (f Frame) CollidingFrame(other Frame, offset, otherOffset cp.Vector) bool {
	otherBounds := other.bounds.Offset(otherOffset)
	if !f.bounds.Offset(offset).Intersects(otherBounds) {
		return false
	}
	for _, h := range f.hitboxes {
		self := h.Rect.Offset(offset)
		if !self.Intersects(otherBounds) {
			continue
		}
		for _, o := range other.hitboxes {
			if self.Intersects(o.Rect.Offset(otherOffset)) {
				return true
			}
		}
	}
	return false
}
