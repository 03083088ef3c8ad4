package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/common"
)

// Hitbox is a single axis-aligned hit region in local space. Shapes are
// authored facing Right and rotated into the other directions on demand.
type Hitbox struct {
	Rect common.Rect
}

// NewHitbox creates a hitbox from its min corner and size.
func NewHitbox(x, y, w, h float64) Hitbox {
	return Hitbox{Rect: common.NewRect(x, y, w, h)}
}

// PointSize creates a size x size square centered at point.
func PointSize(point cp.Vector, size float64) Hitbox {
	return Hitbox{Rect: common.Rect{
		X:      point.X - size/2,
		Y:      point.Y - size/2,
		Width:  size,
		Height: size,
	}}
}

// RotateClockwise performs a single 90 degree step. Each corner is mapped
// (x, y) -> (y, -x) and the result is re-bounded, so the hitbox stays axis
// aligned and a wide box becomes a tall one.
func (h Hitbox) RotateClockwise() Hitbox {
	corners := h.Rect.Corners()
	for i, c := range corners {
		corners[i] = cp.Vector{X: c.Y, Y: -c.X}
	}
	return Hitbox{Rect: common.RectFromPoints(corners)}
}

// Rotate applies steps clockwise rotations. Negative counts rotate the other
// way; four steps are the identity.
func (h Hitbox) Rotate(steps int) Hitbox {
	for n := mod4(steps); n > 0; n-- {
		h = h.RotateClockwise()
	}
	return h
}

// AsDirection turns a hitbox authored for from so that it faces to.
func (h Hitbox) AsDirection(from, to Direction) Hitbox {
	return h.Rotate(from.RotationsTo(to))
}

// Lerp interpolates position and size componentwise.
func (h Hitbox) Lerp(other Hitbox, t float64) Hitbox {
	return Hitbox{Rect: h.Rect.Lerp(other.Rect, t)}
}

// TwineLerp interpolates toward target like Lerp, but scales the positional
// displacement by twine. Size always interpolates fully, so twine 0 resizes
// in place.
func (h Hitbox) TwineLerp(target Hitbox, t, twine float64) Hitbox {
	tx := common.Lerp(h.Rect.X, target.Rect.X, t)
	ty := common.Lerp(h.Rect.Y, target.Rect.Y, t)
	if twine != 1 {
		tx = h.Rect.X + (tx-h.Rect.X)*twine
		ty = h.Rect.Y + (ty-h.Rect.Y)*twine
	}
	return Hitbox{Rect: common.Rect{
		X:      tx,
		Y:      ty,
		Width:  common.Lerp(h.Rect.Width, target.Rect.Width, t),
		Height: common.Lerp(h.Rect.Height, target.Rect.Height, t),
	}}
}

// Colliding tests h against any kind of shape.
func (h Hitbox) Colliding(other Shape, offset, otherOffset cp.Vector) bool {
	switch other.kind {
	case KindSingular:
		return h.CollidingSingle(other.hitbox, offset, otherOffset)
	case KindCompound:
		return h.CollidingFrame(other.frame, offset, otherOffset)
	case KindString:
		return h.CollidingFrame(other.str.Frame(other.index), offset, otherOffset)
	}
	panic(badKind(other.kind))
}

// CollidingSingle reports whether the two hitboxes overlap once translated by
// their offsets. Touching edges do not count.
func (h Hitbox) CollidingSingle(other Hitbox, offset, otherOffset cp.Vector) bool {
	return h.Rect.Offset(offset).Intersects(other.Rect.Offset(otherOffset))
}

// CollidingFrame reports whether h overlaps any member of frame.
func (h Hitbox) CollidingFrame(frame Frame, offset, otherOffset cp.Vector) bool {
	self := h.Rect.Offset(offset)
	if !self.Intersects(frame.bounds.Offset(otherOffset)) {
		return false
	}
	for _, m := range frame.hitboxes {
		if self.Intersects(m.Rect.Offset(otherOffset)) {
			return true
		}
	}
	return false
}
