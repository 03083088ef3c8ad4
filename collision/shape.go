package collision

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Kind tags the variant held by a Shape.
type Kind uint8

const (
	KindSingular Kind = iota
	KindCompound
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindSingular:
		return "singular"
	case KindCompound:
		return "compound"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape is "some kind of hit region": a single hitbox, a compound frame, or
// one keyframe of a frame string. It lets a sword swing be tested against an
// enemy hurtbox without either side knowing how the other is represented.
//
// The zero Shape is a singular empty hitbox and never collides.
type Shape struct {
	kind   Kind
	hitbox Hitbox
	frame  Frame
	str    FrameString
	index  int
}

// Singular wraps a single hitbox.
func Singular(h Hitbox) Shape {
	return Shape{kind: KindSingular, hitbox: h}
}

// Compound wraps a frame.
func Compound(f Frame) Shape {
	return Shape{kind: KindCompound, frame: f}
}

// StringFrame selects keyframe index of s. The index is checked here so a
// desynchronised caller fails where the bad index is produced.
func StringFrame(s FrameString, index int) Shape {
	s.Frame(index)
	return Shape{kind: KindString, str: s, index: index}
}

func (s Shape) Kind() Kind { return s.kind }

// Index returns the selected keyframe of a string shape, or 0.
func (s Shape) Index() int { return s.index }

// Colliding dispatches on both variants and reports whether the shapes
// overlap with s translated by offset and other by otherOffset.
func (s Shape) Colliding(other Shape, offset, otherOffset cp.Vector) bool {
	switch s.kind {
	case KindSingular:
		return s.hitbox.Colliding(other, offset, otherOffset)
	case KindCompound:
		return s.frame.Colliding(other, offset, otherOffset)
	case KindString:
		return s.str.Frame(s.index).Colliding(other, offset, otherOffset)
	}
	panic(badKind(s.kind))
}

// Frame resolves the shape to a compound frame. A singular hitbox becomes a
// one-member frame facing Right.
func (s Shape) Frame() Frame {
	switch s.kind {
	case KindSingular:
		return NewFrame([]Hitbox{s.hitbox}, Right)
	case KindCompound:
		return s.frame
	case KindString:
		return s.str.Frame(s.index)
	}
	panic(badKind(s.kind))
}

func badKind(k Kind) string {
	return fmt.Sprintf("collision: unknown shape kind %d", uint8(k))
}
