package collision

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// FrameString is an ordered sequence of frames, one per keyframe, such as the
// frame data of an attack. The frames are shared read-only between every copy
// of the string, so a table built once at startup can back any number of
// entities.
type FrameString struct {
	frames []Frame
}

// NewFrameString builds a string from frames.
func NewFrameString(frames ...Frame) FrameString {
	owned := make([]Frame, len(frames))
	copy(owned, frames)
	return FrameString{frames: owned}
}

// FrameStringFromHitboxes builds one frame per keyframe, all authored for
// direction.
func FrameStringFromHitboxes(keyframes [][]Hitbox, direction Direction) FrameString {
	frames := make([]Frame, len(keyframes))
	for i, hitboxes := range keyframes {
		frames[i] = NewFrame(hitboxes, direction)
	}
	return FrameString{frames: frames}
}

// Len returns the number of keyframes.
func (s FrameString) Len() int { return len(s.frames) }

// Frame returns keyframe i. An index outside [0, Len()) means the caller's
// animation state is out of sync with the string and panics.
func (s FrameString) Frame(i int) Frame {
	if i < 0 || i >= len(s.frames) {
		panic(fmt.Sprintf("collision: frame index %d out of range [0,%d)", i, len(s.frames)))
	}
	return s.frames[i]
}

// ToDirection rotates every keyframe to face d.
func (s FrameString) ToDirection(d Direction) FrameString {
	frames := make([]Frame, len(s.frames))
	for i, f := range s.frames {
		frames[i] = f.AsDirection(d)
	}
	return FrameString{frames: frames}
}

// Colliding tests keyframe frame of s against other.
func (s FrameString) Colliding(frame int, other Shape, offset, otherOffset cp.Vector) bool {
	return StringFrame(s, frame).Colliding(other, offset, otherOffset)
}

// Directional holds the four rotations of one authored string, indexed by
// Direction. Every entry has the same length and entry i of each is the same
// logical keyframe.
type Directional [4]FrameString

// NewDirectional derives all four facings from s.
func NewDirectional(s FrameString) Directional {
	var out Directional
	for _, d := range Directions {
		out[d] = s.ToDirection(d)
	}
	return out
}

// For returns the string facing d.
func (ds *Directional) For(d Direction) FrameString {
	return ds[d]
}

// Len returns the keyframe count shared by all four strings.
func (ds *Directional) Len() int {
	return ds[Right].Len()
}
