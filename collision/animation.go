package collision

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/tanema/gween/ease"
)

var (
	ErrNoIntervals           = errors.New("collision: animation needs at least one interval")
	ErrIntervalsExceedFrames = errors.New("collision: more intervals than keyframes")
	ErrNegativeInterval      = errors.New("collision: negative keyframe interval")
)

// Animation drives a frame string over a per-keyframe hold schedule and keeps
// a shape interpolated ("twined") between the current keyframe and the next.
//
// The keyframe data is shared and never written; Clone gives each entity its
// own progress over the same table.
type Animation struct {
	keyframes Directional
	intervals []int

	lerped    Frame
	remaining int
	current   int
	loops     bool
	active    bool
	twine     float64
	direction Direction
	ease      ease.TweenFunc
}

// NewAnimation derives the four facings of keyframes and schedules them with
// intervals, the number of ticks each keyframe is held. The animation starts
// active, looping, undamped and facing Right.
func NewAnimation(keyframes FrameString, intervals []int) (*Animation, error) {
	return NewDirectionalAnimation(NewDirectional(keyframes), intervals)
}

// NewDirectionalAnimation is NewAnimation for keyframes that are already
// rotated into all four facings.
func NewDirectionalAnimation(keyframes Directional, intervals []int) (*Animation, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if len(intervals) > keyframes.Len() {
		return nil, ErrIntervalsExceedFrames
	}
	for _, n := range intervals {
		if n < 0 {
			return nil, ErrNegativeInterval
		}
	}
	owned := make([]int, len(intervals))
	copy(owned, intervals)

	a := &Animation{
		keyframes: keyframes,
		intervals: owned,
		remaining: owned[0],
		loops:     true,
		active:    true,
		twine:     1,
		direction: Right,
	}
	a.lerped = a.interpolate()
	return a, nil
}

// Clone returns an animation with the same keyframe data and settings and its
// own copy of the progress counters.
func (a *Animation) Clone() *Animation {
	c := *a
	return &c
}

// Update advances the animation by one tick and returns true when the last
// keyframe finished, either restarting a looping animation or deactivating a
// one-shot one. Inactive animations are left untouched. The tick that advances
// to a new keyframe counts as that keyframe's first tick, so its
// interpolation factor starts at 1/(hold+1) rather than 0.
func (a *Animation) Update() bool {
	if !a.active {
		return false
	}

	finished := false
	switch {
	case a.remaining > 0:
		a.remaining--
	case a.current >= len(a.intervals)-1:
		if a.loops {
			a.current = 0
			a.remaining = a.intervals[0]
		} else {
			a.active = false
		}
		finished = true
	default:
		// The advancing tick is the first tick of the new keyframe.
		a.current++
		a.remaining = a.intervals[a.current]
		if a.remaining > 0 {
			a.remaining--
		}
	}

	a.lerped = a.interpolate()
	return finished
}

// Reset rewinds to the first keyframe and reactivates the animation.
func (a *Animation) Reset() {
	a.active = true
	a.current = 0
	a.remaining = a.intervals[0]
	a.lerped = a.interpolate()
}

// ResetCurrentInterval restarts the hold of the current keyframe without
// moving to another keyframe.
func (a *Animation) ResetCurrentInterval() {
	a.remaining = a.intervals[a.current]
	a.lerped = a.interpolate()
}

// Progress returns the interpolation factor between the current and next
// keyframe, before easing.
func (a *Animation) Progress() float64 {
	hold := a.intervals[a.current]
	return float64(hold-a.remaining) / float64(hold+1)
}

func (a *Animation) interpolate() Frame {
	t := a.Progress()
	if a.ease != nil {
		t = float64(a.ease(float32(t), 0, 1, 1))
	}
	current := a.CurrentFrame(a.direction)
	next, ok := a.NextFrame(a.direction)
	if !ok {
		return current
	}
	return current.TwineLerp(next, t, a.twine)
}

// CurrentFrame returns the current keyframe facing d.
func (a *Animation) CurrentFrame(d Direction) Frame {
	return a.keyframes[d].Frame(a.current)
}

// NextFrame returns the keyframe after the current one facing d, if any.
func (a *Animation) NextFrame(d Direction) (Frame, bool) {
	s := a.keyframes[d]
	if a.current+1 >= s.Len() {
		return Frame{}, false
	}
	return s.Frame(a.current + 1), true
}

// Lerped returns the interpolated frame computed by the last update.
func (a *Animation) Lerped() Frame { return a.lerped }

// Shape wraps the interpolated frame for collision queries.
func (a *Animation) Shape() Shape { return Compound(a.lerped) }

// Colliding tests the interpolated frame against other.
func (a *Animation) Colliding(other Shape, offset, otherOffset cp.Vector) bool {
	return a.lerped.Colliding(other, offset, otherOffset)
}

func (a *Animation) Keyframes() Directional { return a.keyframes }

// Intervals returns the hold schedule. The slice must not be modified.
func (a *Animation) Intervals() []int { return a.intervals }

func (a *Animation) CurrentInterval() int { return a.current }

// Remaining returns the ticks left in the current keyframe's hold.
func (a *Animation) Remaining() int { return a.remaining }

func (a *Animation) Active() bool { return a.active }

func (a *Animation) SetActive(v bool) { a.active = v }

func (a *Animation) Loops() bool { return a.loops }

func (a *Animation) SetLoops(v bool) { a.loops = v }

func (a *Animation) Twine() float64 { return a.twine }

// SetTwine sets the positional damping and re-derives the interpolated frame.
func (a *Animation) SetTwine(v float64) {
	a.twine = v
	a.lerped = a.interpolate()
}

func (a *Animation) Direction() Direction { return a.direction }

// SetDirection changes the facing and re-derives the interpolated frame, so
// collision queries see the new facing immediately.
func (a *Animation) SetDirection(d Direction) {
	if !d.Valid() || d == a.direction {
		return
	}
	a.direction = d
	a.lerped = a.interpolate()
}

// SetEase sets the curve applied to the interpolation factor. nil means
// linear.
func (a *Animation) SetEase(fn ease.TweenFunc) {
	a.ease = fn
	a.lerped = a.interpolate()
}
