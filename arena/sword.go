package arena

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
)

// Sword swings through a frame string one keyframe per tick. The facing is
// captured when the swing starts.
type Sword struct {
	swing     collision.Directional
	color     color.Color
	active    bool
	direction collision.Direction
	frame     int
}

func NewSword(swing collision.Directional, clr color.Color) *Sword {
	return &Sword{swing: swing, color: clr}
}

func (s *Sword) Active() bool { return s.active }

func (s *Sword) Frame() int { return s.frame }

func (s *Sword) Direction() collision.Direction { return s.direction }

func (s *Sword) Len() int { return s.swing.Len() }

// Start begins a swing facing d. Ignored while a swing is running.
func (s *Sword) Start(d collision.Direction) bool {
	if s.active || s.swing.Len() == 0 {
		return false
	}
	s.active = true
	s.direction = d
	s.frame = 0
	return true
}

// Update advances a running swing by one keyframe. The swing ends after its
// last keyframe has been shown for a tick.
func (s *Sword) Update() {
	if !s.active {
		return
	}
	s.frame++
	if s.frame >= s.swing.Len() {
		s.active = false
		s.frame = 0
	}
}

// Shape is the keyframe live this tick.
func (s *Sword) Shape() (collision.Shape, bool) {
	if !s.active {
		return collision.Shape{}, false
	}
	return collision.StringFrame(s.swing.For(s.direction), s.frame), true
}

func (s *Sword) DrawShape(offset cp.Vector) (collision.DrawShape, bool) {
	if !s.active {
		return collision.DrawShape{}, false
	}
	return s.swing.For(s.direction).DrawShape(s.frame, offset, s.color)
}

// Replace swaps in new keyframes, cancelling any running swing.
func (s *Sword) Replace(swing collision.Directional, clr color.Color) {
	s.swing = swing
	s.color = clr
	s.active = false
	s.frame = 0
}
