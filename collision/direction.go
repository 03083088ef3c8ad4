package collision

import (
	"fmt"
	"math"
	"strings"

	"github.com/jakecoffman/cp"
)

// Direction is one of the four cardinal facings. The ordinal order matters:
// stepping from one direction to the next is one clockwise rotation of a
// shape's local space.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists every direction in ordinal order.
var Directions = [4]Direction{Right, Up, Left, Down}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Down
}

// Vector returns the unit vector for d in screen space (y grows downward).
func (d Direction) Vector() cp.Vector {
	switch d {
	case Up:
		return cp.Vector{X: 0, Y: -1}
	case Left:
		return cp.Vector{X: -1, Y: 0}
	case Down:
		return cp.Vector{X: 0, Y: 1}
	}
	return cp.Vector{X: 1, Y: 0}
}

// Angle returns the on-screen angle of d in degrees, counter-clockwise from
// Right.
func (d Direction) Angle() float64 {
	switch d {
	case Up:
		return 90
	case Left:
		return 180
	case Down:
		return -90
	}
	return 0
}

// RotationsTo returns how many clockwise steps turn a shape authored for d
// into one facing target. The result is always in [0, 3].
func (d Direction) RotationsTo(target Direction) int {
	return mod4(int(target) - int(d))
}

// DirectionFromVector picks the dominant axis of v. Horizontal wins ties and a
// zero vector yields fallback.
func DirectionFromVector(v cp.Vector, fallback Direction) Direction {
	ax, ay := math.Abs(v.X), math.Abs(v.Y)
	switch {
	case ax == 0 && ay == 0:
		return fallback
	case ax >= ay && v.X > 0:
		return Right
	case ax >= ay:
		return Left
	case v.Y > 0:
		return Down
	default:
		return Up
	}
}

// ParseDirection converts a direction name (case insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "":
		return Right, nil
	case "up":
		return Up, nil
	case "left":
		return Left, nil
	case "down":
		return Down, nil
	}
	return Right, fmt.Errorf("collision: unknown direction %q", s)
}

func mod4(n int) int {
	n %= 4
	if n < 0 {
		n += 4
	}
	return n
}
