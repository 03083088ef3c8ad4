package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
)

// Input is one tick of player intent. Axis components are usually -1, 0 or 1.
type Input struct {
	Axis   cp.Vector
	Attack bool
}

// Press builds an Input from held directions.
func Press(attack bool, held ...collision.Direction) Input {
	var in Input
	for _, d := range held {
		in.Axis = in.Axis.Add(d.Vector())
	}
	in.Attack = attack
	return in
}

// unit normalizes v, leaving the zero vector alone.
func unit(v cp.Vector) cp.Vector {
	if v.LengthSq() == 0 {
		return cp.Vector{}
	}
	return v.Normalize()
}
