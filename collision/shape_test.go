package collision

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestShapeDispatch(t *testing.T) {
	single := PointSize(cp.Vector{}, 10)
	frame := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10), NewHitbox(40, 0, 10, 10)}, Right)
	str := NewFrameString(
		NewFrame([]Hitbox{NewHitbox(100, 100, 5, 5)}, Right),
		NewFrame([]Hitbox{NewHitbox(-2, -2, 4, 4)}, Right),
	)

	shapes := map[string]Shape{
		"singular": Singular(single),
		"compound": Compound(frame),
		"string0":  StringFrame(str, 0),
		"string1":  StringFrame(str, 1),
	}

	offsets := []cp.Vector{{}, {X: 5, Y: 5}, {X: 45, Y: 2}, {X: 100, Y: 100}, {X: -200}}
	for an, a := range shapes {
		for bn, b := range shapes {
			for _, oa := range offsets {
				for _, ob := range offsets {
					want := bruteForce(a.Frame(), b.Frame(), oa, ob)
					if got := a.Colliding(b, oa, ob); got != want {
						t.Fatalf("%s@%v vs %s@%v: expected %v, got %v", an, oa, bn, ob, want, got)
					}
					if got := b.Colliding(a, ob, oa); got != want {
						t.Fatalf("%s@%v vs %s@%v (swapped): expected %v, got %v", bn, ob, an, oa, want, got)
					}
				}
			}
		}
	}
}

func TestShapeKinds(t *testing.T) {
	str := NewFrameString(NewFrame([]Hitbox{NewHitbox(0, 0, 1, 1)}, Right))
	cases := []struct {
		shape Shape
		kind  Kind
	}{
		{Singular(Hitbox{}), KindSingular},
		{Compound(Frame{}), KindCompound},
		{StringFrame(str, 0), KindString},
		{Shape{}, KindSingular},
	}
	for _, c := range cases {
		if c.shape.Kind() != c.kind {
			t.Fatalf("expected %v, got %v", c.kind, c.shape.Kind())
		}
	}

	var zero Shape
	if zero.Colliding(Singular(NewHitbox(-100, -100, 200, 200)), cp.Vector{}, cp.Vector{}) {
		t.Fatalf("zero shape should never collide")
	}
}

func TestStringFrameOutOfRangePanics(t *testing.T) {
	str := NewFrameString(NewFrame([]Hitbox{NewHitbox(0, 0, 1, 1)}, Right))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out of range keyframe")
		}
	}()
	StringFrame(str, 1)
}

func TestFrameStringColliding(t *testing.T) {
	swing := FrameStringFromHitboxes([][]Hitbox{
		{PointSize(cp.Vector{X: 0, Y: 80}, 40)},
		{PointSize(cp.Vector{X: 80, Y: 0}, 40)},
	}, Right)
	target := Singular(PointSize(cp.Vector{}, 30))
	player := cp.Vector{X: 500, Y: 500}
	enemy := cp.Vector{X: 580, Y: 500}

	if swing.Colliding(0, target, player, enemy) {
		t.Fatalf("keyframe 0 swings below the player and should miss")
	}
	if !swing.Colliding(1, target, player, enemy) {
		t.Fatalf("keyframe 1 reaches right and should hit")
	}

	up := swing.ToDirection(Up)
	above := cp.Vector{X: 500, Y: 420}
	if !up.Colliding(1, target, player, above) {
		t.Fatalf("rotated swing should reach the enemy above")
	}
	if up.Colliding(1, target, player, enemy) {
		t.Fatalf("rotated swing should no longer reach right")
	}
}

func TestDrawShape(t *testing.T) {
	f := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10), NewHitbox(20, 0, 5, 5)}, Right)
	ds := Compound(f).DrawShape(cp.Vector{X: 100, Y: 50}, nil)
	if len(ds.Rects) != 2 || ds.Color == nil {
		t.Fatalf("unexpected draw shape %+v", ds)
	}
	world := ds.World()
	if world[1].X != 120 || world[1].Y != 50 {
		t.Fatalf("expected offset rect at (120,50), got %+v", world[1])
	}
	if ds.Rects[1].X != 20 {
		t.Fatalf("World should not modify local rects")
	}
}
