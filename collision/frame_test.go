package collision

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/common"
)

func TestFrameBoundingBox(t *testing.T) {
	f := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10), NewHitbox(20, 5, 5, 30)}, Right)
	if want := common.NewRect(0, 0, 25, 35); f.Bounds() != want {
		t.Fatalf("expected %+v, got %+v", want, f.Bounds())
	}

	away := NewFrame([]Hitbox{NewHitbox(100, 100, 10, 10), NewHitbox(130, 90, 5, 5)}, Right)
	if want := common.NewRect(100, 90, 35, 20); away.Bounds() != want {
		t.Fatalf("bounds should not include the origin: expected %+v, got %+v", want, away.Bounds())
	}
}

func TestFrameCopiesInput(t *testing.T) {
	boxes := []Hitbox{NewHitbox(0, 0, 10, 10)}
	f := NewFrame(boxes, Right)
	boxes[0] = NewHitbox(500, 500, 1, 1)
	if f.Hitboxes()[0] != NewHitbox(0, 0, 10, 10) {
		t.Fatalf("frame should not alias the caller's slice")
	}
}

func TestEmptyFrame(t *testing.T) {
	empty := NewFrame(nil, Right)
	if empty.Bounds() != (common.Rect{}) {
		t.Fatalf("expected zero bounds, got %+v", empty.Bounds())
	}
	full := NewFrame([]Hitbox{NewHitbox(-50, -50, 100, 100)}, Right)
	origin := cp.Vector{}
	if empty.CollidingFrame(full, origin, origin) || full.CollidingFrame(empty, origin, origin) {
		t.Fatalf("empty frame should never collide")
	}
	if empty.CollidingSingle(PointSize(origin, 10), origin, origin) {
		t.Fatalf("empty frame should never collide with a hitbox")
	}
}

func TestFrameAsDirection(t *testing.T) {
	f := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10), NewHitbox(20, 5, 5, 30)}, Right)

	up := f.AsDirection(Up)
	if up.Direction() != Up {
		t.Fatalf("expected Up, got %v", up.Direction())
	}
	if want := common.NewRect(0, -25, 35, 25); up.Bounds() != want {
		t.Fatalf("expected rotated bounds %+v, got %+v", want, up.Bounds())
	}
	if up.Bounds() != BoundingBox(up.Hitboxes()) {
		t.Fatalf("cached bounds should match recomputed union")
	}

	for _, d := range Directions {
		rotated := f.AsDirection(d)
		if rotated.Bounds() != BoundingBox(rotated.Hitboxes()) {
			t.Fatalf("%v: cached bounds out of date", d)
		}
		back := rotated.AsDirection(Right)
		for i, h := range back.Hitboxes() {
			if !rectApprox(h.Rect, f.Hitboxes()[i].Rect) {
				t.Fatalf("%v: member %d did not round trip: %+v", d, i, h.Rect)
			}
		}
	}

	// Rotation is relative to the frame's own direction.
	if got, want := up.AsDirection(Left), f.AsDirection(Left); got.Bounds() != want.Bounds() {
		t.Fatalf("expected %+v, got %+v", want.Bounds(), got.Bounds())
	}
}

func TestFrameTwineLerpZipsShorter(t *testing.T) {
	a := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10), NewHitbox(50, 0, 10, 10)}, Right)
	b := NewFrame([]Hitbox{NewHitbox(10, 0, 10, 10)}, Right)
	got := a.TwineLerp(b, 0.5, 1)
	if got.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", got.Len())
	}
	if want := common.NewRect(5, 0, 10, 10); !rectApprox(got.Hitboxes()[0].Rect, want) {
		t.Fatalf("expected %+v, got %+v", want, got.Hitboxes()[0].Rect)
	}
	if got.Bounds() != got.Hitboxes()[0].Rect {
		t.Fatalf("interpolated frame bounds not recomputed")
	}
}

func randomFrame(rng *rand.Rand, n int) Frame {
	boxes := make([]Hitbox, n)
	for i := range boxes {
		boxes[i] = NewHitbox(
			float64(rng.Intn(200)-100),
			float64(rng.Intn(200)-100),
			float64(rng.Intn(40)),
			float64(rng.Intn(40)),
		)
	}
	return NewFrame(boxes, Directions[rng.Intn(4)])
}

func bruteForce(a, b Frame, oa, ob cp.Vector) bool {
	for _, x := range a.Hitboxes() {
		for _, y := range b.Hitboxes() {
			if x.CollidingSingle(y, oa, ob) {
				return true
			}
		}
	}
	return false
}

func TestCollidingFrameMatchesPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hits := 0
	for i := 0; i < 2000; i++ {
		a := randomFrame(rng, rng.Intn(5))
		b := randomFrame(rng, rng.Intn(5))
		oa := cp.Vector{X: float64(rng.Intn(100) - 50), Y: float64(rng.Intn(100) - 50)}
		ob := cp.Vector{X: float64(rng.Intn(100) - 50), Y: float64(rng.Intn(100) - 50)}

		want := bruteForce(a, b, oa, ob)
		if want {
			hits++
		}
		if got := a.CollidingFrame(b, oa, ob); got != want {
			t.Fatalf("case %d: expected %v, got %v", i, want, got)
		}
		if got := b.CollidingFrame(a, ob, oa); got != want {
			t.Fatalf("case %d swapped: expected %v, got %v", i, want, got)
		}
	}
	if hits == 0 {
		t.Fatalf("random cases never collided; generator is too sparse")
	}
}

func TestCollidingFrameTouchingEdges(t *testing.T) {
	a := NewFrame([]Hitbox{NewHitbox(0, 0, 10, 10)}, Right)
	b := NewFrame([]Hitbox{NewHitbox(10, 0, 10, 10)}, Right)
	origin := cp.Vector{}
	if a.CollidingFrame(b, origin, origin) {
		t.Fatalf("frames sharing an edge should not collide")
	}
	if !a.CollidingFrame(b, cp.Vector{X: 1}, origin) {
		t.Fatalf("expected collision after nudging into b")
	}
}

func TestFrameStringDirectional(t *testing.T) {
	s := FrameStringFromHitboxes([][]Hitbox{
		{PointSize(cp.Vector{X: 0, Y: 80}, 40)},
		{PointSize(cp.Vector{X: 60, Y: 40}, 40)},
		{PointSize(cp.Vector{X: 80, Y: 0}, 40), PointSize(cp.Vector{X: 20, Y: 0}, 10)},
	}, Right)
	ds := NewDirectional(s)
	if ds.Len() != 3 {
		t.Fatalf("expected 3 keyframes, got %d", ds.Len())
	}
	for _, d := range Directions {
		str := ds.For(d)
		if str.Len() != s.Len() {
			t.Fatalf("%v: expected %d keyframes, got %d", d, s.Len(), str.Len())
		}
		for i := 0; i < s.Len(); i++ {
			want := s.Frame(i).AsDirection(d)
			got := str.Frame(i)
			if got.Direction() != d || got.Bounds() != want.Bounds() {
				t.Fatalf("%v frame %d: expected %+v, got %+v", d, i, want.Bounds(), got.Bounds())
			}
		}
	}
}

func TestFrameStringIndexPanics(t *testing.T) {
	s := NewFrameString(NewFrame([]Hitbox{NewHitbox(0, 0, 1, 1)}, Right))
	for _, idx := range []int{-1, 1, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("index %d: expected panic", idx)
				}
			}()
			s.Frame(idx)
		}()
	}
	if _, ok := s.DrawShape(3, cp.Vector{}, nil); ok {
		t.Fatalf("drawing a missing keyframe should report nothing to draw")
	}
}
