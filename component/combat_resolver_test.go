package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
)

type dealer struct{ boxes []Hitbox }

func (d *dealer) Hitboxes() []Hitbox { return d.boxes }

type target struct {
	boxes  []Hurtbox
	health *Health
}

func (t *target) Hurtboxes() []Hurtbox { return t.boxes }
func (t *target) CanBeHit() bool { return t.health.IsAlive() }
func (t *target) Health() HealthComponent { return t.health }

func square(size float64) collision.Shape {
	return collision.Singular(collision.PointSize(cp.Vector{}, size))
}

func newPair(hitAt, hurtAt cp.Vector, dmg Damage) (*dealer, *target) {
	d := &dealer{boxes: []Hitbox{{
		ID:      "swing",
		Shape:   square(20),
		Offset:  hitAt,
		Damage:  dmg,
		Active:  true,
		OwnerID: 1,
	}}}
	t := &target{
		boxes: []Hurtbox{{
			ID:      "body",
			Shape:   square(20),
			Offset:  hurtAt,
			Faction: FactionEnemy,
			Enabled: true,
			OwnerID: 2,
		}},
		health: NewHealth(3),
	}
	return d, t
}

func TestResolveAppliesDamageWithOffsets(t *testing.T) {
	r := NewCombatResolver()
	var events []CombatEventType
	r.Emitter = &CombatEventEmitter{Handlers: []CombatEventHandler{func(evt CombatEvent) {
		events = append(events, evt.Type)
	}}}

	d, tg := newPair(cp.Vector{X: 100}, cp.Vector{X: 115}, Damage{Amount: 1, Faction: FactionPlayer})
	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("expected overlapping shapes to hit")
	}
	if tg.health.Current != 2 {
		t.Fatalf("health = %v, want 2", tg.health.Current)
	}
	if len(events) != 2 || events[0] != EventHit || events[1] != EventDamageApplied {
		t.Fatalf("events = %v", events)
	}
	if got := len(r.Highlights()); got != 2 {
		t.Fatalf("highlights = %d, want 2", got)
	}

	// Same shapes, but only touching once offset.
	d, tg = newPair(cp.Vector{X: 100}, cp.Vector{X: 120}, Damage{Amount: 1, Faction: FactionPlayer})
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("touching edges should not hit")
	}
}

func TestResolveFactionsAndOwners(t *testing.T) {
	r := NewCombatResolver()

	d, tg := newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 1, Faction: FactionEnemy})
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("enemy hit enemy")
	}

	d, tg = newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 1, Faction: FactionPlayer})
	tg.boxes[0].OwnerID = 1
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("owner hit itself")
	}

	d, tg = newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 1, Faction: FactionNeutral})
	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("neutral damage should hit anyone")
	}

	d.boxes[0].Active = false
	tg.health = NewHealth(3)
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("inactive hitbox hit")
	}
}

func TestResolveCooldownAndIFrames(t *testing.T) {
	r := NewCombatResolver()
	d, tg := newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 1, Faction: FactionPlayer, CooldownFrames: 5})

	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("first hit")
	}
	for i := 0; i < 4; i++ {
		r.Tick()
		if r.Resolve(d, tg, tg.health) {
			t.Fatalf("hit during cooldown at tick %d", i+1)
		}
	}
	r.Tick()
	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("expected hit after cooldown")
	}

	r = NewCombatResolver()
	d, tg = newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 1, Faction: FactionPlayer, IFrameFrames: 2})
	r.Resolve(d, tg, tg.health)
	if !tg.health.Invulnerable() {
		t.Fatalf("expected i-frames")
	}
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("hit during i-frames")
	}
	tg.health.Tick()
	tg.health.Tick()
	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("expected hit after i-frames")
	}
}

func TestResolveDeathAndHighlightsExpire(t *testing.T) {
	r := NewCombatResolver()
	died := false
	r.Emitter = &CombatEventEmitter{Handlers: []CombatEventHandler{func(evt CombatEvent) {
		if evt.Type == EventDeath {
			died = true
		}
	}}}
	d, tg := newPair(cp.Vector{}, cp.Vector{}, Damage{Amount: 5, Faction: FactionPlayer})

	if n := r.ResolveAll([]DamageDealerComponent{d}, []Combatant{tg}); n != 1 {
		t.Fatalf("ResolveAll = %d, want 1", n)
	}
	if !died || tg.health.IsAlive() {
		t.Fatalf("expected death")
	}
	if r.Resolve(d, tg, tg.health) {
		t.Fatalf("dead target was hit")
	}

	for i := 0; i < highlightFrames; i++ {
		if len(r.Highlights()) == 0 {
			t.Fatalf("highlight expired early at tick %d", i)
		}
		r.Tick()
	}
	if len(r.Highlights()) != 0 {
		t.Fatalf("highlight did not expire")
	}
}

func TestResolveCompoundShapes(t *testing.T) {
	r := NewCombatResolver()
	swing, err := collision.NewAnimation(collision.NewFrameString(
		collision.NewFrame([]collision.Hitbox{collision.PointSize(cp.Vector{X: 80}, 40)}, collision.Right),
		collision.NewFrame([]collision.Hitbox{collision.PointSize(cp.Vector{Y: 80}, 40)}, collision.Right),
	), []int{4})
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}

	d, tg := newPair(cp.Vector{}, cp.Vector{X: 80}, Damage{Amount: 1, Faction: FactionPlayer})
	d.boxes[0].Shape = swing.Shape()
	if !r.Resolve(d, tg, tg.health) {
		t.Fatalf("expected animated shape to hit")
	}
}

func TestHealth(t *testing.T) {
	h := NewHealth(0)
	if h.Max != 1 || h.Current != 1 {
		t.Fatalf("zero max should clamp to 1, got %+v", h)
	}

	h = NewHealth(4)
	damaged := 0
	h.OnDamage = func(*Health, CombatEvent) { damaged++ }
	if h.ApplyDamage(0, CombatEvent{}) {
		t.Fatalf("zero damage applied")
	}
	h.ApplyDamage(1, CombatEvent{})
	if h.Fraction() != 0.75 || damaged != 1 {
		t.Fatalf("fraction %v damaged %d", h.Fraction(), damaged)
	}

	h.StartIFrames(5)
	h.StartIFrames(2)
	if h.IFrames != 5 {
		t.Fatalf("shorter window replaced longer: %d", h.IFrames)
	}

	var nilHealth *Health
	if nilHealth.IsAlive() || nilHealth.CurrentHP() != 0 {
		t.Fatalf("nil health should be dead")
	}
}
