package component

import (
	"github.com/milk9111/linklike/collision"
	"golang.org/x/image/colornames"
)

type hitKey struct {
	HitboxID string
	OwnerID  int
	TargetID int
}

// highlightFrames is how long a landed hit stays outlined.
const highlightFrames = 6

// CombatResolver applies damage between hitboxes and hurtboxes.
type CombatResolver struct {
	Emitter *CombatEventEmitter

	frame    int
	lastHits map[hitKey]int
	// Recent collisions recorded during Resolve()
	Recent []CollisionRecord
}

// NewCombatResolver creates a resolver instance.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{
		lastHits: make(map[hitKey]int),
	}
}

// Tick advances internal frame counters and ages highlights. Call once per
// game frame.
func (r *CombatResolver) Tick() {
	if r == nil {
		return
	}
	r.frame++

	out := r.Recent[:0]
	for _, rec := range r.Recent {
		rec.FramesLeft--
		if rec.FramesLeft > 0 {
			out = append(out, rec)
		}
	}
	r.Recent = out
}

func (r *CombatResolver) Frame() int {
	if r == nil {
		return 0
	}
	return r.frame
}

// Resolve applies combat between a single damage dealer and hurtbox owner.
// Returns true if any damage was applied.
func (r *CombatResolver) Resolve(dealer DamageDealerComponent, target HurtboxComponent, health HealthComponent) bool {
	if r == nil || dealer == nil || target == nil || health == nil {
		return false
	}
	if !target.CanBeHit() || !health.IsAlive() {
		return false
	}

	dealing := dealer.Hitboxes()
	receiving := target.Hurtboxes()
	if len(dealing) == 0 || len(receiving) == 0 {
		return false
	}

	applied := false
	for _, hb := range dealing {
		if !hb.Active {
			continue
		}
		for _, hu := range receiving {
			if !hu.Enabled {
				continue
			}
			if hb.OwnerID == hu.OwnerID {
				continue
			}
			if !factionCanHit(hb.Damage.Faction, hu.Faction) {
				continue
			}
			if !hb.Shape.Colliding(hu.Shape, hb.Offset, hu.Offset) {
				continue
			}

			evt := CombatEvent{
				Type:       EventHit,
				AttackerID: hb.OwnerID,
				TargetID:   hu.OwnerID,
				Damage:     hb.Damage.Amount,
				HitboxID:   hb.ID,
				Frame:      r.frame,
				Pos:        hu.Center(),
				KnockbackX: hb.Damage.KnockbackX,
				KnockbackY: hb.Damage.KnockbackY,
			}
			if r.Emitter != nil {
				r.Emitter.Emit(evt)
			}

			if r.isOnCooldown(hb, hu) {
				continue
			}

			if health.ApplyDamage(hb.Damage.Amount, evt) {
				applied = true
				r.markHit(hb, hu)
				r.Recent = append(r.Recent, CollisionRecord{
					Hit:        hb.Shape.DrawShape(hb.Offset, colornames.Orange),
					Hurt:       hu.Shape.DrawShape(hu.Offset, colornames.Red),
					FramesLeft: highlightFrames,
				})
				if hb.Damage.IFrameFrames > 0 {
					health.StartIFrames(hb.Damage.IFrameFrames)
				}
				if r.Emitter != nil {
					evt.Type = EventDamageApplied
					r.Emitter.Emit(evt)
					if !health.IsAlive() {
						evt.Type = EventDeath
						r.Emitter.Emit(evt)
					}
				}
				if !hb.Damage.MultiHit {
					break
				}
			}
		}
	}
	return applied
}

// CollisionRecord stores a recent collision pair for debug highlighting.
type CollisionRecord struct {
	Hit        collision.DrawShape
	Hurt       collision.DrawShape
	FramesLeft int
}

// Highlights returns the outlines of recently landed hits.
func (r *CombatResolver) Highlights() []collision.DrawShape {
	if r == nil || len(r.Recent) == 0 {
		return nil
	}
	out := make([]collision.DrawShape, 0, 2*len(r.Recent))
	for _, rec := range r.Recent {
		out = append(out, rec.Hit, rec.Hurt)
	}
	return out
}

// ResolveAll applies every dealer against every target. Returns the number of
// hits that did damage.
func (r *CombatResolver) ResolveAll(dealers []DamageDealerComponent, targets []Combatant) int {
	if r == nil || len(dealers) == 0 || len(targets) == 0 {
		return 0
	}
	hits := 0
	for _, t := range targets {
		if t == nil {
			continue
		}
		health := t.Health()
		if health == nil {
			continue
		}
		for _, d := range dealers {
			if d == nil {
				continue
			}
			if r.Resolve(d, t, health) {
				hits++
			}
		}
	}
	return hits
}

func (r *CombatResolver) isOnCooldown(hb Hitbox, hu Hurtbox) bool {
	if hb.Damage.MultiHit {
		return false
	}
	if hb.Damage.CooldownFrames <= 0 {
		return false
	}
	if r.lastHits == nil {
		r.lastHits = make(map[hitKey]int)
	}
	key := hitKey{HitboxID: hb.ID, OwnerID: hb.OwnerID, TargetID: hu.OwnerID}
	last, ok := r.lastHits[key]
	if !ok {
		return false
	}
	return (r.frame - last) < hb.Damage.CooldownFrames
}

func (r *CombatResolver) markHit(hb Hitbox, hu Hurtbox) {
	if r.lastHits == nil {
		r.lastHits = make(map[hitKey]int)
	}
	key := hitKey{HitboxID: hb.ID, OwnerID: hb.OwnerID, TargetID: hu.OwnerID}
	r.lastHits[key] = r.frame
}

// Forget drops cooldown state for ownerID, on either side of a hit.
func (r *CombatResolver) Forget(ownerID int) {
	for k := range r.lastHits {
		if k.OwnerID == ownerID || k.TargetID == ownerID {
			delete(r.lastHits, k)
		}
	}
}

func factionCanHit(attacker Faction, target Faction) bool {
	if attacker == FactionNeutral || target == FactionNeutral {
		return true
	}
	return attacker != target
}
