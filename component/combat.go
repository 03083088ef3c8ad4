package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
)

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return "neutral"
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID int
	TargetID   int
	Damage     float32
	HitboxID   string
	Frame      int
	Pos        cp.Vector
	KnockbackX float32
	KnockbackY float32
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter allows components to emit combat events.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Damage describes damage parameters.
type Damage struct {
	Amount         float32
	KnockbackX     float32
	KnockbackY     float32
	CooldownFrames int
	IFrameFrames   int
	Faction        Faction
	MultiHit       bool
}

// Hitbox is an offensive shape placed in the world at Offset.
type Hitbox struct {
	ID      string
	Shape   collision.Shape
	Offset  cp.Vector
	Damage  Damage
	Active  bool
	OwnerID int
}

// Hurtbox is a defensive shape placed in the world at Offset.
type Hurtbox struct {
	ID      string
	Shape   collision.Shape
	Offset  cp.Vector
	Faction Faction
	Enabled bool
	OwnerID int
}

// Center is the world-space center of the hurtbox's bounds.
func (h Hurtbox) Center() cp.Vector {
	return h.Shape.Frame().Bounds().Offset(h.Offset).Center()
}
