package component

// HealthComponent exposes health operations for combat systems.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount float32, evt CombatEvent) bool
	StartIFrames(frames int)
	Tick()
	CurrentHP() float32
}

// DamageDealerComponent is anything with attack shapes live this tick.
type DamageDealerComponent interface {
	Hitboxes() []Hitbox
}

// HurtboxComponent is anything that can be struck.
type HurtboxComponent interface {
	Hurtboxes() []Hurtbox
	CanBeHit() bool
}

// Combatant is a target that owns its health.
type Combatant interface {
	HurtboxComponent
	Health() HealthComponent
}
