package arena

import (
	"fmt"
	"log"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/ai"
	"github.com/milk9111/linklike/collision"
	"github.com/milk9111/linklike/component"
	"github.com/milk9111/linklike/prefabs"
)

const (
	KindBasic    = "basic"
	KindAdvanced = "advanced"
)

// Level is one arena: the protagonist, the enemies chasing it and a
// decoration, advanced a tick at a time.
type Level struct {
	Protag     *Protag
	Enemies    []Enemy
	Decoration *Decoration
	Resolver   *component.CombatResolver

	// Events holds the combat events of the last tick.
	Events []component.CombatEvent

	tick   int
	nextID int
}

// NewDefault builds the arena from the embedded (or on-disk) prefabs.
func NewDefault() (*Level, error) {
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	lib, err := prefabs.Attacks()
	if err != nil {
		return nil, err
	}
	return New(spec, lib)
}

func New(spec *prefabs.ArenaSpec, lib *prefabs.Library) (*Level, error) {
	swordName := spec.Protag.Sword
	if swordName == "" {
		swordName = "sword_swing"
	}
	sword, err := lib.Get(swordName)
	if err != nil {
		return nil, fmt.Errorf("arena: protag sword: %w", err)
	}

	l := &Level{
		Protag:   NewProtag(spec.Protag, sword),
		Resolver: component.NewCombatResolver(),
		nextID:   protagID + 1,
	}
	l.Resolver.Emitter = &component.CombatEventEmitter{Handlers: []component.CombatEventHandler{
		func(evt component.CombatEvent) {
			if evt.Type != component.EventHit {
				l.Events = append(l.Events, evt)
			}
		},
	}}

	for _, es := range spec.Enemies {
		e, err := l.newEnemy(es, lib)
		if err != nil {
			return nil, err
		}
		l.Enemies = append(l.Enemies, e)
	}

	if name := spec.Decoration.Attack; name != "" {
		deco, err := lib.Get(name)
		if err != nil {
			return nil, fmt.Errorf("arena: decoration: %w", err)
		}
		l.Decoration = NewDecoration(deco.Keyframes.For(deco.Authored), cp.Vector{X: spec.Decoration.X, Y: spec.Decoration.Y}, deco.Color)
	}
	return l, nil
}

func (l *Level) newEnemy(spec prefabs.EnemySpec, lib *prefabs.Library) (Enemy, error) {
	id := l.nextID
	l.nextID++

	switch strings.ToLower(spec.Kind) {
	case KindBasic, "":
		return NewBasicEnemy(id, spec), nil
	case KindAdvanced:
		attack, err := lib.Get(spec.Attack)
		if err != nil {
			return nil, fmt.Errorf("arena: enemy %s: %w", spec.Name, err)
		}
		var aimer *ai.Aimer
		if spec.AimScript != "" {
			aimer, err = ai.NewAimer(spec.AimScript)
			if err != nil {
				return nil, fmt.Errorf("arena: enemy %s: %w", spec.Name, err)
			}
		}
		return NewAdvancedEnemy(id, spec, attack, aimer)
	}
	return nil, fmt.Errorf("arena: enemy %s: unknown kind %q", spec.Name, spec.Kind)
}

func (l *Level) Tick() int { return l.tick }

// Over reports whether the protagonist has been defeated.
func (l *Level) Over() bool { return !l.Protag.HP.IsAlive() }

// Update advances the level one tick.
func (l *Level) Update(in Input) {
	if l.Over() {
		return
	}
	l.tick++
	l.Events = l.Events[:0]

	l.Protag.Update(in)
	for _, e := range l.Enemies {
		e.Update(l.Protag)
	}
	if l.Decoration != nil {
		l.Decoration.Update()
	}

	l.Protag.Hurt = l.hurt()
	l.resolveCombat()
}

// hurt reports whether anything hostile overlaps the protagonist this tick.
func (l *Level) hurt() bool {
	shape := l.Protag.Shape()
	for _, e := range l.Enemies {
		for _, hb := range e.Threats() {
			if hb.Active && shape.Colliding(hb.Shape, l.Protag.Position, hb.Offset) {
				return true
			}
		}
	}
	return false
}

func (l *Level) resolveCombat() {
	l.Resolver.Tick()
	l.Protag.HP.Tick()

	targets := make([]component.Combatant, 0, len(l.Enemies))
	dealers := make([]component.DamageDealerComponent, 0, len(l.Enemies))
	for _, e := range l.Enemies {
		e.Health().Tick()
		targets = append(targets, e)
		dealers = append(dealers, e)
	}

	l.Resolver.ResolveAll([]component.DamageDealerComponent{l.Protag}, targets)
	l.Resolver.ResolveAll(dealers, []component.Combatant{l.Protag})

	alive := l.Enemies[:0]
	for _, e := range l.Enemies {
		if e.Health().IsAlive() {
			alive = append(alive, e)
			continue
		}
		log.Printf("arena: %s defeated on tick %d", e.Name(), l.tick)
		l.Resolver.Forget(e.ID())
	}
	for i := len(alive); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = alive

	if l.Over() {
		log.Printf("arena: protagonist defeated on tick %d", l.tick)
	}
}

// ApplyAttack swaps a rebuilt attack into everything that uses it. Returns
// how many users were updated.
func (l *Level) ApplyAttack(attack *prefabs.Attack) int {
	n := 0
	if l.Protag.SwordName == attack.Name {
		l.Protag.Sword.Replace(attack.Keyframes, attack.Color)
		n++
	}
	for _, e := range l.Enemies {
		adv, ok := e.(*AdvancedEnemy)
		if !ok || adv.Attack() != attack.Name {
			continue
		}
		if adv.ReplaceSwing(attack) {
			n++
		}
	}
	return n
}

// ApplyDecoration swaps the decoration's keyframes.
func (l *Level) ApplyDecoration(attack *prefabs.Attack) {
	str := attack.Keyframes.For(attack.Authored)
	if l.Decoration == nil {
		l.Decoration = NewDecoration(str, cp.Vector{}, attack.Color)
		return
	}
	l.Decoration.Replace(str, attack.Color)
}

// ReloadScript recompiles scriptName for every enemy aiming with it.
func (l *Level) ReloadScript(scriptName string) error {
	aimer, err := ai.NewAimer(scriptName)
	if err != nil {
		return err
	}
	for _, e := range l.Enemies {
		if adv, ok := e.(*AdvancedEnemy); ok && adv.aimer != nil && sameScript(adv.aimer.ScriptPath(), scriptName) {
			adv.SetAimer(aimer.Clone())
		}
	}
	return nil
}

func sameScript(a, b string) bool {
	trim := func(s string) string {
		s = strings.TrimPrefix(s, "scripts/")
		return strings.TrimPrefix(s, prefabs.DiskDir+"/scripts/")
	}
	return trim(a) == trim(b)
}

// Advanced returns the first advanced enemy, if any.
func (l *Level) Advanced() (*AdvancedEnemy, bool) {
	for _, e := range l.Enemies {
		if adv, ok := e.(*AdvancedEnemy); ok {
			return adv, true
		}
	}
	return nil, false
}

// Shapes lists everything to outline this tick, highlights last.
func (l *Level) Shapes() []collision.DrawShape {
	shapes := l.Protag.DrawShapes()
	for _, e := range l.Enemies {
		shapes = append(shapes, e.DrawShapes()...)
	}
	if l.Decoration != nil {
		if s, ok := l.Decoration.DrawShape(); ok {
			shapes = append(shapes, s)
		}
	}
	return append(shapes, l.Resolver.Highlights()...)
}
