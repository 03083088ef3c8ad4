package arena

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/ai"
	"github.com/milk9111/linklike/collision"
	"github.com/milk9111/linklike/component"
	"github.com/milk9111/linklike/prefabs"
	"golang.org/x/image/colornames"
)

// Enemy is anything hostile in the arena. Update is called once per tick
// with the protagonist already moved.
type Enemy interface {
	component.Combatant
	component.DamageDealerComponent
	ID() int
	Name() string
	Position() cp.Vector
	Update(target *Protag)
	// Threats are the shapes that flag the protagonist as hurt on overlap.
	Threats() []component.Hitbox
	DrawShapes() []collision.DrawShape
}

type body struct {
	id       int
	name     string
	position cp.Vector
	speed    float64
	hurtbox  collision.Hitbox
	health   *component.Health
	damage   component.Damage
}

func newBody(id int, spec prefabs.EnemySpec, defaultSize float64) body {
	size := spec.HurtboxSize
	if size == 0 {
		size = defaultSize
	}
	speed := spec.Speed
	if speed == 0 {
		speed = 1
	}
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("%s#%d", spec.Kind, id)
	}
	return body{
		id:       id,
		name:     name,
		position: cp.Vector{X: spec.X, Y: spec.Y},
		speed:    speed,
		hurtbox:  collision.PointSize(cp.Vector{}, size),
		health:   component.NewHealth(spec.Health),
		damage:   damageFromSpec(spec.Damage, component.FactionEnemy),
	}
}

func (b *body) ID() int                           { return b.id }
func (b *body) Name() string                      { return b.name }
func (b *body) Position() cp.Vector               { return b.position }
func (b *body) Health() component.HealthComponent { return b.health }
func (b *body) CanBeHit() bool                    { return b.health.IsAlive() }

func (b *body) Hurtboxes() []component.Hurtbox {
	return []component.Hurtbox{{
		ID:      "body",
		Shape:   collision.Singular(b.hurtbox),
		Offset:  b.position,
		Faction: component.FactionEnemy,
		Enabled: true,
		OwnerID: b.id,
	}}
}

// contact is the body used as a hitbox, for running into the protagonist.
func (b *body) contact() component.Hitbox {
	return component.Hitbox{
		ID:      "contact",
		Shape:   collision.Singular(b.hurtbox),
		Offset:  b.position,
		Damage:  b.damage,
		Active:  true,
		OwnerID: b.id,
	}
}

// walk moves one step of speed toward target.
func (b *body) walk(target cp.Vector) cp.Vector {
	dir := unit(target.Sub(b.position))
	b.position = b.position.Add(dir.Mult(b.speed))
	return dir
}

// BasicEnemy walks straight at the protagonist and hurts on contact.
type BasicEnemy struct {
	body
}

func NewBasicEnemy(id int, spec prefabs.EnemySpec) *BasicEnemy {
	return &BasicEnemy{body: newBody(id, spec, 30)}
}

func (e *BasicEnemy) Update(target *Protag) {
	e.walk(target.Position)
}

func (e *BasicEnemy) Hitboxes() []component.Hitbox {
	return []component.Hitbox{e.contact()}
}

func (e *BasicEnemy) Threats() []component.Hitbox {
	return e.Hitboxes()
}

func (e *BasicEnemy) DrawShapes() []collision.DrawShape {
	return []collision.DrawShape{e.hurtbox.DrawShape(e.position, colornames.Cyan)}
}

// AdvancedEnemy walks toward the protagonist while looping an animated swing.
// The swing only re-aims when a loop completes, so a committed swing never
// turns mid-arc.
type AdvancedEnemy struct {
	body
	attack string
	swing  *collision.Animation
	aimer  *ai.Aimer
}

func NewAdvancedEnemy(id int, spec prefabs.EnemySpec, attack *prefabs.Attack, aimer *ai.Aimer) (*AdvancedEnemy, error) {
	swing := attack.NewAnimation()
	if swing == nil {
		return nil, fmt.Errorf("arena: attack %s has no intervals", attack.Name)
	}
	return &AdvancedEnemy{
		body:   newBody(id, spec, 50),
		attack: attack.Name,
		swing:  swing,
		aimer:  aimer,
	}, nil
}

func (e *AdvancedEnemy) Swing() *collision.Animation { return e.swing }

func (e *AdvancedEnemy) Attack() string { return e.attack }

func (e *AdvancedEnemy) Update(target *Protag) {
	dir := e.walk(target.Position)
	if !e.swing.Update() {
		return
	}
	e.swing.SetDirection(e.aim(target.Position, dir))
}

func (e *AdvancedEnemy) aim(target, dir cp.Vector) collision.Direction {
	current := e.swing.Direction()
	if e.aimer == nil {
		return collision.DirectionFromVector(dir, current)
	}
	d, err := e.aimer.Aim(e.position, target, current)
	if err != nil {
		log.Printf("arena: %s aim: %v", e.name, err)
		return collision.DirectionFromVector(dir, current)
	}
	return d
}

// ReplaceSwing swaps in a rebuilt attack, keeping the current facing.
func (e *AdvancedEnemy) ReplaceSwing(attack *prefabs.Attack) bool {
	swing := attack.NewAnimation()
	if swing == nil {
		return false
	}
	swing.SetDirection(e.swing.Direction())
	e.swing = swing
	return true
}

func (e *AdvancedEnemy) SetAimer(a *ai.Aimer) { e.aimer = a }

func (e *AdvancedEnemy) Hitboxes() []component.Hitbox {
	boxes := []component.Hitbox{e.contact()}
	if e.swing.Active() {
		boxes = append(boxes, component.Hitbox{
			ID:      "swing",
			Shape:   e.swing.Shape(),
			Offset:  e.position,
			Damage:  e.damage,
			Active:  true,
			OwnerID: e.id,
		})
	}
	return boxes
}

func (e *AdvancedEnemy) Threats() []component.Hitbox {
	return e.Hitboxes()
}

func (e *AdvancedEnemy) DrawShapes() []collision.DrawShape {
	return []collision.DrawShape{
		e.swing.DrawShape(e.position, nil),
		e.hurtbox.DrawShape(e.position, colornames.Red),
	}
}
