package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
	"github.com/milk9111/linklike/component"
	"github.com/milk9111/linklike/prefabs"
	"golang.org/x/image/colornames"
)

const protagID = 1

// Protag is the player character.
type Protag struct {
	Position  cp.Vector
	Direction collision.Direction
	Speed     float64
	Hurtbox   collision.Hitbox
	HP        *component.Health
	Sword     *Sword
	SwordName string
	Damage    component.Damage

	// Hurt is set on any tick something hostile overlaps the hurtbox.
	Hurt    bool
	CanMove bool
	CanTurn bool
}

func NewProtag(spec prefabs.ProtagSpec, sword *prefabs.Attack) *Protag {
	speed := spec.Speed
	if speed == 0 {
		speed = 6
	}
	size := spec.HurtboxSize
	if size == 0 {
		size = 80
	}
	return &Protag{
		Position:  cp.Vector{X: spec.StartX, Y: spec.StartY},
		Direction: collision.Down,
		Speed:     speed,
		Hurtbox:   collision.PointSize(cp.Vector{}, size),
		HP:        component.NewHealth(spec.Health),
		Sword:     NewSword(sword.Keyframes, sword.Color),
		SwordName: sword.Name,
		Damage:    damageFromSpec(spec.Damage, component.FactionPlayer),
		CanMove:   true,
		CanTurn:   true,
	}
}

// Update runs the sword first so a swing started this tick locks movement
// on the same tick.
func (p *Protag) Update(in Input) {
	if p.Sword.Active() {
		p.Sword.Update()
	} else if in.Attack {
		p.Sword.Start(p.Direction)
	}
	p.CanMove = !p.Sword.Active()
	p.CanTurn = !p.Sword.Active()

	if p.CanTurn {
		p.Direction = collision.DirectionFromVector(in.Axis, p.Direction)
	}
	if p.CanMove {
		p.Position = p.Position.Add(unit(in.Axis).Mult(p.Speed))
	}
}

func (p *Protag) Shape() collision.Shape {
	return collision.Singular(p.Hurtbox)
}

func (p *Protag) Hitboxes() []component.Hitbox {
	shape, ok := p.Sword.Shape()
	if !ok {
		return nil
	}
	return []component.Hitbox{{
		ID:      "sword",
		Shape:   shape,
		Offset:  p.Position,
		Damage:  p.Damage,
		Active:  true,
		OwnerID: protagID,
	}}
}

func (p *Protag) Hurtboxes() []component.Hurtbox {
	return []component.Hurtbox{{
		ID:      "body",
		Shape:   p.Shape(),
		Offset:  p.Position,
		Faction: component.FactionPlayer,
		Enabled: true,
		OwnerID: protagID,
	}}
}

func (p *Protag) CanBeHit() bool { return p.HP.IsAlive() }

func (p *Protag) Health() component.HealthComponent { return p.HP }

func (p *Protag) DrawShapes() []collision.DrawShape {
	clr := colornames.White
	if p.Hurt {
		clr = colornames.Red
	}
	shapes := []collision.DrawShape{p.Hurtbox.DrawShape(p.Position, clr)}
	if s, ok := p.Sword.DrawShape(p.Position); ok {
		shapes = append(shapes, s)
	}
	return shapes
}

func damageFromSpec(spec prefabs.DamageSpec, faction component.Faction) component.Damage {
	return component.Damage{
		Amount:         spec.Amount,
		KnockbackX:     spec.KnockbackX,
		KnockbackY:     spec.KnockbackY,
		CooldownFrames: spec.CooldownFrames,
		IFrameFrames:   spec.IFrameFrames,
		Faction:        faction,
	}
}
