package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

var ErrNoKeyframes = errors.New("prefabs: attack has no keyframes")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AttackSpec is the authored form of a frame string, optionally with a hold
// schedule that turns it into an animation.
type AttackSpec struct {
	Name      string         `yaml:"name"`
	Direction string         `yaml:"direction"`
	Keyframes [][]HitboxSpec `yaml:"keyframes"`
	Intervals []int          `yaml:"intervals"`
	Loops     *bool          `yaml:"loops"`
	Twine     *float64       `yaml:"twine"`
	Ease      string         `yaml:"ease"`
	Color     *YAMLColor     `yaml:"color"`
}

// HitboxSpec is either a point-size square ({x, y, size}) or a rectangle by
// min corner ({x, y, w, h}).
type HitboxSpec struct {
	X    float64  `yaml:"x"`
	Y    float64  `yaml:"y"`
	Size *float64 `yaml:"size,omitempty"`
	W    float64  `yaml:"w,omitempty"`
	H    float64  `yaml:"h,omitempty"`
}

func LoadAttackSpec(name string) (*AttackSpec, error) {
	spec, err := LoadSpec[AttackSpec](attackPath(name))
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(name, ".yaml")
	}
	return &spec, nil
}

func (h HitboxSpec) Hitbox() collision.Hitbox {
	if h.Size != nil {
		return collision.PointSize(cp.Vector{X: h.X, Y: h.Y}, *h.Size)
	}
	return collision.NewHitbox(h.X, h.Y, h.W, h.H)
}

// HitboxSpecFromHitbox writes h back in rectangle form.
func HitboxSpecFromHitbox(h collision.Hitbox) HitboxSpec {
	return HitboxSpec{X: h.Rect.X, Y: h.Rect.Y, W: h.Rect.Width, H: h.Rect.Height}
}

func (s *AttackSpec) AuthoredDirection() (collision.Direction, error) {
	d, err := collision.ParseDirection(s.Direction)
	if err != nil {
		return d, fmt.Errorf("prefabs: attack %s: %w", s.Name, err)
	}
	return d, nil
}

// FrameString builds the keyframes in their authored direction.
func (s *AttackSpec) FrameString() (collision.FrameString, error) {
	if len(s.Keyframes) == 0 {
		return collision.FrameString{}, fmt.Errorf("prefabs: attack %s: %w", s.Name, ErrNoKeyframes)
	}
	d, err := s.AuthoredDirection()
	if err != nil {
		return collision.FrameString{}, err
	}
	keyframes := make([][]collision.Hitbox, len(s.Keyframes))
	for i, kf := range s.Keyframes {
		boxes := make([]collision.Hitbox, len(kf))
		for j, h := range kf {
			boxes[j] = h.Hitbox()
		}
		keyframes[i] = boxes
	}
	return collision.FrameStringFromHitboxes(keyframes, d), nil
}

// Animation builds a fresh animation from the attack's schedule and options.
func (s *AttackSpec) Animation(keyframes collision.Directional) (*collision.Animation, error) {
	a, err := collision.NewDirectionalAnimation(keyframes, s.Intervals)
	if err != nil {
		return nil, fmt.Errorf("prefabs: attack %s: %w", s.Name, err)
	}
	if s.Loops != nil {
		a.SetLoops(*s.Loops)
	}
	if s.Twine != nil {
		a.SetTwine(*s.Twine)
	}
	fn, err := Easing(s.Ease)
	if err != nil {
		return nil, fmt.Errorf("prefabs: attack %s: %w", s.Name, err)
	}
	if fn != nil {
		a.SetEase(fn)
	}
	return a, nil
}

var easings = map[string]ease.TweenFunc{
	"in_quad":       ease.InQuad,
	"out_quad":      ease.OutQuad,
	"in_out_quad":   ease.InOutQuad,
	"in_cubic":      ease.InCubic,
	"out_cubic":     ease.OutCubic,
	"in_out_cubic":  ease.InOutCubic,
	"in_sine":       ease.InSine,
	"out_sine":      ease.OutSine,
	"in_out_sine":   ease.InOutSine,
	"out_back":      ease.OutBack,
	"out_bounce":    ease.OutBounce,
	"out_elastic":   ease.OutElastic,
	"in_out_expo":   ease.InOutExpo,
	"in_out_circ":   ease.InOutCirc,
}

// Easing looks up a curve by name. "" and "linear" return nil, which the
// animation treats as exact linear interpolation.
func Easing(name string) (ease.TweenFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "linear" {
		return nil, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("prefabs: unknown ease %q", name)
	}
	return fn, nil
}

// ArenaSpec describes the actors of the arena level.
type ArenaSpec struct {
	Protag     ProtagSpec     `yaml:"protag"`
	Enemies    []EnemySpec    `yaml:"enemies"`
	Decoration DecorationSpec `yaml:"decoration"`
}

type ProtagSpec struct {
	StartX      float64    `yaml:"start_x"`
	StartY      float64    `yaml:"start_y"`
	Speed       float64    `yaml:"speed"`
	HurtboxSize float64    `yaml:"hurtbox_size"`
	Health      float32    `yaml:"health"`
	Sword       string     `yaml:"sword"`
	Damage      DamageSpec `yaml:"damage"`
}

type EnemySpec struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"`
	X           float64    `yaml:"x"`
	Y           float64    `yaml:"y"`
	Speed       float64    `yaml:"speed"`
	HurtboxSize float64    `yaml:"hurtbox_size"`
	Health      float32    `yaml:"health"`
	Attack      string     `yaml:"attack"`
	AimScript   string     `yaml:"aim_script"`
	Damage      DamageSpec `yaml:"damage"`
}

type DamageSpec struct {
	Amount         float32 `yaml:"amount"`
	KnockbackX     float32 `yaml:"knockback_x"`
	KnockbackY     float32 `yaml:"knockback_y"`
	CooldownFrames int     `yaml:"cooldown_frames"`
	IFrameFrames   int     `yaml:"iframe_frames"`
}

type DecorationSpec struct {
	Attack string  `yaml:"attack"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return err
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
