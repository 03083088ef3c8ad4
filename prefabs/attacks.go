package prefabs

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/milk9111/linklike/collision"
)

// Attack is a loaded attack prefab. Keyframes are pre-rotated for every
// direction; Template holds the configured animation when the prefab has a
// hold schedule.
type Attack struct {
	Name      string
	Authored  collision.Direction
	Keyframes collision.Directional
	Template  *collision.Animation
	Color     color.Color
}

// NewAnimation returns an independent copy of the template, or nil if the
// attack is a plain frame string.
func (a *Attack) NewAnimation() *collision.Animation {
	if a.Template == nil {
		return nil
	}
	return a.Template.Clone()
}

func (a *Attack) Len() int {
	return a.Keyframes.Len()
}

func BuildAttack(spec *AttackSpec) (*Attack, error) {
	s, err := spec.FrameString()
	if err != nil {
		return nil, err
	}
	d, err := spec.AuthoredDirection()
	if err != nil {
		return nil, err
	}

	attack := &Attack{
		Name:      spec.Name,
		Authored:  d,
		Keyframes: collision.NewDirectional(s),
	}
	if spec.Color != nil {
		attack.Color = spec.Color.Color
	}
	if len(spec.Intervals) > 0 {
		anim, err := spec.Animation(attack.Keyframes)
		if err != nil {
			return nil, err
		}
		attack.Template = anim
	}
	return attack, nil
}

func LoadAttack(name string) (*Attack, error) {
	spec, err := LoadAttackSpec(name)
	if err != nil {
		return nil, err
	}
	return BuildAttack(spec)
}

// Library caches built attacks by name. Safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	attacks map[string]*Attack
}

func NewLibrary() *Library {
	return &Library{attacks: make(map[string]*Attack)}
}

func (l *Library) Get(name string) (*Attack, error) {
	l.mu.RLock()
	a, ok := l.attacks[name]
	l.mu.RUnlock()
	if ok {
		return a, nil
	}
	return l.Reload(name)
}

// Reload rebuilds name from its prefab, replacing any cached copy. On error
// the cached copy is kept.
func (l *Library) Reload(name string) (*Attack, error) {
	a, err := LoadAttack(name)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.attacks[name] = a
	l.mu.Unlock()
	return a, nil
}

// LoadAll builds every embedded attack.
func (l *Library) LoadAll() error {
	names, err := AttackNames()
	if err != nil {
		return fmt.Errorf("prefabs: list attacks: %w", err)
	}
	for _, name := range names {
		if _, err := l.Reload(name); err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.attacks))
	for name := range l.attacks {
		names = append(names, name)
	}
	return names
}

var defaultLibrary = sync.OnceValues(func() (*Library, error) {
	l := NewLibrary()
	if err := l.LoadAll(); err != nil {
		return nil, err
	}
	return l, nil
})

// Attacks returns the process-wide library, built once from the embedded
// prefabs on first use.
func Attacks() (*Library, error) {
	return defaultLibrary()
}
