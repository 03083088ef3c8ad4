package component

// Health tracks hit points and post-hit invulnerability for anything that can
// be struck.
type Health struct {
	Max     float32
	Current float32
	IFrames int
	Dead    bool

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float32) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// Invulnerable reports whether i-frames are running.
func (h *Health) Invulnerable() bool {
	return h != nil && h.IFrames > 0
}

// ApplyDamage applies damage if not in i-frames. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float32, evt CombatEvent) bool {
	if h == nil || h.Dead || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// StartIFrames sets invulnerability frames. A longer running window is kept.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= h.IFrames {
		return
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

func (h *Health) CurrentHP() float32 {
	if h == nil {
		return 0
	}
	return h.Current
}

// Fraction is Current/Max, for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current / h.Max)
}
