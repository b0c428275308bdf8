package component

// Health tracks current/max hit points for an entity.
// Current is clamped to [0, Max] at all times; the death callback fires on
// the single transition from positive to zero, so a second hit on an already
// dead entity can never re-trigger it.
type Health struct {
	Max     int
	Current int

	OnChange func(current, max int)
	OnDeath  func()
}

// NewHealth creates a Health at full hit points.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity has hit points left.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount, clamped at zero. Crossing from positive to
// zero emits the death signal exactly once.
func (h *Health) ApplyDamage(amount int) {
	if h == nil || amount <= 0 {
		return
	}
	wasAlive := h.Current > 0
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.notify()
	if wasAlive && h.Current == 0 && h.OnDeath != nil {
		h.OnDeath()
	}
}

// Heal adds amount, clamped at Max.
func (h *Health) Heal(amount int) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.notify()
}

func (h *Health) notify() {
	if h.OnChange != nil {
		h.OnChange(h.Current, h.Max)
	}
}
