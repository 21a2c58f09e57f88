package core

// EffectKind names a countdown status effect.
type EffectKind uint8

const (
	EffectWeapon EffectKind = iota
	EffectInvincible
	EffectDamageGuard
	effectCount
)

// String returns the string representation of an effect.
func (k EffectKind) String() string {
	switch k {
	case EffectWeapon:
		return "Weapon"
	case EffectInvincible:
		return "Invincible"
	case EffectDamageGuard:
		return "DamageGuard"
	default:
		return "Unknown"
	}
}

// Effects holds the remaining ticks of every status effect. Zero means inactive.
type Effects struct {
	remaining [effectCount]int
}

// Set starts an effect, keeping the larger of the current and requested durations.
func (e *Effects) Set(kind EffectKind, ticks int) {
	if kind >= effectCount || ticks <= 0 {
		return
	}
	if ticks > e.remaining[kind] {
		e.remaining[kind] = ticks
	}
}

// Clear deactivates an effect. Clearing an inactive effect is a no-op.
func (e *Effects) Clear(kind EffectKind) {
	if kind < effectCount {
		e.remaining[kind] = 0
	}
}

// Tick decrements every active timer by one.
func (e *Effects) Tick() {
	for i := range e.remaining {
		if e.remaining[i] > 0 {
			e.remaining[i]--
		}
	}
}

// Active reports whether the effect has time left.
func (e Effects) Active(kind EffectKind) bool {
	return e.Remaining(kind) > 0
}

// Remaining returns the ticks left on an effect.
func (e Effects) Remaining(kind EffectKind) int {
	if kind >= effectCount {
		return 0
	}
	return e.remaining[kind]
}
