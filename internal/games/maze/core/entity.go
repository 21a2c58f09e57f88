package core

import platformcore "github.com/vovakirdan/tui-maze/internal/core"

// ItemKind is the type of a collectible item.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemScore
	ItemWeapon
	ItemInvincibility
)

// String returns the string representation of an item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "Heal"
	case ItemScore:
		return "Score"
	case ItemWeapon:
		return "Weapon"
	case ItemInvincibility:
		return "Invincibility"
	default:
		return "Unknown"
	}
}

// Item is a collectible lying in the maze.
type Item struct {
	Kind ItemKind
	Box  platformcore.Rect
}

// ItemRules are the fixed amounts and durations applied by item pickups.
type ItemRules struct {
	Heal            int
	ScoreValue      int
	WeaponTicks     int
	InvincibleTicks int
}

// Player is the entity steered by input.
type Player struct {
	Box     platformcore.Rect
	Speed   int
	HP      int
	MaxHP   int
	Score   int
	Effects Effects
}

// Invincible reports whether damage walls currently have no effect.
func (p *Player) Invincible() bool {
	return p.Effects.Active(EffectInvincible) || p.Effects.Active(EffectDamageGuard)
}

// ApplyItem applies the effect of picking up an item.
func (p *Player) ApplyItem(kind ItemKind, rules ItemRules) {
	switch kind {
	case ItemHeal:
		p.HP = platformcore.Clamp(p.HP+rules.Heal, 0, p.MaxHP)
	case ItemScore:
		p.Score += rules.ScoreValue
	case ItemWeapon:
		p.Effects.Set(EffectWeapon, rules.WeaponTicks)
	case ItemInvincibility:
		p.Effects.Set(EffectInvincible, rules.InvincibleTicks)
	}
}

// TakeDamage lowers HP, never below zero, and reports whether the player died.
func (p *Player) TakeDamage(amount int) bool {
	p.HP = platformcore.Clamp(p.HP-amount, 0, p.MaxHP)
	return p.HP == 0
}
