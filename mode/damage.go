package mode

import "github.com/milk9111/maidmodes/ecs"

// DamageResult is the outcome of the first damage interception hook.
type DamageResult int

const (
	// NotHandled lets the host continue with DamageEntity and default damage.
	NotHandled DamageResult = iota
	// HandledSuppressDefault drops the damage entirely.
	HandledSuppressDefault
	// HandledRunDefaultThenSuppress applies the default health loss and skips
	// the remaining hooks.
	HandledRunDefaultThenSuppress
)

func (r DamageResult) String() string {
	switch r {
	case HandledSuppressDefault:
		return "suppress"
	case HandledRunDefaultThenSuppress:
		return "run-default"
	default:
		return "not-handled"
	}
}

// DamageSource describes where incoming damage came from.
type DamageSource struct {
	Kind     string
	Attacker ecs.Entity
}

const (
	DamageMob    = "mob"
	DamagePlayer = "player"
	DamageFall   = "fall"
	DamageFire   = "fire"
)
