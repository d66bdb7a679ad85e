package component

// Creature marks mobs. Hostile ones chase and hit the nearest maid or
// player in range.
type Creature struct {
	Kind         string
	Hostile      bool
	AttackDamage float32
	AttackRange  float64
	Cooldown     int
	Drop         string
}

var CreatureComponent = NewComponent[Creature]()
