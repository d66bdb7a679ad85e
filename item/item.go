// Package item holds item stacks and the slot inventory maids carry.
package item

import "strings"

const (
	Sugar = "sugar"
	Torch = "torch"
	Coal  = "coal"
)

var swordDamage = map[string]float32{
	"wooden_sword":  4,
	"stone_sword":   5,
	"iron_sword":    6,
	"diamond_sword": 7,
}

var axeDamage = map[string]float32{
	"wooden_axe":  3,
	"stone_axe":   4,
	"iron_axe":    5,
	"diamond_axe": 6,
}

var smeltResults = map[string]string{
	"raw_beef":    "cooked_beef",
	"raw_chicken": "cooked_chicken",
	"raw_fish":    "cooked_fish",
	"potato":      "baked_potato",
}

// Stack is a quantity of one item id.
type Stack struct {
	ID    string
	Count int
}

func (s Stack) Empty() bool {
	return s.ID == "" || s.Count <= 0
}

// IsSword reports whether id is a melee sword.
func IsSword(id string) bool {
	_, ok := swordDamage[id]
	return ok
}

func IsAxe(id string) bool {
	_, ok := axeDamage[id]
	return ok
}

// AttackDamage returns the bonus damage of a held item.
func AttackDamage(id string) float32 {
	if d, ok := swordDamage[id]; ok {
		return d
	}
	return axeDamage[id]
}

// Smelted returns what id becomes in a furnace.
func Smelted(id string) (string, bool) {
	out, ok := smeltResults[id]
	return out, ok
}

// IsFuel reports whether id burns in a furnace.
func IsFuel(id string) bool {
	return id == Coal || strings.HasSuffix(id, "_planks") || id == "log"
}
