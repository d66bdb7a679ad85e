package component

import "github.com/milk9111/maidmodes/item"

// Pickup is a loose item stack lying in the world.
type Pickup struct {
	Stack item.Stack
	Age   int
}

var PickupComponent = NewComponent[Pickup]()
