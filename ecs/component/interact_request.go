package component

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/item"
)

// InteractRequest is a player using Stack on Maid.
type InteractRequest struct {
	Player ecs.Entity
	Maid   ecs.Entity
	Stack  item.Stack
}

var InteractRequestComponent = NewComponent[InteractRequest]()
