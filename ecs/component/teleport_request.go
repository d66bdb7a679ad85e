package component

import "github.com/milk9111/maidmodes/ecs"

// TeleportRequest moves Entity instantly, bypassing navigation.
type TeleportRequest struct {
	Entity  ecs.Entity
	X, Y, Z float64
}

var TeleportRequestComponent = NewComponent[TeleportRequest]()
