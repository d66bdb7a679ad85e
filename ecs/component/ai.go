package component

import "github.com/milk9111/maidmodes/mode"

// AI binds an entity to its mode controller.
type AI struct {
	Controller *mode.Controller
	MoveSpeed  float64
	// EquipTimer counts down to the next NextEquipItem query.
	EquipTimer int
}

var AIComponent = NewComponent[AI]()
