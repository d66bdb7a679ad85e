package component

import "github.com/milk9111/maidmodes/ecs"

// NewComponent allocates a typed handle for a component declared here.
func NewComponent[T any]() ecs.ComponentHandle[T] {
	return ecs.NewComponent[T]()
}
