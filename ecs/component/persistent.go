package component

import "github.com/google/uuid"

// Persistent marks entities saved by the persistence system.
type Persistent struct {
	ID uuid.UUID
}

var PersistentComponent = NewComponent[Persistent]()
