package component

type Health struct {
	Current float32
	Max     float32
	// HurtTicks is the invulnerability window after a hit.
	HurtTicks int
}

var HealthComponent = NewComponent[Health]()
