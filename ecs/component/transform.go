package component

// Transform is a world-space position. Y is the height of the feet.
type Transform struct {
	X   float64
	Y   float64
	Z   float64
	Yaw float64
}

var TransformComponent = NewComponent[Transform]()
