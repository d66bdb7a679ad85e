package component

// Pathfinding is a straight-line movement goal.
type Pathfinding struct {
	Active bool
	GoalX  float64
	GoalY  float64
	GoalZ  float64
	Speed  float64
	Stuck  int
}

var PathfindingComponent = NewComponent[Pathfinding]()
