package component

// SaveRequest asks the persistence system to write every persistent entity.
type SaveRequest struct{}

var SaveRequestComponent = NewComponent[SaveRequest]()

// LoadRequest restores persistent entities from the store.
type LoadRequest struct{}

var LoadRequestComponent = NewComponent[LoadRequest]()
