package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type MaidTag struct{}

var MaidTagComponent = NewComponent[MaidTag]()
