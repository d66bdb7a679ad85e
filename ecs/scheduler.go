package ecs

// System is one stage of a host tick: mode dispatch, follow, interaction,
// persistence and so on.
type System interface {
	Update(w *World)
}

// Scheduler owns the tick order of the maid systems.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one host tick: every system once, in registration order.
// Mode changes, kills and warps pushed during the tick are visible to the
// systems after the pusher and are dropped when the tick ends.
func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.advance()
}

// Systems returns a copy of the tick order.
func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
