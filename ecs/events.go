package ecs

// Event tells later systems in the same tick that something happened to a
// maid or creature, such as a mode switch or a warp to its owner. Data is
// event specific; mode changes carry the new entry name.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

// EventQueue holds the events of the current tick in push order. The
// scheduler empties it at the end of each tick.
type EventQueue struct {
	items []Event
}

// Push records an event. A nil queue drops it.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain hands the tick's events to a single consumer and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek lists events of one type, leaving them for other systems.
func (q *EventQueue) Peek(eventType string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
