package sim

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/sirupsen/logrus"
)

// journal tallies the events each scheduler pass produced. It must run
// last, before the world flushes the queue.
type journal struct {
	counts map[string]int
	log    logrus.FieldLogger
}

func newJournal(log logrus.FieldLogger) *journal {
	return &journal{counts: map[string]int{}, log: log.WithField("system", "journal")}
}

func (j *journal) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		j.counts[ev.Type]++
		entry := j.log.WithField("entity", ev.Entity.String()).WithField("tick", w.Tick())
		if ev.Data != nil {
			entry = entry.WithField("data", ev.Data)
		}
		entry.Debug(ev.Type)
	}
}

// EventCounts returns how often each event type fired so far.
func (s *Sim) EventCounts() map[string]int {
	out := make(map[string]int, len(s.journal.counts))
	for k, v := range s.journal.counts {
		out[k] = v
	}
	return out
}
