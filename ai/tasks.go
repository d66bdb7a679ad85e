// Package ai schedules the per-entity AI tasks modes register.
package ai

import "sort"

// Task is one unit of AI behaviour. Tasks that share a mutex bit never run
// together; the lower priority number wins.
type Task interface {
	ShouldExecute() bool
	ContinueExecuting() bool
	Start()
	Reset()
	Update()
	Mutex() uint32
}

type entry struct {
	priority int
	seq      int
	task     Task
	running  bool
}

// TaskList is an ordered set of tasks ticked together.
type TaskList struct {
	entries []*entry
	seq     int
}

func NewTaskList() *TaskList {
	return &TaskList{}
}

// Add registers task at priority. Lower numbers run first and pre-empt
// higher numbers that share a mutex bit.
func (l *TaskList) Add(priority int, task Task) {
	if l == nil || task == nil {
		return
	}
	l.seq++
	l.entries = append(l.entries, &entry{priority: priority, seq: l.seq, task: task})
	sort.SliceStable(l.entries, func(i, j int) bool {
		if l.entries[i].priority != l.entries[j].priority {
			return l.entries[i].priority < l.entries[j].priority
		}
		return l.entries[i].seq < l.entries[j].seq
	})
}

// RemoveTask drops task, resetting it first when it is running.
func (l *TaskList) RemoveTask(task Task) bool {
	if l == nil {
		return false
	}
	for i, en := range l.entries {
		if en.task != task {
			continue
		}
		if en.running {
			en.running = false
			en.task.Reset()
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		return true
	}
	return false
}

// Tick runs one scheduling pass: stop, start, then update.
func (l *TaskList) Tick() {
	if l == nil {
		return
	}
	for _, en := range l.entries {
		if en.running && !en.task.ContinueExecuting() {
			en.running = false
			en.task.Reset()
		}
	}
	for _, en := range l.entries {
		if en.running || !l.canUse(en) || !en.task.ShouldExecute() {
			continue
		}
		l.interrupt(en)
		en.running = true
		en.task.Start()
	}
	for _, en := range l.entries {
		if en.running {
			en.task.Update()
		}
	}
}

// canUse reports whether no running task with an equal or lower priority
// number holds one of en's mutex bits.
func (l *TaskList) canUse(en *entry) bool {
	for _, other := range l.entries {
		if other == en || !other.running {
			continue
		}
		if other.task.Mutex()&en.task.Mutex() == 0 {
			continue
		}
		if other.priority <= en.priority {
			return false
		}
	}
	return true
}

func (l *TaskList) interrupt(en *entry) {
	for _, other := range l.entries {
		if other == en || !other.running {
			continue
		}
		if other.task.Mutex()&en.task.Mutex() != 0 {
			other.running = false
			other.task.Reset()
		}
	}
}

// ResetAll stops every running task.
func (l *TaskList) ResetAll() {
	if l == nil {
		return
	}
	for _, en := range l.entries {
		if en.running {
			en.running = false
			en.task.Reset()
		}
	}
}

// Running returns the tasks currently executing, in priority order.
func (l *TaskList) Running() []Task {
	if l == nil {
		return nil
	}
	var out []Task
	for _, en := range l.entries {
		if en.running {
			out = append(out, en.task)
		}
	}
	return out
}

func (l *TaskList) IsRunning(task Task) bool {
	if l == nil {
		return false
	}
	for _, en := range l.entries {
		if en.task == task {
			return en.running
		}
	}
	return false
}

// Len returns the number of registered tasks.
func (l *TaskList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Clone copies the registrations. Running state is not copied.
func (l *TaskList) Clone() *TaskList {
	out := NewTaskList()
	if l == nil {
		return out
	}
	for _, en := range l.entries {
		out.seq++
		out.entries = append(out.entries, &entry{priority: en.priority, seq: out.seq, task: en.task})
	}
	return out
}
