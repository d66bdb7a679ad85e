package ai

import "testing"

type probe struct {
	should, cont bool
	bits         uint32
	starts       int
	resets       int
	updates      int
}

func (p *probe) ShouldExecute() bool { return p.should }
func (p *probe) ContinueExecuting() bool { return p.cont }
func (p *probe) Start() { p.starts++ }
func (p *probe) Reset() { p.resets++ }
func (p *probe) Update() { p.updates++ }
func (p *probe) Mutex() uint32 { return p.bits }

func TestTickStartsAndUpdates(t *testing.T) {
	l := NewTaskList()
	p := &probe{should: true, cont: true, bits: 1}
	l.Add(1, p)

	l.Tick()
	l.Tick()

	if p.starts != 1 || p.updates != 2 {
		t.Fatalf("expected 1 start and 2 updates, got %d/%d", p.starts, p.updates)
	}

	p.cont = false
	p.should = false
	l.Tick()
	if p.resets != 1 || l.IsRunning(p) {
		t.Fatalf("expected task stopped with one reset, resets=%d", p.resets)
	}
}

func TestMutexPriority(t *testing.T) {
	cases := []struct {
		name        string
		highBits    uint32
		wantLowRuns bool
	}{
		{"shared_bit_blocks", 1, false},
		{"disjoint_bits_coexist", 2, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewTaskList()
			high := &probe{should: true, cont: true, bits: c.highBits}
			low := &probe{should: true, cont: true, bits: 1}
			l.Add(1, high)
			l.Add(5, low)
			l.Tick()
			if !l.IsRunning(high) {
				t.Fatalf("high priority task must run")
			}
			if l.IsRunning(low) != c.wantLowRuns {
				t.Fatalf("expected low running=%v", c.wantLowRuns)
			}
		})
	}
}

func TestHigherPriorityInterrupts(t *testing.T) {
	l := NewTaskList()
	high := &probe{should: false, cont: true, bits: 1}
	low := &probe{should: true, cont: true, bits: 1}
	l.Add(1, high)
	l.Add(5, low)

	l.Tick()
	if !l.IsRunning(low) {
		t.Fatalf("low must run while high is idle")
	}

	high.should = true
	l.Tick()
	if !l.IsRunning(high) || l.IsRunning(low) {
		t.Fatalf("expected high to pre-empt low")
	}
	if low.resets != 1 {
		t.Fatalf("interrupted task must be reset once, got %d", low.resets)
	}
}

func TestResetAllAndClone(t *testing.T) {
	l := NewTaskList()
	p := &probe{should: true, cont: true, bits: 1}
	l.Add(0, p)
	l.Tick()

	c := l.Clone()
	if c.Len() != 1 || c.IsRunning(p) {
		t.Fatalf("clone must copy registrations without running state")
	}

	l.ResetAll()
	if p.resets != 1 || len(l.Running()) != 0 {
		t.Fatalf("expected everything reset, resets=%d", p.resets)
	}
}

func TestFuncsDefaults(t *testing.T) {
	var f Funcs
	if f.ShouldExecute() || f.ContinueExecuting() {
		t.Fatalf("empty Funcs must never run")
	}
	f.Start()
	f.Reset()
	f.Update()
}

func TestFuncsContinueFollowsShould(t *testing.T) {
	for _, tc := range []struct {
		name   string
		should bool
	}{
		{"should true", true},
		{"should false", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			should := tc.should
			f := Funcs{Should: func() bool { return should }}
			if got := f.ContinueExecuting(); got != tc.should {
				t.Fatalf("ContinueExecuting = %v, want %v", got, tc.should)
			}
		})
	}
}
