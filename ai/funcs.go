package ai

// Funcs adapts plain functions to Task. A nil Should never executes, a nil
// Continue keeps running while Should holds, and nil lifecycle calls are
// no-ops.
type Funcs struct {
	Bits     uint32
	Should   func() bool
	Continue func() bool
	OnStart  func()
	OnReset  func()
	OnUpdate func()
}

func (f *Funcs) ShouldExecute() bool {
	return f.Should != nil && f.Should()
}

func (f *Funcs) ContinueExecuting() bool {
	if f.Continue == nil {
		return f.ShouldExecute()
	}
	return f.Continue()
}

func (f *Funcs) Start() {
	if f.OnStart != nil {
		f.OnStart()
	}
}

func (f *Funcs) Reset() {
	if f.OnReset != nil {
		f.OnReset()
	}
}

func (f *Funcs) Update() {
	if f.OnUpdate != nil {
		f.OnUpdate()
	}
}

func (f *Funcs) Mutex() uint32 {
	return f.Bits
}
