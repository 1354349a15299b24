package ecs

// Proc is a unit of per-frame work.
type Proc interface {
	Process()
}

// ProcFunc adapts a plain function into a Proc.
type ProcFunc func()

// Process calls the wrapped function.
func (f ProcFunc) Process() { f() }

// System is a Core whose Procs run in a fixed order each time it is
// Process()ed; it is itself a Proc.
type System struct {
	Core
	Procs []Proc
	names []string
}

// AddPhase appends a named proc.
func (sys *System) AddPhase(name string, proc Proc) {
	sys.Procs = append(sys.Procs, proc)
	sys.names = append(sys.names, name)
}

// AddPhaseFunc appends a named function.
func (sys *System) AddPhaseFunc(name string, fn func()) {
	sys.AddPhase(name, ProcFunc(fn))
}

// Phases returns the proc names in run order.
func (sys *System) Phases() []string {
	return append([]string(nil), sys.names...)
}

// Process runs every proc once, in the order added.
func (sys *System) Process() {
	for _, proc := range sys.Procs {
		proc.Process()
	}
}
