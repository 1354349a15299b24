// Package factory simulates the tile-based factory: a grid of machines
// joined by pipes, whose production is paced by a "time" resource.
package factory

import (
	"image"
	"io"
	"log"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/ecs/eps"
	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/resource"
)

const (
	fcPosition ecs.ComponentType = 1 << iota
	fcMachine
	fcPort
	fcPipe
	fcBuffer

	fcInlet
	fcOutlet
	fcAmmo
	fcRocket
	fcHull
	fcSwitch
)

var kindTypes = [numMachineKinds]ecs.ComponentType{
	InletMachine:  fcInlet,
	OutletMachine: fcOutlet,
	AmmoFactory:   fcAmmo,
	RocketFactory: fcRocket,
	HullFixer:     fcHull,
	PipeSwitch:    fcSwitch,
}

// Buffer is a machine's local stock of one resource.
type Buffer struct {
	Kind   resource.Kind
	Amount float64
}

// Port is a read-only view of a port entity.
type Port struct {
	Parent    ecs.Entity
	Side      Direction
	Flow      Flow
	Connected ecs.Entity
}

// Pipe is a read-only view of a pipe entity.
type Pipe struct {
	To, From ecs.Entity
}

type machine struct {
	kind  MachineKind
	ports []ecs.Entity
}

// Factory holds every factory entity and runs the per-frame phases.
type Factory struct {
	ecs.System

	cfg    Config
	logger *log.Logger
	pos    eps.EPS
	grid   Grid
	pool   resource.Pool
	econ   Economy
	clock  ecstime.Clock

	machines []machine
	ports    []Port
	pipes    []Pipe
	buffers  []Buffer

	nets    networks
	members ecs.Relation

	queue   connectQueue
	inval   int
	signals []Signal
	subs    []func(Signal)

	dt    ecstime.Duration
	ticks int
	over  bool
}

// New creates a factory with a fresh pool and the configured layout.
func New(cfg Config) *Factory {
	f := &Factory{}
	f.Init(cfg)
	return f
}

// Init initializes the factory; useful for embedding.
func (f *Factory) Init(cfg Config) {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.ConnectionsPerFrame <= 0 {
		cfg.ConnectionsPerFrame = def.ConnectionsPerFrame
	}
	if cfg.Machines == nil {
		cfg.Machines = def.Machines
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = def.TickPeriod
	}
	f.cfg = cfg
	f.logger = cfg.Logger
	if f.logger == nil {
		f.logger = log.New(io.Discard, "", 0)
	}

	f.machines = []machine{{}}
	f.ports = []Port{{}}
	f.pipes = []Pipe{{}}
	f.buffers = []Buffer{{}}
	f.RegisterAllocator(fcMachine|fcPort|fcPipe|fcBuffer, f.alloc)
	f.RegisterDestroyer(fcMachine, f.destroyMachine)
	f.RegisterDestroyer(fcPort, f.destroyPort)
	f.RegisterDestroyer(fcPipe, f.destroyPipe)
	f.RegisterDestroyer(fcBuffer, f.destroyBuffer)
	f.pos.Init(&f.Core, fcPosition)

	f.nets.init()
	f.members.Init(&f.nets.Core, &f.Core)

	f.econ.Init(cfg.TickPeriod)
	f.queue.limit = cfg.ConnectionsPerFrame

	f.AddPhase("clock", &f.clock)
	f.AddPhaseFunc("connect", f.connectPending)
	f.AddPhaseFunc("rebuild", f.rebuild)
	f.AddPhaseFunc("economy", f.runEconomy)
	f.AddPhaseFunc("inlets", f.fillInlets)
	f.AddPhaseFunc("outlets", f.drainOutlets)
	f.AddPhaseFunc("ticks", f.runTicks)
	f.AddPhaseFunc("over", f.checkOver)
	f.AddPhaseFunc("signals", f.Flush)

	f.grid.Init(cfg.Size)
	f.pool.Reset()
	f.spawnLayout()
	f.invalidate(image.ZP)
}

// Frame advances the simulation by dt of frame time: pending connections,
// network rebuild, the tick economy, then every machine phase in order.
func (f *Factory) Frame(dt ecstime.Duration) {
	f.dt = dt
	f.Process()
}

func (f *Factory) logf(format string, args ...interface{}) {
	f.logger.Printf(format, args...)
}

func (f *Factory) alloc(id ecs.EntityID, t ecs.ComponentType) {
	f.machines = append(f.machines, machine{})
	f.ports = append(f.ports, Port{})
	f.pipes = append(f.pipes, Pipe{})
	f.buffers = append(f.buffers, Buffer{})
}

func (f *Factory) destroyMachine(id ecs.EntityID, t ecs.ComponentType) {
	ports := f.machines[id].ports
	f.machines[id] = machine{}
	for _, pe := range ports {
		pe.Destroy()
	}
}

func (f *Factory) destroyPort(id ecs.EntityID, t ecs.ComponentType) {
	self := f.Ref(id)
	f.unlink(self, f.ports[id].Connected)
	f.ports[id] = Port{}
}

func (f *Factory) destroyPipe(id ecs.EntityID, t ecs.ComponentType) {
	self := f.Ref(id)
	f.unlink(self, f.pipes[id].To)
	f.unlink(self, f.pipes[id].From)
	f.pipes[id] = Pipe{}
}

func (f *Factory) destroyBuffer(id ecs.EntityID, t ecs.ComponentType) {
	f.buffers[id] = Buffer{}
}

// unlink clears every reference that partner holds to self.
func (f *Factory) unlink(self, partner ecs.Entity) {
	if !partner.Alive() {
		return
	}
	pid := partner.ID()
	switch pt := partner.Type(); {
	case pt.HasAll(fcPort):
		if f.ports[pid].Connected == self {
			f.ports[pid].Connected = ecs.NilEntity
		}
	case pt.HasAll(fcPipe):
		if f.pipes[pid].To == self {
			f.pipes[pid].To = ecs.NilEntity
		}
		if f.pipes[pid].From == self {
			f.pipes[pid].From = ecs.NilEntity
		}
	}
}

// Config returns the factory's effective configuration.
func (f *Factory) Config() Config { return f.cfg }

// Grid returns the factory grid.
func (f *Factory) Grid() *Grid { return &f.grid }

// Pool returns the resource pool.
func (f *Factory) Pool() *resource.Pool { return &f.pool }

// Economy returns the tick economy.
func (f *Factory) Economy() *Economy { return &f.econ }

// Now returns the current frame number.
func (f *Factory) Now() ecstime.Time { return f.clock.Now() }

// Ticks returns how many factory ticks the last frame ran.
func (f *Factory) Ticks() int { return f.ticks }

// Over returns true once the game is lost.
func (f *Factory) Over() bool { return f.over }

// Position returns the tile of a machine or pipe.
func (f *Factory) Position(ent ecs.Entity) (image.Point, bool) {
	if ent.Core() != &f.Core {
		return image.ZP, false
	}
	return f.pos.Get(ent)
}

// Kind returns the kind of a machine.
func (f *Factory) Kind(ent ecs.Entity) (MachineKind, bool) {
	if !f.owns(ent, fcMachine) {
		return 0, false
	}
	return f.machines[ent.ID()].kind, true
}

// Ports returns the ports of a machine in creation order.
func (f *Factory) Ports(ent ecs.Entity) []ecs.Entity {
	if !f.owns(ent, fcMachine) {
		return nil
	}
	return append([]ecs.Entity(nil), f.machines[ent.ID()].ports...)
}

// PortAt returns the port of a machine facing side.
func (f *Factory) PortAt(ent ecs.Entity, side Direction) (ecs.Entity, bool) {
	if !f.owns(ent, fcMachine) {
		return ecs.NilEntity, false
	}
	for _, pe := range f.machines[ent.ID()].ports {
		if pe.Alive() && f.ports[pe.ID()].Side == side {
			return pe, true
		}
	}
	return ecs.NilEntity, false
}

// Port returns the state of a port.
func (f *Factory) Port(ent ecs.Entity) (Port, bool) {
	if !f.owns(ent, fcPort) {
		return Port{}, false
	}
	return f.ports[ent.ID()], true
}

// Pipe returns the state of a pipe.
func (f *Factory) Pipe(ent ecs.Entity) (Pipe, bool) {
	if !f.owns(ent, fcPipe) {
		return Pipe{}, false
	}
	return f.pipes[ent.ID()], true
}

// Buffer returns a machine's buffer.
func (f *Factory) Buffer(ent ecs.Entity) (Buffer, bool) {
	if !f.owns(ent, fcBuffer) {
		return Buffer{}, false
	}
	return f.buffers[ent.ID()], true
}

// SetBuffer replaces the amount held in a machine's buffer; it returns false
// for entities without one.
func (f *Factory) SetBuffer(ent ecs.Entity, amount float64) bool {
	if !f.owns(ent, fcBuffer) {
		return false
	}
	f.buffers[ent.ID()].Amount = amount
	return true
}

func (f *Factory) owns(ent ecs.Entity, t ecs.ComponentType) bool {
	return ent.Core() == &f.Core && ent.Type().HasAll(t)
}
