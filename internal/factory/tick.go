package factory

import (
	"math"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/resource"
)

// tickOrder is the order machine kinds run in each tick; within a kind,
// machines run in entity ID order, so the lowest ID wins any contended
// resource.
var tickOrder = [...]MachineKind{AmmoFactory, RocketFactory, HullFixer, PipeSwitch}

// fillInlets moves pool resources into inlet buffers, every frame.
func (f *Factory) fillInlets() {
	spec := f.spec(InletMachine)
	for it := f.Iter(fcInlet.All(), fcBuffer.All()); it.Next(); {
		buf := &f.buffers[it.ID()]
		if f.pool.Get(buf.Kind) >= spec.Yield && buf.Amount < spec.Capacity {
			f.pool.Add(buf.Kind, -spec.Yield)
			buf.Amount += spec.Yield
		}
	}
}

// drainOutlets ships transportable resources from network sources into the
// pool, every frame.
func (f *Factory) drainOutlets() {
	spec := f.spec(OutletMachine)
	for it := f.Iter(fcOutlet.All()); it.Next(); {
		for _, pe := range f.machines[it.ID()].ports {
			if f.ports[pe.ID()].Flow != Inlet {
				continue
			}
			net, ok := f.NetworkOf(pe)
			if !ok || net.Sink != pe || !net.Resource.Transportable() {
				continue
			}
			src, ok := f.sourceBuffer(net)
			if !ok || src.Amount < spec.Yield || f.pool.Get(net.Resource) >= spec.Capacity {
				continue
			}
			src.Amount -= spec.Yield
			f.pool.Add(net.Resource, spec.Yield)
		}
	}
}

func (f *Factory) runTicks() {
	for i := 0; i < f.ticks; i++ {
		f.Tick()
	}
}

// Tick runs every tick-gated machine once.
func (f *Factory) Tick() {
	for _, kind := range tickOrder {
		for it := f.Iter(kindTypes[kind].All()); it.Next(); {
			f.produce(kind, it.Entity())
		}
	}
}

// produce runs one production step of a machine, returning true if it made
// anything. Every cost must be available before any is taken.
func (f *Factory) produce(kind MachineKind, ent ecs.Entity) bool {
	spec := f.spec(kind)
	id := ent.ID()
	if spec.ToPool {
		if f.pool.Get(spec.Output) >= spec.Capacity {
			return false
		}
	} else if f.buffers[id].Amount >= spec.Capacity {
		return false
	}

	var srcs [4]*Buffer
	if len(spec.Costs) > len(srcs) {
		f.logf("%v: too many costs", kind)
		return false
	}
	for i, c := range spec.Costs {
		src, ok := f.source(id, c.Kind)
		if !ok || src.Amount < c.Amount {
			return false
		}
		srcs[i] = src
	}
	for i, c := range spec.Costs {
		srcs[i].Amount -= c.Amount
	}

	if spec.ToPool {
		f.pool.Set(spec.Output, math.Min(spec.Capacity, f.pool.Get(spec.Output)+spec.Yield))
	} else {
		f.buffers[id].Amount += spec.Yield
	}
	pos, _ := f.pos.Get(ent)
	f.raise(Signal{Kind: ProduceSignal, Pos: pos, Entity: ent})
	return true
}

func (f *Factory) checkOver() {
	if !f.over && f.pool.Get(resource.Health) <= 0 {
		f.over = true
		f.logf("game over at %v", f.Now())
		f.raise(Signal{Kind: GameOverSignal})
	}
}
