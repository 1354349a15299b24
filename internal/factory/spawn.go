package factory

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/resource"
)

func (f *Factory) spec(kind MachineKind) MachineSpec { return f.cfg.Machines[kind] }

func (f *Factory) spawnLayout() {
	for _, fx := range f.cfg.Layout {
		spec, ok := f.cfg.Machines[fx.Kind]
		if !ok {
			f.logf("layout: no spec for %v at %v", fx.Kind, fx.Pos)
			continue
		}
		if !fx.Pos.In(f.grid.Bounds()) {
			f.logf("layout: %v at %v is off the grid", fx.Kind, fx.Pos)
			continue
		}
		if _, occupied := f.grid.Building(fx.Pos); occupied {
			f.logf("layout: %v at %v is occupied", fx.Kind, fx.Pos)
			continue
		}
		ports := make([]PortSpec, len(spec.Ports))
		for i, ps := range spec.Ports {
			ports[i] = PortSpec{Side: fx.Side, Flow: ps.Flow}
		}
		output := spec.Output
		if fx.Kind == InletMachine {
			output = fx.Resource
		}
		f.spawnMachine(fx.Kind, fx.Pos, ports, output)
	}
}

// spawnMachine creates a machine with its ports and occupies pos; the ports
// are queued for connection.
func (f *Factory) spawnMachine(kind MachineKind, pos image.Point, ports []PortSpec, output resource.Kind) ecs.Entity {
	t := fcPosition | fcMachine | kindTypes[kind]
	if !f.spec(kind).ToPool {
		t |= fcBuffer
	}
	ent := f.AddEntity(t)
	id := ent.ID()
	f.machines[id].kind = kind
	if t.HasAll(fcBuffer) {
		f.buffers[id] = Buffer{Kind: output}
	}
	f.pos.Set(ent, pos)
	f.grid.InsertBuilding(pos, ent)
	for _, ps := range ports {
		f.addPort(ent, ps.Side, ps.Flow)
	}
	return ent
}

func (f *Factory) addPort(parent ecs.Entity, side Direction, flow Flow) ecs.Entity {
	pe := f.AddEntity(fcPort)
	f.ports[pe.ID()] = Port{Parent: parent, Side: side, Flow: flow}
	m := &f.machines[parent.ID()]
	m.ports = append(m.ports, pe)
	f.queue.push(pe)
	return pe
}

func (f *Factory) spawnPipe(pos image.Point) ecs.Entity {
	ent := f.AddEntity(fcPosition | fcPipe)
	f.pos.Set(ent, pos)
	f.grid.InsertBuilding(pos, ent)
	f.queue.push(ent)
	return ent
}

// respawnPipe replaces any pipe at pos with a fresh, unlinked one, so that
// its connections get evaluated again.
func (f *Factory) respawnPipe(pos image.Point) (ecs.Entity, bool) {
	old, ok := f.grid.Building(pos)
	if !ok || !old.Type().HasAll(fcPipe) {
		return ecs.NilEntity, false
	}
	f.grid.RemoveBuilding(pos)
	old.Destroy()
	return f.spawnPipe(pos), true
}
