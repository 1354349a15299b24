package factory

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/resource"
)

const netNetwork ecs.ComponentType = 1

// Network is a source port, the pipes its output flows through, and the
// inlet port it ends at, if any. Every placed outlet port has one; an
// unconnected port is a network of just itself.
type Network struct {
	Source   ecs.Entity
	Sink     ecs.Entity
	Resource resource.Kind
	Members  []ecs.Entity
}

// networks holds the most recent rebuild; it is discarded wholesale on the
// next one.
type networks struct {
	ecs.Core
	nets []Network
}

func (ns *networks) init() {
	ns.nets = []Network{{}}
	ns.RegisterAllocator(netNetwork, func(ecs.EntityID, ecs.ComponentType) {
		ns.nets = append(ns.nets, Network{})
	})
	ns.RegisterDestroyer(netNetwork, func(id ecs.EntityID, _ ecs.ComponentType) {
		ns.nets[id] = Network{}
	})
}

func (f *Factory) invalidate(pos image.Point) {
	f.inval++
	f.raise(Signal{Kind: InvalidateSignal, Pos: pos})
}

// PendingInvalidations returns how many invalidations will be drained by the
// next rebuild.
func (f *Factory) PendingInvalidations() int { return f.inval }

// Networks returns the networks found by the last rebuild, in source port
// order.
func (f *Factory) Networks() []Network {
	var out []Network
	for it := f.nets.Iter(netNetwork.All()); it.Next(); {
		out = append(out, f.nets.nets[it.ID()])
	}
	return out
}

// NetworkOf returns the network that a port or pipe belongs to.
func (f *Factory) NetworkOf(ent ecs.Entity) (Network, bool) {
	if ent.Core() != &f.Core || !ent.Alive() {
		return Network{}, false
	}
	cur := f.members.LookupB(ecs.AllClause, ent.ID())
	if !cur.Scan() {
		return Network{}, false
	}
	return f.nets.nets[cur.A().ID()], true
}

// rebuild rediscovers every network when invalidations are pending.
func (f *Factory) rebuild() {
	if f.inval == 0 {
		return
	}
	f.inval = 0
	f.nets.Clear()

	for it := f.Iter(fcPort.All()); it.Next(); {
		src := it.Entity()
		p := f.ports[it.ID()]
		if p.Flow != Outlet {
			continue
		}
		if _, placed := f.pos.Get(p.Parent); !placed {
			continue
		}
		buf, ok := f.Buffer(p.Parent)
		if !ok {
			f.logf("rebuild: source %v of %v has no buffer, skipping", src, p.Parent)
			continue
		}
		net := Network{Source: src, Resource: buf.Kind, Members: []ecs.Entity{src}}
		f.walk(&net, p.Connected)
		f.addNetwork(net)
	}
}

// walk follows the chain from next, collecting pipes until a port or a dead
// end; a repeated pipe ends the walk, as does running past every grid cell.
func (f *Factory) walk(net *Network, next ecs.Entity) {
	limit := f.grid.Size() * f.grid.Size()
	visited := make(map[ecs.EntityID]struct{})
	for next.Alive() {
		t := next.Type()
		if t.HasAll(fcPort) {
			if f.ports[next.ID()].Flow == Inlet {
				net.Sink = next
				net.Members = append(net.Members, next)
			}
			return
		}
		if !t.HasAll(fcPipe) {
			f.logf("rebuild: %v is neither port nor pipe", next)
			return
		}
		if _, seen := visited[next.ID()]; seen {
			f.logf("rebuild: pipe cycle at %v", next)
			return
		}
		if len(visited) >= limit {
			f.logf("rebuild: chain from %v exceeds %v cells", net.Source, limit)
			return
		}
		visited[next.ID()] = struct{}{}
		net.Members = append(net.Members, next)
		next = f.pipes[next.ID()].To
	}
}

func (f *Factory) addNetwork(net Network) {
	ne := f.nets.AddEntity(netNetwork)
	f.nets.nets[ne.ID()] = net
	for _, m := range net.Members {
		f.members.Insert(netNetwork, ne, m)
	}
	f.logf("network %v: %v -> %v (%v members)", net.Resource, net.Source, net.Sink, len(net.Members))
}

// source finds the buffer feeding one of a machine's inlet ports with kind.
func (f *Factory) source(machineID ecs.EntityID, kind resource.Kind) (*Buffer, bool) {
	for _, pe := range f.machines[machineID].ports {
		if f.ports[pe.ID()].Flow != Inlet {
			continue
		}
		net, ok := f.NetworkOf(pe)
		if !ok || net.Sink != pe || net.Resource != kind {
			continue
		}
		if buf, ok := f.sourceBuffer(net); ok {
			return buf, true
		}
	}
	return nil, false
}

func (f *Factory) sourceBuffer(net Network) (*Buffer, bool) {
	if !net.Source.Alive() {
		f.logf("network source %v has gone away", net.Source)
		return nil, false
	}
	parent := f.ports[net.Source.ID()].Parent
	if !f.owns(parent, fcBuffer) {
		f.logf("network source %v has no buffer", net.Source)
		return nil, false
	}
	return &f.buffers[parent.ID()], true
}
