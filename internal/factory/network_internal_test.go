package factory

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/resource"
)

func TestRebuild_cycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = nil
	f := New(cfg)

	inlet := f.spawnMachine(InletMachine, image.Pt(0, 2), []PortSpec{{Right, Outlet}}, resource.Mineral)
	src := f.machines[inlet.ID()].ports[0]
	var ps [4]ecs.Entity
	for i, pt := range []image.Point{{1, 2}, {2, 2}, {2, 3}, {1, 3}} {
		ps[i] = f.spawnPipe(pt)
	}
	f.queue.reset()

	// src -> 0 -> 1 -> 2 -> 3 -> 1 ...
	f.ports[src.ID()].Connected = ps[0]
	f.pipes[ps[0].ID()] = Pipe{From: src, To: ps[1]}
	f.pipes[ps[1].ID()] = Pipe{From: ps[0], To: ps[2]}
	f.pipes[ps[2].ID()] = Pipe{From: ps[1], To: ps[3]}
	f.pipes[ps[3].ID()] = Pipe{From: ps[2], To: ps[1]}

	f.inval = 1
	f.rebuild()

	nets := f.Networks()
	require.Len(t, nets, 1)
	assert.Equal(t, []ecs.Entity{src, ps[0], ps[1], ps[2], ps[3]}, nets[0].Members)
	assert.False(t, nets[0].Sink.Alive())
	assert.LessOrEqual(t, len(nets[0].Members)-1, cfg.Size*cfg.Size)
}

func TestRebuild_lazy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = []Fixture{{Kind: InletMachine, Pos: image.Pt(2, 2), Side: Right, Resource: resource.Gas}}
	f := New(cfg)
	_, err := f.PlacePipe(image.Pt(3, 2))
	require.NoError(t, err)
	for f.PendingConnections() > 0 {
		f.Frame(0)
	}
	require.Len(t, f.Networks(), 1)
	net := f.Networks()[0]
	assert.Equal(t, resource.Gas, net.Resource)

	// Without an invalidation, a rebuild is a no-op even if the graph
	// changed underneath it.
	pipe := net.Members[1]
	f.pipes[pipe.ID()].From = ecs.NilEntity
	f.ports[net.Source.ID()].Connected = ecs.NilEntity
	f.Frame(0)
	assert.Len(t, f.Networks(), 1)

	f.invalidate(image.ZP)
	f.Frame(0)
	require.Len(t, f.Networks(), 1)
	net = f.Networks()[0]
	assert.Equal(t, []ecs.Entity{net.Source}, net.Members, "now a dead end")
	assert.False(t, net.Sink.Alive())
}

func TestRebuild_unconnectedOutlet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = []Fixture{{Kind: InletMachine, Pos: image.Pt(0, 3), Side: Right, Resource: resource.Mineral}}
	f := New(cfg)
	for f.PendingConnections() > 0 {
		f.Frame(0)
	}
	f.Frame(0)

	inlet, _ := f.grid.Building(image.Pt(0, 3))
	src := f.machines[inlet.ID()].ports[0]
	nets := f.Networks()
	require.Len(t, nets, 1)
	assert.Equal(t, Network{Source: src, Resource: resource.Mineral, Members: []ecs.Entity{src}}, nets[0])
	net, ok := f.NetworkOf(src)
	assert.True(t, ok)
	assert.Equal(t, src, net.Source)
}

func TestRebuild_missingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = []Fixture{{Kind: InletMachine, Pos: image.Pt(2, 2), Side: Right, Resource: resource.Mineral}}
	f := New(cfg)
	_, err := f.PlaceMachine(AmmoFactory, image.Pt(3, 2))
	require.NoError(t, err)
	for f.PendingConnections() > 0 {
		f.Frame(0)
	}
	require.Len(t, f.Networks(), 2)

	inlet, _ := f.grid.Building(image.Pt(2, 2))
	inlet.Delete(fcBuffer)
	f.invalidate(image.ZP)
	f.Frame(0)
	nets := f.Networks()
	require.Len(t, nets, 1, "a source without a buffer is skipped")
	assert.Equal(t, resource.Ammo, nets[0].Resource)
}
