package factory

import (
	"errors"
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// Placement errors.
var (
	ErrNotBuildable   = errors.New("tile is not buildable")
	ErrOccupied       = errors.New("tile is occupied")
	ErrNotPipe        = errors.New("no pipe there")
	ErrNotMachine     = errors.New("no machine there")
	ErrFixedMachine   = errors.New("machine is fixed in place")
	ErrNotSwitch      = errors.New("no pipe switch there")
	ErrUnknownMachine = errors.New("unknown machine kind")
)

func (f *Factory) checkBuildable(pos image.Point) error {
	if !f.grid.Tile(pos) {
		return ErrNotBuildable
	}
	if _, occupied := f.grid.Building(pos); occupied {
		return ErrOccupied
	}
	return nil
}

// PlaceMachine builds a shop machine at pos.
func (f *Factory) PlaceMachine(kind MachineKind, pos image.Point) (ecs.Entity, error) {
	spec, ok := f.cfg.Machines[kind]
	if !ok || kind >= numMachineKinds {
		return ecs.NilEntity, ErrUnknownMachine
	}
	if spec.Fixed {
		return ecs.NilEntity, ErrFixedMachine
	}
	if err := f.checkBuildable(pos); err != nil {
		return ecs.NilEntity, err
	}
	ent := f.spawnMachine(kind, pos, spec.Ports, spec.Output)
	f.logf("placed %v at %v", kind, pos)
	f.raise(Signal{Kind: PlaceSignal, Pos: pos, Entity: ent})
	f.invalidate(pos)
	return ent, nil
}

// DiscardMachine removes the shop machine at pos; its ports go with it.
func (f *Factory) DiscardMachine(pos image.Point) error {
	ent, ok := f.grid.Building(pos)
	if !ok || !ent.Type().HasAll(fcMachine) {
		return ErrNotMachine
	}
	kind := f.machines[ent.ID()].kind
	if f.spec(kind).Fixed {
		return ErrFixedMachine
	}
	f.grid.RemoveBuilding(pos)
	ent.Destroy()
	f.logf("discarded %v at %v", kind, pos)
	f.raise(Signal{Kind: RemoveSignal, Pos: pos, Entity: ent})
	f.invalidate(pos)
	return nil
}

// PlacePipe lays a pipe at pos.
func (f *Factory) PlacePipe(pos image.Point) (ecs.Entity, error) {
	if err := f.checkBuildable(pos); err != nil {
		return ecs.NilEntity, err
	}
	ent := f.spawnPipe(pos)
	f.raise(Signal{Kind: PlaceSignal, Pos: pos, Entity: ent})
	f.invalidate(pos)
	return ent, nil
}

// RemovePipe removes the pipe at pos.
func (f *Factory) RemovePipe(pos image.Point) error {
	ent, ok := f.grid.Building(pos)
	if !ok || !ent.Type().HasAll(fcPipe) {
		return ErrNotPipe
	}
	f.grid.RemoveBuilding(pos)
	ent.Destroy()
	f.raise(Signal{Kind: RemoveSignal, Pos: pos, Entity: ent})
	f.invalidate(pos)
	return nil
}

// Remove removes whatever pipe or shop machine is at pos.
func (f *Factory) Remove(pos image.Point) error {
	ent, ok := f.grid.Building(pos)
	switch {
	case !ok:
		return ErrNotMachine
	case ent.Type().HasAll(fcPipe):
		return f.RemovePipe(pos)
	default:
		return f.DiscardMachine(pos)
	}
}
