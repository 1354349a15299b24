package factory

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// nextOutlet is the pipe switch outlet cycle; Left is always the inlet.
func nextOutlet(d Direction) Direction {
	switch d {
	case Right:
		return Down
	case Down:
		return Up
	default:
		return Right
	}
}

// ToggleSwitch turns the outlet of the pipe switch at pos to its next
// direction. The old outlet port is replaced, and pipes next to both the old
// and new outlet sides are respawned so that they link up afresh.
func (f *Factory) ToggleSwitch(pos image.Point) error {
	ent, ok := f.grid.Building(pos)
	if !ok || !ent.Type().HasAll(fcSwitch) {
		return ErrNotSwitch
	}
	id := ent.ID()

	old := Right
	idx := -1
	for i, pe := range f.machines[id].ports {
		if pe.Alive() && f.ports[pe.ID()].Flow == Outlet {
			old, idx = f.ports[pe.ID()].Side, i
			break
		}
	}
	next := nextOutlet(old)

	var newPort ecs.Entity
	if idx >= 0 {
		f.machines[id].ports[idx].Destroy()
		newPort = f.addPort(ent, next, Outlet)
		// addPort appended; move the replacement into the old slot.
		ports := f.machines[id].ports
		ports[idx] = newPort
		f.machines[id].ports = ports[:len(ports)-1]
	} else {
		newPort = f.addPort(ent, next, Outlet)
	}

	f.respawnPipe(pos.Add(old.Vec()))
	f.respawnPipe(pos.Add(next.Vec()))
	f.logf("switch %v: %v -> %v", pos, old, next)
	f.invalidate(pos)
	f.raise(Signal{Kind: ToggleSignal, Pos: pos, Entity: ent})
	return nil
}

// SwitchOutlet returns the current outlet direction of the pipe switch at
// pos.
func (f *Factory) SwitchOutlet(pos image.Point) (Direction, bool) {
	ent, ok := f.grid.Building(pos)
	if !ok || !ent.Type().HasAll(fcSwitch) {
		return 0, false
	}
	for _, pe := range f.machines[ent.ID()].ports {
		if p := f.ports[pe.ID()]; pe.Alive() && p.Flow == Outlet {
			return p.Side, true
		}
	}
	return 0, false
}
