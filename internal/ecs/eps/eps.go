// Package eps keeps integer cell positions for the entities of an ecs.Core.
package eps

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// EPS is an Entity Positioning System; (technically it's not an ecs.System, it
// just has a reference to an ecs.Core).
//
// It only stores positions. Lookups by cell belong to whatever owns the cells,
// such as a grid that enforces one occupant per cell.
type EPS struct {
	core *ecs.Core
	t    ecs.ComponentType
	pt   []image.Point
	def  []bool
}

// Init ialize the EPS wrt a given core and component type that
// represents "has a position".
func (eps *EPS) Init(core *ecs.Core, t ecs.ComponentType) {
	eps.core = core
	eps.t = t
	eps.core.RegisterAllocator(eps.t, eps.alloc)
	eps.core.RegisterCreator(eps.t, eps.create)
	eps.core.RegisterDestroyer(eps.t, eps.destroy)
}

// Get the position of an entity; the bool argument is true only if
// the entity actually has a position.
func (eps *EPS) Get(ent ecs.Entity) (image.Point, bool) {
	if !ent.Alive() {
		return image.ZP, false
	}
	id := eps.core.Deref(ent)
	return eps.pt[id-1], eps.def[id-1]
}

// Set the position of an entity, adding the eps's component if
// necessary.
func (eps *EPS) Set(ent ecs.Entity, pt image.Point) {
	id := eps.core.Deref(ent)
	eps.pt[id-1] = pt
	if !eps.def[id-1] {
		ent.Add(eps.t)
	}
}

func (eps *EPS) alloc(id ecs.EntityID, t ecs.ComponentType) {
	eps.pt = append(eps.pt, image.ZP)
	eps.def = append(eps.def, false)
}

func (eps *EPS) create(id ecs.EntityID, t ecs.ComponentType) {
	eps.def[id-1] = true
}

func (eps *EPS) destroy(id ecs.EntityID, t ecs.ComponentType) {
	eps.pt[id-1] = image.ZP
	eps.def[id-1] = false
}
