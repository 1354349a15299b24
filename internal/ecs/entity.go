package ecs

import "fmt"

// Entity is a reference to an entity in a Core. References carry the
// generation of the entity they were taken from; once that entity is
// destroyed the reference goes stale, reporting NoType, even if its ID has
// since been re-used.
type Entity struct {
	co  *Core
	id  EntityID
	gen uint32
}

// NilEntity is the zero of Entity, representing "no entity, in no Core".
var NilEntity = Entity{}

func (ent Entity) String() string {
	if ent.co == nil {
		return fmt.Sprintf("Nil<>[%v]", ent.id)
	}
	return fmt.Sprintf("%p<%v>[%v.%v]", ent.co, ent.Type(), ent.id, ent.gen)
}

// Type returns the type of the referenced entity, or NoType if the reference
// is empty or stale.
func (ent Entity) Type() ComponentType {
	if !ent.live() {
		return NoType
	}
	return ent.co.types[ent.id-1]
}

// Alive returns true if the reference points at a live entity.
func (ent Entity) Alive() bool { return ent.Type() != NoType }

// ID returns the ID of the referenced entity; it SHOULD only be called in a
// context where the caller is sure of ownership; when in doubt, use
// Core.Deref(ent) instead.
func (ent Entity) ID() EntityID {
	if ent.co == nil {
		return 0
	}
	return ent.id
}

// Core returns the Core that owns the entity, nil for NilEntity.
func (ent Entity) Core() *Core { return ent.co }

func (ent Entity) live() bool {
	return ent.co != nil && ent.id > 0 && ent.co.gens[ent.id-1] == ent.gen
}

// Deref unpacks an Entity reference, returning its ID; it panics if the Core
// doesn't own the Entity.
func (co *Core) Deref(e Entity) EntityID {
	if e.co == co {
		return e.id
	} else if e.co == nil {
		panic("nil entity")
	} else {
		panic("foreign entity")
	}
}

// Ref returns an Entity reference to the current generation of the given ID;
// the zero ID refers to NilEntity.
func (co *Core) Ref(id EntityID) Entity {
	if id == 0 {
		return NilEntity
	}
	return Entity{co, id, co.gens[id-1]}
}

// AddEntity adds an entity to a core, returning an Entity reference; it MAY
// re-use a previously-used but since-destroyed entity ID. MAY invoke all
// allocators to make space for more entities.
func (co *Core) AddEntity(nt ComponentType) Entity {
	id := co.allocate()
	ent := Entity{co, id, co.gens[id-1]}
	co.SetType(id, nt)
	return ent
}

// Add sets bits in the entity's type, calling any creators that are newly
// satisfied by the new type.
func (ent Entity) Add(t ComponentType) {
	if ent.live() {
		old := ent.co.types[ent.id-1]
		ent.co.SetType(ent.id, old|t)
	}
}

// Delete clears bits in the entity's type, calling any destroyers that are no
// longer satisfied by the new type (which may be NoType).
func (ent Entity) Delete(t ComponentType) {
	if ent.live() {
		old := ent.co.types[ent.id-1]
		ent.co.SetType(ent.id, old & ^t)
	}
}

// Destroy sets the entity's type to NoType, invoking any destroyers that match
// the prior type. Destroying a stale reference does nothing.
func (ent Entity) Destroy() {
	if ent.live() {
		ent.co.SetType(ent.id, NoType)
	}
}

// SetType sets the entity's type; may invoke creators and destroyers as
// appropriate.
func (ent Entity) SetType(t ComponentType) {
	if ent.live() {
		ent.co.SetType(ent.id, t)
	}
}
