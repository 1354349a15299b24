package ecs

import "fmt"

// Core is the core of an Entity Component System: it manages the entity IDs,
// their types, and the generation counters that keep stale references from
// aliasing a re-used ID.
type Core struct {
	types []ComponentType
	gens  []uint32
	free  int

	allocators, creators, destroyers []entityFunc
}

type entityFunc struct {
	t ComponentType
	f func(EntityID, ComponentType)
}

// EntityID is the ID of an Entity in a Core; the 0 value is an invalid ID,
// meaning "null entity".
type EntityID int

// ComponentType represents the type of an Entity in a Core.
type ComponentType uint64

// NoType represents an unused entity; one that has been allocated, but not yet
// handed out by AddEntity.
const NoType ComponentType = 0

func (t ComponentType) String() string { return fmt.Sprintf("<%016x>", uint64(t)) }

// HasAll returns true only if all of the masked type bits are set. If the
// mask is NoType, always returns false.
func (t ComponentType) HasAll(mask ComponentType) bool { return mask != NoType && t&mask == mask }

// HasAny returns true only if at least one of the masked type bits is set. If
// the mask is NoType, always returns true.
func (t ComponentType) HasAny(mask ComponentType) bool { return mask == NoType || t&mask != 0 }

// All returns a clause matching types that have all of t's bits.
func (t ComponentType) All() TypeClause { return TypeClause{All: t} }

// Len counts how many active entities exist.
func (co *Core) Len() int {
	n := 0
	for _, t := range co.types {
		if t != NoType {
			n++
		}
	}
	return n
}

// Cap returns how many entities have been statically allocated within the
// Core. If Len() < Cap() then calls to AddEntity will re-use a prior id.
func (co *Core) Cap() int { return len(co.types) }

// Empty returns true only if there are no active entities.
func (co *Core) Empty() bool {
	for _, t := range co.types {
		if t != NoType {
			return false
		}
	}
	return true
}

// Clear destroys all active entities.
func (co *Core) Clear() {
	for i, t := range co.types {
		if t != NoType {
			co.SetType(EntityID(i+1), NoType)
		}
	}
}

// RegisterAllocator registers an allocator function; it panics if any
// allocator is registered that overlaps the given type.
//
// Allocators are called when the Core grows its entity capacity. An allocator
// must create space in each of its data collections so that the given id has
// corresponding element(s).
func (co *Core) RegisterAllocator(t ComponentType, allocator func(EntityID, ComponentType)) {
	for _, ef := range co.allocators {
		if ef.t&t != 0 || ef.t == t {
			panic("aspect type conflict")
		}
	}
	co.allocators = append(co.allocators, entityFunc{t, allocator})
}

// RegisterCreator registers a creator function. The Type may overlap any
// number of other creator Types, so each should be written cooperatively.
//
// Creators are called when an Entity has all of its Type bits added to it.
// Creators registered against NoType trigger when an entity transitions from
// NoType to any arbitrary type.
func (co *Core) RegisterCreator(t ComponentType, creator func(EntityID, ComponentType)) {
	co.creators = append(co.creators, entityFunc{t, creator})
}

// RegisterDestroyer registers a destroyer function. The Type may overlap any
// number of other destroyer Types, so each should be written cooperatively.
//
// Destroyers are called when an Entity has any of its Type bits removed from
// it. NOTE: destroyers must not de-allocate static data.
//
// Destroyers registered against NoType trigger when an entity transitions to
// NoType; the entity's generation only advances after they have all run, so
// they may still compare references against the dying entity.
func (co *Core) RegisterDestroyer(t ComponentType, destroyer func(EntityID, ComponentType)) {
	co.destroyers = append(co.destroyers, entityFunc{t, destroyer})
}

func (co *Core) allocate() EntityID {
	if co.free > 0 {
		for i := 0; i < len(co.types); i++ {
			if co.types[i] == NoType {
				co.free--
				return EntityID(i + 1)
			}
		}
	}
	id := EntityID(len(co.types) + 1)
	co.types = append(co.types, NoType)
	co.gens = append(co.gens, 0)
	for _, ef := range co.allocators {
		ef.f(id, NoType)
	}
	return id
}

// Type returns the entity's type.
func (co *Core) Type(id EntityID) ComponentType { return co.types[id-1] }

// SetType changes an entity's type, calling any relevant lifecycle functions.
func (co *Core) SetType(id EntityID, new ComponentType) {
	i := id - 1
	old := co.types[i]
	if old == new {
		return
	}
	co.types[i] = new
	if old == NoType {
		for _, ef := range co.creators {
			if ef.t == NoType {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if new & ^old != 0 {
		for _, ef := range co.creators {
			if new.HasAll(ef.t) && !old.HasAll(ef.t) {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if old & ^new != 0 {
		for _, ef := range co.destroyers {
			if old.HasAll(ef.t) && !new.HasAll(ef.t) {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if new == NoType {
		for _, ef := range co.destroyers {
			if ef.t == NoType {
				ef.f(id, new)
			}
		}
		co.gens[i]++
		co.free++
	}
}
