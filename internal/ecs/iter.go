package ecs

// Iter returns a new iterator over the Core's live entities which satisfy all
// of the given TypeClauses.
func (co *Core) Iter(tcls ...TypeClause) Iterator { return Iterator{co, -1, tcls} }

// Iterator points into a Core's entities, iterating over them with optional
// type filter criteria.
type Iterator struct {
	co   *Core
	i    int
	tcls []TypeClause
}

// Next advances the iterator to point at the next matching entity, and
// returns true if such an entity was found; otherwise iteration is done, and
// false is returned.
func (it *Iterator) Next() bool {
	for it.i++; it.i < len(it.co.types); it.i++ {
		if it.test(it.co.types[it.i]) {
			return true
		}
	}
	return false
}

func (it *Iterator) test(t ComponentType) bool {
	if t == NoType {
		return false
	}
	for _, tcl := range it.tcls {
		if !tcl.Test(t) {
			return false
		}
	}
	return true
}

// Reset resets the iterator, causing it to start over.
func (it *Iterator) Reset() { it.i = -1 }

// Count counts how many entities remain to be iterated, without advancing the
// iterator.
func (it Iterator) Count() int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}

func (it Iterator) valid() bool { return it.i >= 0 && it.i < len(it.co.types) }

// Type returns the type of the current entity, or NoType if iteration is
// done.
func (it Iterator) Type() ComponentType {
	if it.valid() {
		return it.co.types[it.i]
	}
	return NoType
}

// ID returns the ID of the current entity, or 0 if iteration is done.
func (it Iterator) ID() EntityID {
	if it.valid() {
		return EntityID(it.i + 1)
	}
	return 0
}

// Entity returns a reference to the current entity, or NilEntity if
// iteration is done.
func (it Iterator) Entity() Entity {
	if it.valid() {
		return it.co.Ref(EntityID(it.i + 1))
	}
	return NilEntity
}
