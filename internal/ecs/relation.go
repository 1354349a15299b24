package ecs

// Relation holds entities that each link an A entity in one Core to a B
// entity in another (or the same) Core. The relation's type bits may carry
// data the same way any Core's do.
//
// A relation is destroyed whenever either of its endpoints is; the endpoints
// themselves are left alone.
type Relation struct {
	Core
	aCore, bCore *Core
	aids         []EntityID
	bids         []EntityID
}

// Init attaches the relation to its two Cores; useful for embedding.
func (rel *Relation) Init(aCore, bCore *Core) {
	rel.aCore, rel.bCore = aCore, bCore
	rel.RegisterAllocator(NoType, rel.allocRel)
	rel.RegisterDestroyer(NoType, rel.destroyRel)
	rel.aCore.RegisterDestroyer(NoType, rel.destroyFromA)
	rel.bCore.RegisterDestroyer(NoType, rel.destroyFromB)
}

// A returns a reference to the A-side entity for the given relation entity.
func (rel *Relation) A(ent Entity) Entity {
	return rel.aCore.Ref(rel.aids[rel.Deref(ent)-1])
}

// B returns a reference to the B-side entity for the given relation entity.
func (rel *Relation) B(ent Entity) Entity {
	return rel.bCore.Ref(rel.bids[rel.Deref(ent)-1])
}

func (rel *Relation) allocRel(id EntityID, t ComponentType) {
	rel.aids = append(rel.aids, 0)
	rel.bids = append(rel.bids, 0)
}

func (rel *Relation) destroyRel(id EntityID, t ComponentType) {
	rel.aids[id-1] = 0
	rel.bids[id-1] = 0
}

func (rel *Relation) destroyFromA(aid EntityID, t ComponentType) {
	rel.unlinkAll(rel.aids, aid)
}

func (rel *Relation) destroyFromB(bid EntityID, t ComponentType) {
	rel.unlinkAll(rel.bids, bid)
}

// unlinkAll destroys every live relation whose side entry is id.
func (rel *Relation) unlinkAll(side []EntityID, id EntityID) {
	for i, t := range rel.types {
		if t != NoType && side[i] == id {
			rel.SetType(EntityID(i+1), NoType)
		}
	}
}

// Insert a relation of type r between a and b, returning the relation entity.
func (rel *Relation) Insert(r ComponentType, a, b Entity) Entity {
	aid := rel.aCore.Deref(a)
	bid := rel.bCore.Deref(b)
	ent := rel.AddEntity(r)
	i := int(ent.ID()) - 1
	rel.aids[i] = aid
	rel.bids[i] = bid
	return ent
}

// LookupB returns a Cursor over relations of type tcl whose B side is one of
// ids.
func (rel *Relation) LookupB(tcl TypeClause, ids ...EntityID) *Cursor {
	return &Cursor{rel: rel, it: rel.Iter(tcl), side: rel.bids, ids: ids}
}

// Cursor iterates over relation entities.
type Cursor struct {
	rel  *Relation
	it   Iterator
	side []EntityID
	ids  []EntityID
	ent  Entity
}

// Scan advances the cursor, returning false once no relations remain.
func (cur *Cursor) Scan() bool {
	for cur.it.Next() {
		id := cur.side[cur.it.ID()-1]
		for _, want := range cur.ids {
			if id == want {
				cur.ent = cur.it.Entity()
				return true
			}
		}
	}
	cur.ent = NilEntity
	return false
}

// Entity returns the current relation entity.
func (cur *Cursor) Entity() Entity { return cur.ent }

// A returns the current relation's A-side entity.
func (cur *Cursor) A() Entity {
	if cur.ent == NilEntity {
		return NilEntity
	}
	return cur.rel.A(cur.ent)
}

// B returns the current relation's B-side entity.
func (cur *Cursor) B() Entity {
	if cur.ent == NilEntity {
		return NilEntity
	}
	return cur.rel.B(cur.ent)
}
