package eps_test

import (
	"image"
	"testing"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/ecs/eps"
	"github.com/stretchr/testify/assert"
)

const (
	tpsPos ecs.ComponentType = 1 << iota
	tpsNom
)

type tps struct {
	ecs.Core
	pos eps.EPS
	nom []string
}

func (tps *tps) init() {
	tps.pos.Init(&tps.Core, tpsPos)
	tps.nom = []string{""}
	tps.Core.RegisterAllocator(tpsNom, tps.alloc)
	tps.Core.RegisterDestroyer(tpsNom, tps.destroyNom)
}

func (tps *tps) alloc(id ecs.EntityID, t ecs.ComponentType) {
	tps.nom = append(tps.nom, "")
}

func (tps *tps) destroyNom(id ecs.EntityID, t ecs.ComponentType) {
	tps.nom[id] = ""
}

func (tps *tps) nomed(nom string) ecs.Entity {
	for it := tps.Iter(tpsNom.All()); it.Next(); {
		if tps.nom[it.ID()] == nom {
			return it.Entity()
		}
	}
	return ecs.NilEntity
}

func (tps *tps) load(xx ...interface{}) {
	for i := 0; i < len(xx); {
		ent := tps.AddEntity(tpsPos | tpsNom)
		tps.nom[ent.ID()] = xx[i].(string)
		i++
		x := xx[i].(int)
		i++
		y := xx[i].(int)
		i++
		tps.pos.Set(ent, image.Pt(x, y))
	}
}

func TestEPS(t *testing.T) {
	var tps tps
	tps.init()
	tps.load(
		"0", 0, 0,
		"a", -1, -1,
		"b", 1, -1,
		"c", 1, 1,
		"d", -1, 1,
	)

	type want struct {
		nom  string
		x, y int
		ok   bool
	}
	check := func(t *testing.T, wants ...want) {
		for i, tc := range wants {
			if pos, ok := tps.pos.Get(tps.nomed(tc.nom)); assert.Equal(t, tc.ok, ok, "[%v] %q ok", i, tc.nom) {
				assert.Equal(t, image.Pt(tc.x, tc.y), pos, "[%v] %q pos", i, tc.nom)
			}
		}
	}

	t.Run("Get loaded", func(t *testing.T) {
		check(t,
			want{"0", 0, 0, true},
			want{"a", -1, -1, true},
			want{"b", 1, -1, true},
			want{"c", 1, 1, true},
			want{"d", -1, 1, true},
			want{"X", 0, 0, false},
		)
	})

	tps.pos.Set(tps.nomed("a"), image.Pt(1, 1))
	tps.pos.Set(tps.nomed("b"), image.Pt(-1, 1))

	t.Run("Get moved", func(t *testing.T) {
		check(t,
			want{"a", 1, 1, true},
			want{"b", -1, 1, true},
			want{"c", 1, 1, true},
		)
	})

	c := tps.nomed("c")
	c.Delete(tpsPos)
	tps.nomed("d").Destroy()

	t.Run("Get deleted", func(t *testing.T) {
		check(t,
			want{"a", 1, 1, true},
			want{"c", 0, 0, false},
			want{"d", 0, 0, false},
		)
		assert.True(t, c.Alive(), "only the position went away")
	})

	t.Run("Set re-adds", func(t *testing.T) {
		tps.pos.Set(c, image.Pt(7, 8))
		assert.True(t, c.Type().HasAll(tpsPos))
		check(t, want{"c", 7, 8, true})
	})
}

func TestEPS_recycledSlot(t *testing.T) {
	var tps tps
	tps.init()
	tps.load("a", 3, 3)
	a := tps.nomed("a")
	a.Destroy()

	ent := tps.AddEntity(tpsNom)
	tps.nom[ent.ID()] = "b"
	assert.Equal(t, a.ID(), ent.ID(), "slot is reused")
	_, ok := tps.pos.Get(ent)
	assert.False(t, ok, "a reused slot starts without a position")
}

func TestEPS_staleEntity(t *testing.T) {
	var tps tps
	tps.init()
	tps.load("a", 1, 1)
	a := tps.nomed("a")
	a.Destroy()
	tps.load("b", 4, 4)
	_, ok := tps.pos.Get(a)
	assert.False(t, ok, "stale references have no position")
	pt, ok := tps.pos.Get(tps.nomed("b"))
	assert.True(t, ok)
	assert.Equal(t, image.Pt(4, 4), pt)
}
