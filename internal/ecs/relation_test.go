package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/spacetime/internal/ecs"
)

func setupRelTest() (a, b *stuff, rel *ecs.Relation) {
	a, b = newStuff(), newStuff()
	var as, bs [8]ecs.Entity
	for i := range as {
		as[i] = a.AddEntity(scData)
		bs[i] = b.AddEntity(scData)
	}

	rel = &ecs.Relation{}
	rel.Init(&a.Core, &b.Core)
	for _, ab := range [][2]int{
		{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}, {3, 7},
		{2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 3}, {7, 3},
	} {
		rel.Insert(1, as[ab[0]-1], bs[ab[1]-1])
	}
	return a, b, rel
}

type testCases []testCase
type testCase struct {
	name string
	run  func(t *testing.T)
}

func (tcs testCases) run(t *testing.T) {
	for _, tc := range tcs {
		t.Run(tc.name, tc.run)
	}
}

func TestRelation_destruction(t *testing.T) {
	testCases{
		{"clear A", func(t *testing.T) {
			a, b, r := setupRelTest()
			assert.False(t, r.Empty())
			a.Clear()
			assert.True(t, a.Empty())
			assert.Equal(t, 8, b.Len(), "B is left alone")
			assert.True(t, r.Empty())
		}},

		{"clear B", func(t *testing.T) {
			a, b, r := setupRelTest()
			b.Clear()
			assert.Equal(t, 8, a.Len(), "A is left alone")
			assert.True(t, b.Empty())
			assert.True(t, r.Empty())
		}},

		{"clear rels", func(t *testing.T) {
			a, b, r := setupRelTest()
			r.Clear()
			assert.Equal(t, 8, a.Len())
			assert.Equal(t, 8, b.Len())
			assert.True(t, r.Empty())
		}},

		{"destroy one A", func(t *testing.T) {
			a, b, r := setupRelTest()
			a.Ref(2).Destroy()
			assert.Equal(t, 9, r.Len())
			assert.Equal(t, 7, a.Len())
			assert.Equal(t, 8, b.Len())
			assert.False(t, r.LookupB(ecs.AllClause, 4, 5).Scan())
		}},

		{"destroy one B", func(t *testing.T) {
			a, b, r := setupRelTest()
			b.Ref(1).Destroy()
			assert.Equal(t, 10, r.Len())
			assert.Equal(t, 8, a.Len())
			assert.Equal(t, 7, b.Len())
		}},

		{"same core", func(t *testing.T) {
			s := newStuff()
			x, y, z := s.AddEntity(scData), s.AddEntity(scData), s.AddEntity(scData)
			r := &ecs.Relation{}
			r.Init(&s.Core, &s.Core)
			r.Insert(1, x, y)
			r.Insert(1, y, z)
			r.Insert(1, z, x)
			y.Destroy()
			assert.Equal(t, 1, r.Len())
			cur := r.LookupB(ecs.AllClause, x.ID())
			if assert.True(t, cur.Scan()) {
				assert.Equal(t, z, cur.A())
				assert.Equal(t, x, cur.B())
			}
			assert.False(t, cur.Scan())
		}},
	}.run(t)
}

func TestRelation_lookup(t *testing.T) {
	_, b, r := setupRelTest()
	cur := r.LookupB(ecs.AllClause, 2)
	var as []ecs.EntityID
	for cur.Scan() {
		assert.Equal(t, b.Ref(2), cur.B())
		as = append(as, cur.A().ID())
	}
	assert.Equal(t, []ecs.EntityID{1, 4, 5}, as)
	assert.Equal(t, ecs.NilEntity, cur.Entity())
	assert.Equal(t, ecs.NilEntity, cur.A())

	cur = r.LookupB(ecs.AllClause, 8)
	assert.False(t, cur.Scan(), "b8 is unrelated")

	cur = r.LookupB(scD2.All(), 2)
	assert.False(t, cur.Scan(), "relation type bits must match")
}
