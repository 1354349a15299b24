package factory_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/factory"
)

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

func TestGrid(t *testing.T) {
	var co ecs.Core
	var g factory.Grid
	g.Init(5)

	testCases{
		{"out of bounds is none", func(t *testing.T) {
			for _, pt := range []image.Point{
				{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {5, 5}, {-100, 100},
			} {
				assert.False(t, g.Tile(pt), "tile %v", pt)
				_, ok := g.Building(pt)
				assert.False(t, ok, "building %v", pt)
				_, ok = g.InsertBuilding(pt, co.AddEntity(1))
				assert.False(t, ok, "insert %v", pt)
				_, ok = g.RemoveBuilding(pt)
				assert.False(t, ok, "remove %v", pt)
				assert.False(t, g.Buildable(pt), "buildable %v", pt)
			}
		}},

		{"border is not buildable", func(t *testing.T) {
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					border := x == 0 || y == 0 || x == 4 || y == 4
					assert.Equal(t, !border, g.Tile(image.Pt(x, y)), "%v,%v", x, y)
				}
			}
		}},

		{"insert reports the displaced occupant", func(t *testing.T) {
			pt := image.Pt(2, 2)
			a, b := co.AddEntity(1), co.AddEntity(1)
			old, ok := g.InsertBuilding(pt, a)
			assert.False(t, ok)
			assert.Equal(t, ecs.NilEntity, old)
			assert.False(t, g.Buildable(pt))

			old, ok = g.InsertBuilding(pt, b)
			assert.True(t, ok, "an overwrite must never be silent")
			assert.Equal(t, a, old)

			got, ok := g.RemoveBuilding(pt)
			assert.True(t, ok)
			assert.Equal(t, b, got)
			assert.True(t, g.Buildable(pt))
		}},

		{"destroyed occupants read as empty", func(t *testing.T) {
			pt := image.Pt(1, 3)
			a := co.AddEntity(1)
			g.InsertBuilding(pt, a)
			a.Destroy()
			_, ok := g.Building(pt)
			assert.False(t, ok)
			assert.True(t, g.Buildable(pt))
			co.AddEntity(1) // re-uses a's id
			_, ok = g.Building(pt)
			assert.False(t, ok)
		}},
	}.run(t)

	assert.Equal(t, 5, g.Size())
	assert.Equal(t, image.Rect(0, 0, 5, 5), g.Bounds())
}

func TestTileAt(t *testing.T) {
	for _, tc := range []struct {
		world, origin image.Point
		size          int
		want          image.Point
	}{
		{image.Pt(25, 7), image.ZP, 10, image.Pt(2, 0)},
		{image.Pt(-1, -1), image.ZP, 10, image.Pt(-1, -1)},
		{image.Pt(-10, 20), image.ZP, 10, image.Pt(-1, 2)},
		{image.Pt(15, 15), image.Pt(5, 5), 5, image.Pt(2, 2)},
		{image.Pt(3, 4), image.ZP, 0, image.Pt(3, 4)},
	} {
		assert.Equal(t, tc.want, factory.TileAt(tc.world, tc.origin, tc.size), "%+v", tc)
	}
}

func TestDirection(t *testing.T) {
	for _, tc := range []struct {
		dir  factory.Direction
		vec  image.Point
		flip factory.Direction
	}{
		{factory.Right, image.Pt(1, 0), factory.Left},
		{factory.Up, image.Pt(0, 1), factory.Down},
		{factory.Left, image.Pt(-1, 0), factory.Right},
		{factory.Down, image.Pt(0, -1), factory.Up},
	} {
		assert.Equal(t, tc.vec, tc.dir.Vec(), "%v", tc.dir)
		assert.Equal(t, tc.flip, tc.dir.Flip(), "%v", tc.dir)
		assert.Equal(t, tc.flip, tc.dir.Opposite(), "%v", tc.dir)
		assert.Equal(t, image.ZP, tc.dir.Vec().Add(tc.flip.Vec()))
	}
	assert.InDelta(t, 3.14159, factory.Left.Angle(), 1e-4)
}
