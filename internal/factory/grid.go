package factory

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// Grid is the fixed square lattice that buildings sit on. Both tile validity
// and occupancy are indexed y*N+x; every lookup is bounds checked, returning
// false for cells outside the grid.
type Grid struct {
	size      int
	tiles     []bool
	buildings []ecs.Entity
}

// Init (re)builds an empty n-by-n grid; all cells but the border are
// buildable.
func (g *Grid) Init(n int) {
	if n < 0 {
		n = 0
	}
	g.size = n
	g.tiles = make([]bool, n*n)
	g.buildings = make([]ecs.Entity, n*n)
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			g.tiles[y*n+x] = true
		}
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Bounds returns the rectangle of valid cell positions.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.size, g.size) }

func (g *Grid) index(pos image.Point) (int, bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= g.size || pos.Y >= g.size {
		return 0, false
	}
	return pos.Y*g.size + pos.X, true
}

// Tile returns true if pos is a buildable cell.
func (g *Grid) Tile(pos image.Point) bool {
	i, ok := g.index(pos)
	return ok && g.tiles[i]
}

// Building returns the live occupant of pos, if any.
func (g *Grid) Building(pos image.Point) (ecs.Entity, bool) {
	i, ok := g.index(pos)
	if !ok {
		return ecs.NilEntity, false
	}
	ent := g.buildings[i]
	if !ent.Alive() {
		return ecs.NilEntity, false
	}
	return ent, true
}

// InsertBuilding puts ent at pos, returning any live occupant it displaced.
// Callers are expected to check Building first; the returned occupant lets
// them detect an overwrite when they didn't. Out of bounds positions are
// ignored.
func (g *Grid) InsertBuilding(pos image.Point, ent ecs.Entity) (ecs.Entity, bool) {
	i, ok := g.index(pos)
	if !ok {
		return ecs.NilEntity, false
	}
	old := g.buildings[i]
	g.buildings[i] = ent
	if !old.Alive() {
		return ecs.NilEntity, false
	}
	return old, true
}

// RemoveBuilding clears pos, returning its live occupant, if any.
func (g *Grid) RemoveBuilding(pos image.Point) (ecs.Entity, bool) {
	i, ok := g.index(pos)
	if !ok {
		return ecs.NilEntity, false
	}
	old := g.buildings[i]
	g.buildings[i] = ecs.NilEntity
	if !old.Alive() {
		return ecs.NilEntity, false
	}
	return old, true
}

// Buildable returns true if pos is a valid tile with no occupant.
func (g *Grid) Buildable(pos image.Point) bool {
	if !g.Tile(pos) {
		return false
	}
	_, occupied := g.Building(pos)
	return !occupied
}

// TileAt converts a world position into the grid cell containing it, given
// the world position of cell (0, 0) and the side length of one cell.
func TileAt(world, origin image.Point, tileSize int) image.Point {
	if tileSize <= 0 {
		tileSize = 1
	}
	d := world.Sub(origin)
	return image.Pt(floorDiv(d.X, tileSize), floorDiv(d.Y, tileSize))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
