package factory

import (
	"fmt"
	"image"
	"math"
)

// Direction is one of the four grid directions. Grid Y grows upward, so Up
// steps to y+1.
type Direction uint8

// Directions, in counter-clockwise order starting from Right.
const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists all four directions in scan order.
var Directions = [...]Direction{Right, Up, Left, Down}

var dirVecs = [...]image.Point{
	Right: {1, 0},
	Up:    {0, 1},
	Left:  {-1, 0},
	Down:  {0, -1},
}

var dirNames = [...]string{"Right", "Up", "Left", "Down"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Vec returns the unit step in direction d.
func (d Direction) Vec() image.Point { return dirVecs[d&3] }

// Angle returns d as radians counter-clockwise from Right.
func (d Direction) Angle() float64 { return float64(d&3) * math.Pi / 2 }

// Flip returns the direction pointing the other way.
func (d Direction) Flip() Direction { return (d + 2) & 3 }

// Opposite is Flip.
func (d Direction) Opposite() Direction { return d.Flip() }
