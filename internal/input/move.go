// Package input maps keys onto cursor moves and factory commands.
package input

import (
	"image"
	"unicode"
)

// viMoves are the roguelike h/j/k/l and y/u/b/n keys in a Y-up space, so k
// moves to y+1.
var viMoves = map[rune]image.Point{
	'h': {-1, 0},
	'l': {1, 0},
	'k': {0, 1},
	'j': {0, -1},
	'y': {-1, 1},
	'u': {1, 1},
	'b': {-1, -1},
	'n': {1, -1},
}

// ParseMove returns the cursor move bound to ch. When extra is non-zero, the
// shifted keys move by extra scaled componentwise by the unit move.
func ParseMove(ch rune, extra image.Point) (image.Point, bool) {
	if pt, ok := viMoves[ch]; ok {
		return pt, true
	}
	if extra == image.ZP || !unicode.IsUpper(ch) {
		return image.ZP, false
	}
	if pt, ok := viMoves[unicode.ToLower(ch)]; ok {
		return image.Pt(extra.X*pt.X, extra.Y*pt.Y), true
	}
	return image.ZP, false
}
