package entity

import (
	"snake-arena/game/types"
)

// Food is the single food cell of a round
type Food struct {
	Pos    types.Point
	Placed bool
}

// Place puts the food on p
func (f *Food) Place(p types.Point) {
	f.Pos = p
	f.Placed = true
}
