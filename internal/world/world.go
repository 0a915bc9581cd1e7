// Package world provides the minimal dungeon-grid capabilities consumed
// by blow resolution: positions and localized area collapse.
package world

import (
	"log/slog"

	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// Field is a bounded dungeon floor holding the defending player.
type Field struct {
	Width  int
	Height int

	Player *model.Player
	Roller rng.Roller
}

// NewField returns a field of the given size with the player placed at
// its center.
func NewField(width, height int, p *model.Player, roller rng.Roller) *Field {
	f := &Field{Width: width, Height: height, Player: p, Roller: roller}
	p.Pos = model.Point{X: width / 2, Y: height / 2}
	return f
}

// Quake collapses the ground around center within radius. A player
// caught in the area has a two-in-three chance of being thrown to an
// adjacent grid.
func (f *Field) Quake(center model.Point, radius int) {
	p := f.Player
	if p == nil || p.Dead {
		return
	}
	if absInt(p.Pos.X-center.X) > radius || absInt(p.Pos.Y-center.Y) > radius {
		return
	}

	if f.Roller.IntN(3) == 0 {
		return
	}

	for tries := 0; tries < 8; tries++ {
		dst := model.Point{
			X: p.Pos.X + f.Roller.IntN(3) - 1,
			Y: p.Pos.Y + f.Roller.IntN(3) - 1,
		}
		if dst == p.Pos || !f.inBounds(dst) {
			continue
		}
		slog.Debug("quake displaced player", "from", p.Pos, "to", dst)
		p.Pos = dst
		return
	}
}

func (f *Field) inBounds(pt model.Point) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < f.Width && pt.Y < f.Height
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
