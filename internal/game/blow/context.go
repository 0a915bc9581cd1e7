// Package blow resolves the consequences of a single successful melee
// strike against the player: state mutation on the defender, learning
// feedback on the attacker, and outcome flags back to the turn loop.
package blow

import (
	"grimdelve/internal/data"
	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// Messenger receives the literal message strings emitted during
// resolution. The presentation of those strings is the caller's concern.
type Messenger interface {
	Msgf(format string, args ...any)
}

// World is the area-effect capability consumed by crushing blows.
type World interface {
	// Quake collapses the dungeon around center within the given radius
	// and may displace the player in the process.
	Quake(center model.Point, radius int)
}

// Handler resolves one blow effect, mutating the context in place.
type Handler func(ctx *Context)

// Context is the unit of work for one strike's effect resolution.
// Created fresh per blow, passed into exactly one handler, discarded
// after the outcome flags are read back.
type Context struct {
	Player  *model.Player
	Monster *model.Monster
	Method  *data.BlowMethod

	// Damage is the raw damage roll; handlers may rescale it.
	Damage int
	// Armor is the defender's armor class at the moment of the blow.
	Armor int
	// RLevel is the attacker's effective level, scaling status durations
	// and drain magnitudes.
	RLevel int
	// DeathDesc attributes the kill if the defender dies to this blow.
	DeathDesc string

	// Outcome flags, read back by the turn loop.
	Obvious bool // effect's nature became known
	Blinked bool // attacker should disengage after this blow
	Break   bool // cancel remaining blows this turn

	Roller rng.Roller
	Msg    Messenger
	World  World
}

func (ctx *Context) msgf(format string, args ...any) {
	if ctx.Msg != nil {
		ctx.Msg.Msgf(format, args...)
	}
}
