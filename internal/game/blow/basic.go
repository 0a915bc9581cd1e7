package blow

import (
	"grimdelve/internal/data"
)

// handlerNone hits the player without doing any damage; the strike's
// entire point is non-damaging, so it is always obvious.
func handlerNone(ctx *Context) {
	ctx.Obvious = true
	ctx.Damage = 0
}

// handlerHurt is pure physical damage after armor mitigation.
func handlerHurt(ctx *Context) {
	ctx.Obvious = true

	ctx.Damage = AdjustDamageArmor(ctx.Damage, ctx.Armor)

	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
}

// handlerShatter is a crushing blow that can collapse the dungeon
// around the attacker. If the collapse displaces the defender, the
// remaining blows this turn are cancelled.
func handlerShatter(ctx *Context) {
	ctx.Obvious = true

	ctx.Damage = AdjustDamageArmor(ctx.Damage, ctx.Armor)

	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	if ctx.Damage > data.ShatterThreshold && ctx.World != nil {
		before := ctx.Player.Pos

		ctx.World.Quake(ctx.Monster.Pos, data.QuakeRadius)

		if before != ctx.Player.Pos {
			ctx.Break = true
		}
	}
}
