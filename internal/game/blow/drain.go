package blow

import (
	"grimdelve/internal/data"
	"grimdelve/internal/model"
)

// drainStat applies the stat-drain effect to one stat, honoring the
// defender's sustain, and messages accordingly.
func drainStat(ctx *Context, st model.Stat) {
	drained, sustained := ctx.Player.DrainStat(st)
	switch {
	case sustained:
		ctx.msgf("You feel %s for a moment, but the feeling passes.", st.DrainDesc())
		ctx.Obvious = true
	case drained:
		ctx.msgf("You feel very %s.", st.DrainDesc())
		ctx.Obvious = true
	}
}

// stat resolves a blow that drains a single stat.
func stat(ctx *Context, st model.Stat) {
	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	drainStat(ctx, st)
}

// experience resolves an experience-draining blow. chance is the
// percent probability that hold-life fully negates the drain; a
// defender who holds life but fails the roll loses a tenth of the
// computed amount.
func experience(ctx *Context, chance, drainAmount int) {
	ctx.Obvious = true

	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	learn(ctx, model.HoldLife, model.ElemNone)
	if ctx.Player.Dead {
		return
	}

	if ctx.Player.HasFlag(model.HoldLife) && ctx.Roller.IntN(100) < chance {
		ctx.msgf("You keep hold of your life force!")
		return
	}

	d := drainAmount + ctx.Player.Exp/100*data.LifeDrainPercent
	if ctx.Player.HasFlag(model.HoldLife) {
		ctx.msgf("You feel your life slipping away!")
		ctx.Player.LoseExp(d / 10)
	} else {
		ctx.msgf("You feel your life draining away!")
		ctx.Player.LoseExp(d)
	}
}

func handlerLoseStr(ctx *Context) { stat(ctx, model.StatStr) }
func handlerLoseInt(ctx *Context) { stat(ctx, model.StatInt) }
func handlerLoseWis(ctx *Context) { stat(ctx, model.StatWis) }
func handlerLoseDex(ctx *Context) { stat(ctx, model.StatDex) }
func handlerLoseCon(ctx *Context) { stat(ctx, model.StatCon) }

func handlerLoseAll(ctx *Context) {
	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	drainStat(ctx, model.StatStr)
	drainStat(ctx, model.StatDex)
	drainStat(ctx, model.StatCon)
	drainStat(ctx, model.StatInt)
	drainStat(ctx, model.StatWis)
}

func handlerExp10(ctx *Context) {
	experience(ctx, 95, ctx.Roller.Damroll(10, 6))
}

func handlerExp20(ctx *Context) {
	experience(ctx, 90, ctx.Roller.Damroll(20, 6))
}

func handlerExp40(ctx *Context) {
	experience(ctx, 75, ctx.Roller.Damroll(40, 6))
}

func handlerExp80(ctx *Context) {
	experience(ctx, 50, ctx.Roller.Damroll(80, 6))
}
