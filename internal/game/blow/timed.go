package blow

import "grimdelve/internal/model"

// timed resolves a blow that applies a timed status affliction.
// Raw damage lands first; a dead defender short-circuits everything
// else. If a saving throw is requested it succeeds with probability
// equal to the defender's save skill out of 100 and blocks the status.
// Either branch ends with a learning update keyed on the protection
// flag for the status.
func timed(ctx *Context, status model.TimedStatus, amount int, flag model.Flag, attemptSave bool, saveMsg string) {
	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	if attemptSave && ctx.Roller.IntN(100) < ctx.Player.SaveSkill {
		if saveMsg != "" {
			ctx.msgf("%s", saveMsg)
		}
		ctx.Obvious = true
	} else {
		if ctx.Player.IncTimed(status, amount) {
			ctx.Obvious = true
		}
	}

	learn(ctx, flag, model.ElemNone)
}

func handlerBlind(ctx *Context) {
	timed(ctx, model.TimedBlind, 10+ctx.Roller.RollN1(ctx.RLevel),
		model.ProtBlind, false, "")
}

func handlerConfuse(ctx *Context) {
	timed(ctx, model.TimedConfused, 3+ctx.Roller.RollN1(ctx.RLevel),
		model.ProtConf, false, "")
}

func handlerTerrify(ctx *Context) {
	timed(ctx, model.TimedAfraid, 3+ctx.Roller.RollN1(ctx.RLevel),
		model.ProtFear, true, "You stand your ground!")
}

func handlerParalyze(ctx *Context) {
	// A zero-damage paralyzing blow on an already paralyzed defender
	// must still cost at least one hit point, or the lock could never
	// end through this path.
	if ctx.Player.Timed[model.TimedParalyzed] > 0 && ctx.Damage < 1 {
		ctx.Damage = 1
	}

	timed(ctx, model.TimedParalyzed, 3+ctx.Roller.RollN1(ctx.RLevel),
		model.FreeAct, true, "You resist the effects!")
}

// handlerHallu does not go through the timed primitive because its
// learning update is keyed to chaos affinity rather than a single
// protection flag.
func handlerHallu(ctx *Context) {
	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	if ctx.Player.IncTimed(model.TimedHallu, 3+ctx.Roller.RollN1(ctx.RLevel/2)) {
		ctx.msgf("You feel drugged!")
		ctx.Obvious = true
	}

	learn(ctx, model.FlagNone, model.ElemChaos)
}
