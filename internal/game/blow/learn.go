package blow

import "grimdelve/internal/model"

// learn records what this blow's outcome revealed about the player into
// the attacker's lore. Pass model.FlagNone / model.ElemNone for the
// dimension that was not observed.
func learn(ctx *Context, flag model.Flag, el model.Element) {
	if ctx.Monster == nil || ctx.Player == nil {
		return
	}
	if flag != model.FlagNone {
		ctx.Monster.Lore.LearnFlag(flag, ctx.Player.HasFlag(flag))
	}
	if el != model.ElemNone {
		ctx.Monster.Lore.LearnResist(el, ctx.Player.ResistLevel(el))
	}
}
