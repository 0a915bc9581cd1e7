package blow

import (
	"grimdelve/internal/data"
	"grimdelve/internal/model"
)

var elementalHitMsg = map[model.Element]string{
	model.ElemAcid: "You are covered in acid!",
	model.ElemElec: "You are struck by electricity!",
	model.ElemFire: "You are enveloped in flames!",
	model.ElemCold: "You are covered with frost!",
}

// elemental resolves a blow with an elemental aspect. Armor and
// elemental resistance are independent defenses: the attack exploits
// whichever is weaker, so the final damage is the larger of the
// armor-mitigated physical damage and the resistance-adjusted
// elemental damage. pure is false only for poison, which has no
// sensory message here and performs its own learning afterward.
func elemental(ctx *Context, el model.Element, pure bool) {
	if pure {
		ctx.Obvious = true
	}

	if msg, ok := elementalHitMsg[el]; ok {
		ctx.msgf("%s", msg)
	}

	// Elemental attacks get a small armor bonus on the physical half.
	physical := AdjustDamageArmor(ctx.Damage, ctx.Armor+50)
	if ctx.Method == nil || !ctx.Method.Phys {
		physical = 0
	}

	elem := AdjustDamageElement(ctx.Player, el, ctx.Damage, ctx.Roller)

	if physical > elem {
		ctx.Damage = physical
	} else {
		ctx.Damage = elem
	}

	if elem > 0 {
		inventoryDamage(ctx, el, min(elem*5, data.InvenDamageCap))
	}
	if ctx.Damage > 0 {
		ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	}

	if pure {
		learn(ctx, model.FlagNone, el)
	}
}

// inventoryDamage destroys a proportional amount of carried items that
// are vulnerable to the element. intensity is rolled against 300 per
// slot.
func inventoryDamage(ctx *Context, el model.Element, intensity int) {
	p := ctx.Player
	for i := 0; i < model.PackSize; i++ {
		it := p.Pack.Slot(i)
		if it == nil || it.Artifact || !it.Vulnerable(el) {
			continue
		}
		if ctx.Roller.IntN(data.InvenDamageCap) >= intensity {
			continue
		}
		count := 1
		if it.Number > 1 {
			count += ctx.Roller.IntN(it.Number)
		}
		name := it.Desc()
		before := it.Number
		destroyed := p.Pack.Remove(i, count)
		switch {
		case destroyed == before && before == 1:
			ctx.msgf("Your %s was destroyed!", name)
		case destroyed == before:
			ctx.msgf("All of your %s were destroyed!", name)
		case destroyed == 1:
			ctx.msgf("One of your %s was destroyed!", name)
		default:
			ctx.msgf("Some of your %s were destroyed!", name)
		}
	}
}

func handlerAcid(ctx *Context) {
	elemental(ctx, model.ElemAcid, true)
}

func handlerElec(ctx *Context) {
	elemental(ctx, model.ElemElec, true)
}

func handlerFire(ctx *Context) {
	elemental(ctx, model.ElemFire, true)
}

func handlerCold(ctx *Context) {
	elemental(ctx, model.ElemCold, true)
}

// handlerPoison is both an elemental attack and a status attack, so it
// cannot go through the timed primitive. Note the false pure flag: the
// poison learning update happens here, after the status application.
func handlerPoison(ctx *Context) {
	elemental(ctx, model.ElemPoison, false)

	if ctx.Player.Dead {
		return
	}

	if ctx.Player.IncTimed(model.TimedPoisoned, 5+ctx.Roller.RollN1(ctx.RLevel)) {
		ctx.msgf("You are poisoned!")
		ctx.Obvious = true
	}

	learn(ctx, model.FlagNone, model.ElemPoison)
}
