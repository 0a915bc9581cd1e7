package blow

import (
	"grimdelve/internal/data"
	"grimdelve/internal/model"
)

// theftScanTries bounds the random slot picks a thief gets per blow.
const theftScanTries = 10

// slotLetter is the inventory letter for a pack index.
func slotLetter(index int) rune {
	return rune('a' + index)
}

// guardSave rolls the dexterity-and-level saving throw against theft.
// A paralyzed defender cannot protect anything.
func guardSave(ctx *Context) bool {
	p := ctx.Player
	if p.Timed[model.TimedParalyzed] > 0 {
		return false
	}
	return ctx.Roller.IntN(100) < data.TheftAvoidance(p.Stats[model.StatDex])+p.Level
}

func handlerDisenchant(ctx *Context) {
	ctx.Player.TakeHit(ctx.Damage, ctx.DeathDesc)
	if ctx.Player.Dead {
		return
	}

	if ctx.Player.ResistLevel(model.ElemDisen) <= 0 {
		disenchantEquipment(ctx)
	}

	learn(ctx, model.FlagNone, model.ElemDisen)
}

// disenchantEquipment degrades a randomly chosen worn item's
// enchantment by one.
func disenchantEquipment(ctx *Context) {
	p := ctx.Player
	worn := make([]*model.Item, 0, model.NumEquipSlots)
	for _, it := range p.Equip {
		if it != nil {
			worn = append(worn, it)
		}
	}
	if len(worn) == 0 {
		return
	}

	it := worn[ctx.Roller.IntN(len(worn))]
	if it.Enchant <= 0 {
		return
	}
	it.Enchant--
	ctx.msgf("Your %s was disenchanted!", it.Desc())
	ctx.Obvious = true
}

func handlerDrainCharges(ctx *Context) {
	p := ctx.Player
	monster := ctx.Monster

	p.TakeHit(ctx.Damage, ctx.DeathDesc)
	if p.Dead {
		return
	}

	// unpower deliberately persists across scan iterations; the heal
	// check below fires on the accumulated value, matching the classic
	// behavior where a zero-charge find simply wastes the try.
	unpower := 0
	for tries := 0; tries < theftScanTries; tries++ {
		obj := p.Pack.Slot(ctx.Roller.IntN(model.PackSize))
		if obj == nil {
			continue
		}

		if obj.CanHaveCharges() && obj.Charges > 0 {
			unpower = ctx.RLevel/(obj.Level+2) + 1
			newCharge := obj.Charges - unpower
			if newCharge < 0 {
				newCharge = 0
			}
			obj.Charges = newCharge
		}

		if unpower != 0 {
			ctx.msgf("Energy drains from your pack!")
			ctx.Obvious = true

			monster.Heal(ctx.RLevel * unpower)

			// Affect only a single inventory slot.
			break
		}
	}
}

func handlerEatGold(ctx *Context) {
	p := ctx.Player

	p.TakeHit(ctx.Damage, ctx.DeathDesc)
	if p.Dead {
		return
	}

	ctx.Obvious = true

	if guardSave(ctx) {
		ctx.msgf("You quickly protect your money pouch!")

		// Occasional blink anyway.
		if ctx.Roller.IntN(3) != 0 {
			ctx.Blinked = true
		}
		return
	}

	gold := p.Gold/10 + ctx.Roller.RollN1(25)
	if gold < 2 {
		gold = 2
	}
	if gold > 5000 {
		gold = p.Gold/20 + ctx.Roller.RollN1(3000)
	}
	if gold > p.Gold {
		gold = p.Gold
	}
	p.Gold -= gold
	if gold <= 0 {
		ctx.msgf("Nothing was stolen.")
		return
	}

	ctx.msgf("Your purse feels lighter.")
	if p.Gold > 0 {
		ctx.msgf("%d coins were stolen!", gold)
	} else {
		ctx.msgf("All of your coins were stolen!")
	}

	// Stolen gold materializes as carried currency objects, split into
	// chunks no larger than a single object can hold.
	for gold > 0 {
		amt := gold
		if amt > data.MaxItemValue {
			amt = data.MaxItemValue
		}
		ctx.Monster.Carry(model.NewGold(amt))
		gold -= amt
	}

	ctx.Blinked = true
}

func handlerEatItem(ctx *Context) {
	p := ctx.Player

	p.TakeHit(ctx.Damage, ctx.DeathDesc)
	if p.Dead {
		return
	}

	if guardSave(ctx) {
		ctx.msgf("You grab hold of your backpack!")
		ctx.Blinked = true
		ctx.Obvious = true
		return
	}

	for tries := 0; tries < theftScanTries; tries++ {
		index := ctx.Roller.IntN(model.PackSize)
		obj := p.Pack.Slot(index)
		if obj == nil {
			continue
		}
		if obj.Artifact {
			continue
		}

		split := obj.Number > 1
		if split {
			ctx.msgf("One of your %s (%c) was stolen!", obj.Desc(), slotLetter(index))
		} else {
			ctx.msgf("Your %s (%c) was stolen!", obj.Desc(), slotLetter(index))
		}

		stolen := p.Pack.RemoveOne(index)
		ctx.Monster.Carry(stolen)

		ctx.Obvious = true
		ctx.Blinked = true
		break
	}
}

func handlerEatFood(ctx *Context) {
	p := ctx.Player

	p.TakeHit(ctx.Damage, ctx.DeathDesc)
	if p.Dead {
		return
	}

	for tries := 0; tries < theftScanTries; tries++ {
		index := ctx.Roller.IntN(model.PackSize)
		obj := p.Pack.Slot(index)
		if obj == nil {
			continue
		}
		if !obj.IsEdible() {
			continue
		}

		if obj.Number == 1 {
			ctx.msgf("Your %s (%c) was eaten!", obj.Desc(), slotLetter(index))
		} else {
			ctx.msgf("One of your %s (%c) was eaten!", obj.Desc(), slotLetter(index))
		}

		// Eaten, not carried: the item is simply gone.
		p.Pack.RemoveOne(index)

		ctx.Obvious = true
		break
	}
}

func handlerEatLight(ctx *Context) {
	p := ctx.Player

	p.TakeHit(ctx.Damage, ctx.DeathDesc)
	if p.Dead {
		return
	}

	light := p.LightSource()
	if light == nil || light.Fuel <= 0 || light.Artifact {
		return
	}

	drain := 250 + ctx.Roller.RollN1(250)
	light.Fuel -= drain
	if light.Fuel < 0 {
		light.Fuel = 0
	}

	if p.Timed[model.TimedBlind] == 0 {
		ctx.msgf("Your light dims.")
		ctx.Obvious = true
	}
}
