package blow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// Test player: dexterity 10 and level 10 give a theft avoidance
// threshold of 16 out of 100.

func TestHandlerEatGold_Steals(t *testing.T) {
	p := newTestPlayer(t)
	p.Gold = 47
	m := newTestMonster(t)

	// Save roll 50 fails; coin roll 20 -> 47/10 + 20 = 24.
	ctx, rec := newTestContext(t, p, m, 5, 50, 20)

	handlerEatGold(ctx)

	assert.True(t, ctx.Obvious)
	assert.True(t, ctx.Blinked)
	assert.Equal(t, 23, p.Gold)
	assert.True(t, rec.contains("Your purse feels lighter."))
	assert.True(t, rec.contains("24 coins were stolen!"))
	require.Len(t, m.Carried, 1)
	assert.Equal(t, 24, m.Carried[0].Value)
}

func TestHandlerEatGold_TakesEverything(t *testing.T) {
	p := newTestPlayer(t)
	p.Gold = 10

	// 10/10 + 25 = 26, capped at the 10 in the purse.
	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 50, 25)

	handlerEatGold(ctx)

	assert.Zero(t, p.Gold)
	assert.True(t, rec.contains("All of your coins were stolen!"))
}

func TestHandlerEatGold_BigPurseSplitsChunks(t *testing.T) {
	p := newTestPlayer(t)
	p.Gold = 200000
	m := newTestMonster(t)

	// First cut 20000+20 exceeds 5000, so the haul rerolls to
	// 200000/20 + 3000 = 13000, carried as two currency objects.
	ctx, _ := newTestContext(t, p, m, 5, 50, 20, 3000)

	handlerEatGold(ctx)

	assert.Equal(t, 187000, p.Gold)
	require.Len(t, m.Carried, 2)
	assert.Equal(t, 9999, m.Carried[0].Value)
	assert.Equal(t, 3001, m.Carried[1].Value)
}

func TestHandlerEatGold_SaveProtects(t *testing.T) {
	tests := []struct {
		name        string
		blinkRoll   int
		wantBlinked bool
	}{
		{name: "thief still blinks", blinkRoll: 1, wantBlinked: true},
		{name: "thief stays", blinkRoll: 0, wantBlinked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t)
			p.Gold = 500

			ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 5, tt.blinkRoll)

			handlerEatGold(ctx)

			assert.Equal(t, 500, p.Gold)
			assert.True(t, ctx.Obvious)
			assert.Equal(t, tt.wantBlinked, ctx.Blinked)
			assert.True(t, rec.contains("You quickly protect your money pouch!"))
		})
	}
}

func TestHandlerEatItem_Steals(t *testing.T) {
	p := newTestPlayer(t)
	potion := model.NewItem("Potion of Speed", model.ClassPotion)
	require.NoError(t, p.Pack.Add(potion))
	m := newTestMonster(t)

	// Save roll 50 fails; slot roll 0 finds the potion.
	ctx, rec := newTestContext(t, p, m, 5, 50, 0)

	handlerEatItem(ctx)

	assert.True(t, ctx.Obvious)
	assert.True(t, ctx.Blinked)
	assert.Nil(t, p.Pack.Slot(0))
	require.Len(t, m.Carried, 1)
	assert.Equal(t, "Potion of Speed", m.Carried[0].Name)
	assert.True(t, rec.contains("Your Potion of Speed (a) was stolen!"))
}

func TestHandlerEatItem_SplitsStack(t *testing.T) {
	p := newTestPlayer(t)
	potions := model.NewItem("Elixir", model.ClassPotion)
	potions.Number = 3
	require.NoError(t, p.Pack.Add(potions))
	m := newTestMonster(t)

	ctx, rec := newTestContext(t, p, m, 5, 50, 0)

	handlerEatItem(ctx)

	assert.Equal(t, 2, potions.Number)
	require.Len(t, m.Carried, 1)
	assert.Equal(t, 1, m.Carried[0].Number)
	assert.True(t, rec.contains("One of your Elixirs (a) was stolen!"))
}

func TestHandlerEatItem_SaveProtects(t *testing.T) {
	p := newTestPlayer(t)
	require.NoError(t, p.Pack.Add(model.NewItem("Potion of Speed", model.ClassPotion)))

	// Save roll 5 < 16 succeeds.
	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 5)

	handlerEatItem(ctx)

	assert.True(t, ctx.Obvious)
	assert.True(t, ctx.Blinked)
	assert.NotNil(t, p.Pack.Slot(0))
	assert.True(t, rec.contains("You grab hold of your backpack!"))
}

func TestHandlerEatItem_ParalyzedCannotSave(t *testing.T) {
	p := newTestPlayer(t)
	p.Timed[model.TimedParalyzed] = 3
	require.NoError(t, p.Pack.Add(model.NewItem("Potion of Speed", model.ClassPotion)))
	m := newTestMonster(t)

	// No save roll is consumed: the first script value is the slot pick.
	ctx, _ := newTestContext(t, p, m, 5, 0)

	handlerEatItem(ctx)

	assert.Nil(t, p.Pack.Slot(0))
	require.Len(t, m.Carried, 1)
}

func TestHandlerEatItem_SkipsArtifacts(t *testing.T) {
	p := newTestPlayer(t)
	relic := model.NewItem("Phial of Galadriel", model.ClassLight)
	relic.Artifact = true
	require.NoError(t, p.Pack.Add(relic))

	ctx, _ := newTestContext(t, p, newTestMonster(t), 5, 50)
	// Every scan pick lands on the artifact slot.
	ctx.Roller = &rng.Script{Values: []int{50}}

	handlerEatItem(ctx)

	assert.NotNil(t, p.Pack.Slot(0))
	assert.False(t, ctx.Obvious)
	assert.False(t, ctx.Blinked)
}

func TestHandlerEatItem_EmptyPack(t *testing.T) {
	p := newTestPlayer(t)

	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 50)

	handlerEatItem(ctx)

	assert.False(t, ctx.Obvious)
	assert.False(t, ctx.Blinked)
	assert.Empty(t, rec.lines)
}

func TestHandlerEatFood(t *testing.T) {
	p := newTestPlayer(t)
	p.Pack.SetSlot(0, model.NewItem("Potion of Speed", model.ClassPotion))
	ration := model.NewItem("Ration of Food", model.ClassFood)
	p.Pack.SetSlot(2, ration)

	// First pick hits the inedible potion, second finds the ration.
	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 0, 2)

	handlerEatFood(ctx)

	assert.True(t, ctx.Obvious)
	assert.Nil(t, p.Pack.Slot(2))
	assert.True(t, rec.contains("Your Ration of Food (c) was eaten!"))
}

func TestHandlerEatFood_StackLosesOne(t *testing.T) {
	p := newTestPlayer(t)
	rations := model.NewItem("Biscuit", model.ClassFood)
	rations.Number = 5
	require.NoError(t, p.Pack.Add(rations))

	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 0)

	handlerEatFood(ctx)

	assert.Equal(t, 4, rations.Number)
	assert.True(t, rec.contains("One of your Biscuits (a) was eaten!"))
}

func TestHandlerEatLight(t *testing.T) {
	p := newTestPlayer(t)
	torch := model.NewItem("Wooden Torch", model.ClassLight)
	torch.Fuel = 3000
	p.Equip[model.SlotLight] = torch

	// Drain 250 + 100.
	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 100)

	handlerEatLight(ctx)

	assert.Equal(t, 2650, torch.Fuel)
	assert.True(t, ctx.Obvious)
	assert.True(t, rec.contains("Your light dims."))
}

func TestHandlerEatLight_BlindDefenderSeesNothing(t *testing.T) {
	p := newTestPlayer(t)
	p.Timed[model.TimedBlind] = 5
	torch := model.NewItem("Wooden Torch", model.ClassLight)
	torch.Fuel = 300
	p.Equip[model.SlotLight] = torch

	ctx, rec := newTestContext(t, p, newTestMonster(t), 5, 100)

	handlerEatLight(ctx)

	// Fuel still drains to the floor, but nothing is noticed.
	assert.Zero(t, torch.Fuel)
	assert.False(t, ctx.Obvious)
	assert.Empty(t, rec.lines)
}

func TestHandlerEatLight_NothingToDrain(t *testing.T) {
	tests := []struct {
		name  string
		light *model.Item
	}{
		{name: "no light source", light: nil},
		{name: "artifact light", light: func() *model.Item {
			it := model.NewItem("Phial of Galadriel", model.ClassLight)
			it.Fuel = 100
			it.Artifact = true
			return it
		}()},
		{name: "burnt out", light: func() *model.Item {
			it := model.NewItem("Wooden Torch", model.ClassLight)
			return it
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t)
			p.Equip[model.SlotLight] = tt.light

			ctx, _ := newTestContext(t, p, newTestMonster(t), 5, 100)

			handlerEatLight(ctx)

			assert.False(t, ctx.Obvious)
		})
	}
}

func TestHandlerDisenchant(t *testing.T) {
	p := newTestPlayer(t)
	sword := model.NewItem("Long Sword", model.ClassWeapon)
	sword.Enchant = 2
	p.Equip[model.SlotWeapon] = sword
	m := newTestMonster(t)

	ctx, rec := newTestContext(t, p, m, 8, 0)

	handlerDisenchant(ctx)

	assert.Equal(t, 1, sword.Enchant)
	assert.True(t, ctx.Obvious)
	assert.True(t, rec.contains("Your Long Sword was disenchanted!"))
	assert.True(t, m.Lore.KnowsResist(model.ElemDisen))
}

func TestHandlerDisenchant_ResistBlocks(t *testing.T) {
	p := newTestPlayer(t)
	p.Resists[model.ElemDisen] = model.ResistBasic
	sword := model.NewItem("Long Sword", model.ClassWeapon)
	sword.Enchant = 2
	p.Equip[model.SlotWeapon] = sword
	m := newTestMonster(t)

	ctx, _ := newTestContext(t, p, m, 8)

	handlerDisenchant(ctx)

	assert.Equal(t, 2, sword.Enchant)
	assert.False(t, ctx.Obvious)
	assert.Equal(t, 1, m.Lore.Elements[model.ElemDisen])
}

func TestHandlerDisenchant_NothingEnchanted(t *testing.T) {
	p := newTestPlayer(t)
	p.Equip[model.SlotWeapon] = model.NewItem("Long Sword", model.ClassWeapon)

	ctx, rec := newTestContext(t, p, newTestMonster(t), 8, 0)

	handlerDisenchant(ctx)

	assert.False(t, ctx.Obvious)
	assert.Empty(t, rec.lines)
}

func TestHandlerDrainCharges(t *testing.T) {
	p := newTestPlayer(t)
	wand := model.NewItem("Wand of Stinking Cloud", model.ClassWand)
	wand.Level = 8
	wand.Charges = 5
	require.NoError(t, p.Pack.Add(wand))
	m := newTestMonster(t)
	m.HP = 30

	// Slot roll 0 finds the wand: unpower = 12/(8+2)+1 = 2.
	ctx, rec := newTestContext(t, p, m, 5, 0)

	handlerDrainCharges(ctx)

	assert.Equal(t, 3, wand.Charges)
	assert.True(t, ctx.Obvious)
	assert.True(t, rec.contains("Energy drains from your pack!"))
	// The attacker feeds on the stolen energy: 12 * 2.
	assert.Equal(t, 54, m.HP)
}

func TestHandlerDrainCharges_SkipsEmptyWand(t *testing.T) {
	p := newTestPlayer(t)
	spent := model.NewItem("Wand of Wonder", model.ClassWand)
	spent.Level = 8
	require.NoError(t, p.Pack.Add(spent))
	charged := model.NewItem("Staff of Light", model.ClassStaff)
	charged.Level = 4
	charged.Charges = 7
	require.NoError(t, p.Pack.Add(charged))

	// First pick finds the spent wand and wastes the try; the scan
	// continues to the charged staff: unpower = 12/(4+2)+1 = 3.
	ctx, _ := newTestContext(t, p, newTestMonster(t), 5, 0, 1)

	handlerDrainCharges(ctx)

	assert.Zero(t, spent.Charges)
	assert.Equal(t, 4, charged.Charges)
	assert.True(t, ctx.Obvious)
}

func TestHandlerDrainCharges_NothingChargeable(t *testing.T) {
	p := newTestPlayer(t)
	require.NoError(t, p.Pack.Add(model.NewItem("Potion of Speed", model.ClassPotion)))

	ctx, rec := newTestContext(t, p, newTestMonster(t), 5)
	ctx.Roller = &rng.Script{Values: []int{0}}

	handlerDrainCharges(ctx)

	assert.False(t, ctx.Obvious)
	assert.Empty(t, rec.lines)
}

func TestTheft_DeathShortCircuits(t *testing.T) {
	handlers := map[string]Handler{
		"EAT_GOLD":      handlerEatGold,
		"EAT_ITEM":      handlerEatItem,
		"EAT_FOOD":      handlerEatFood,
		"EAT_LIGHT":     handlerEatLight,
		"DISENCHANT":    handlerDisenchant,
		"DRAIN_CHARGES": handlerDrainCharges,
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			p := newTestPlayer(t)
			p.HP = 5
			p.Gold = 100
			require.NoError(t, p.Pack.Add(model.NewItem("Ration of Food", model.ClassFood)))

			ctx, _ := newTestContext(t, p, newTestMonster(t), 10)

			h(ctx)

			require.True(t, p.Dead)
			assert.Equal(t, 100, p.Gold)
			assert.NotNil(t, p.Pack.Slot(0))
			assert.False(t, ctx.Obvious)
			assert.False(t, ctx.Blinked)
		})
	}
}
