package blow

import (
	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// AdjustDamageArmor mitigates physical damage by armor class. Armor
// contributes up to 60% reduction; anything past 240 AC is wasted.
func AdjustDamageArmor(damage, armor int) int {
	if armor > 240 {
		armor = 240
	}
	if armor < 0 {
		armor = 0
	}
	return damage - damage*armor/400
}

// AdjustDamageElement applies the defender's resistance or
// vulnerability to elemental damage, with a randomized component.
func AdjustDamageElement(p *model.Player, el model.Element, damage int, roller rng.Roller) int {
	level := p.ResistLevel(el)
	switch {
	case level >= model.ResistImmune:
		return 0
	case level > 0:
		// Resisted: divide by between level+1 and level+3.
		return damage / (level + roller.RollN1(3))
	case level < 0:
		// Vulnerable: up to double damage.
		return damage + damage*roller.RollN1(3)/3
	default:
		return damage
	}
}
