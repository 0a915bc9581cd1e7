package blow

import "strings"

// handlers maps effect-kind name → resolution handler. The set is
// closed at build time; new kinds are added only by extending init.
var handlers = map[string]Handler{}

func register(name string, h Handler) {
	handlers[name] = h
}

func init() {
	register("NONE", handlerNone)
	register("HURT", handlerHurt)
	register("POISON", handlerPoison)
	register("DISENCHANT", handlerDisenchant)
	register("DRAIN_CHARGES", handlerDrainCharges)
	register("EAT_GOLD", handlerEatGold)
	register("EAT_ITEM", handlerEatItem)
	register("EAT_FOOD", handlerEatFood)
	register("EAT_LIGHT", handlerEatLight)
	register("ACID", handlerAcid)
	register("ELEC", handlerElec)
	register("FIRE", handlerFire)
	register("COLD", handlerCold)
	register("BLIND", handlerBlind)
	register("CONFUSE", handlerConfuse)
	register("TERRIFY", handlerTerrify)
	register("PARALYZE", handlerParalyze)
	register("LOSE_STR", handlerLoseStr)
	register("LOSE_INT", handlerLoseInt)
	register("LOSE_WIS", handlerLoseWis)
	register("LOSE_DEX", handlerLoseDex)
	register("LOSE_CON", handlerLoseCon)
	register("LOSE_ALL", handlerLoseAll)
	register("SHATTER", handlerShatter)
	register("EXP_10", handlerExp10)
	register("EXP_20", handlerExp20)
	register("EXP_40", handlerExp40)
	register("EXP_80", handlerExp80)
	register("HALLU", handlerHallu)
}

// HandlerFor returns the handler for an effect-kind name, matched
// case-insensitively. A miss is not an error: the caller degrades to
// damage-only behavior.
func HandlerFor(name string) (Handler, bool) {
	h, ok := handlers[strings.ToUpper(name)]
	return h, ok
}

// HandlerCount returns the number of registered effect kinds.
func HandlerCount() int {
	return len(handlers)
}
