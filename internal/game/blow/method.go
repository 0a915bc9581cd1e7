package blow

import (
	"strings"

	"grimdelve/internal/data"
	"grimdelve/internal/rng"
)

var insultPool = [...]string{
	"insults you!",
	"insults your mother!",
	"gives you the finger!",
	"humiliates you!",
	"defiles you!",
	"dances around you!",
	"makes obscene gestures!",
	"moons you!!!",
}

var moanPool = [...]string{
	"wants his mushrooms back.",
	"tells you to get off his land.",
	"looks for his dogs. ",
	"says 'Did you kill my Fang?' ",
	"asks 'Do you want to buy any mushrooms?' ",
	"seems sad about something.",
	"asks if you have seen his dogs.",
	"mumbles something about mushrooms.",
}

// ActionMessage returns the action string appended to the attack
// message. Methods with a literal message use it; the two cosmetic
// methods draw uniformly from their flavor pools.
func ActionMessage(method *data.BlowMethod, roller rng.Roller) string {
	if method == nil {
		return ""
	}
	if method.ActMsg != "" {
		return method.ActMsg
	}
	switch strings.ToUpper(method.Name) {
	case "INSULT":
		return insultPool[roller.IntN(len(insultPool))]
	case "MOAN":
		return moanPool[roller.IntN(len(moanPool))]
	}
	return ""
}
