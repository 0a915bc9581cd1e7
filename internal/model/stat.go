package model

// Stat identifies one of the five primary character stats.
type Stat int

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon

	NumStats
)

// MinStatValue is the floor below which a stat cannot be drained.
const MinStatValue = 3

var statNames = [NumStats]string{"strength", "intelligence", "wisdom", "dexterity", "constitution"}

// Drain adjectives, used in "You feel very <adj>." style messages.
var statDrainDesc = [NumStats]string{"weak", "stupid", "naive", "clumsy", "sickly"}

func (s Stat) String() string {
	if s < 0 || s >= NumStats {
		return "unknown"
	}
	return statNames[s]
}

// DrainDesc returns the adjective describing the loss of this stat.
func (s Stat) DrainDesc() string {
	if s < 0 || s >= NumStats {
		return "diminished"
	}
	return statDrainDesc[s]
}

// SustainFlag returns the flag that protects this stat from drain.
func (s Stat) SustainFlag() Flag {
	switch s {
	case StatStr:
		return SustStr
	case StatInt:
		return SustInt
	case StatWis:
		return SustWis
	case StatDex:
		return SustDex
	case StatCon:
		return SustCon
	}
	return FlagNone
}
