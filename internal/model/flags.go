package model

// Flag is a character ability/protection flag. Attackers learn these
// one by one as blow outcomes reveal them.
type Flag int

const (
	FlagNone Flag = iota

	// Stat sustains, in stat order so SustStr+Stat gives the right flag.
	SustStr
	SustInt
	SustWis
	SustDex
	SustCon

	// Status protections.
	ProtBlind
	ProtConf
	ProtFear
	FreeAct

	// Experience drain protection.
	HoldLife
)

var flagNames = map[Flag]string{
	FlagNone:  "NONE",
	SustStr:   "SUST_STR",
	SustInt:   "SUST_INT",
	SustWis:   "SUST_WIS",
	SustDex:   "SUST_DEX",
	SustCon:   "SUST_CON",
	ProtBlind: "PROT_BLIND",
	ProtConf:  "PROT_CONF",
	ProtFear:  "PROT_FEAR",
	FreeAct:   "FREE_ACT",
	HoldLife:  "HOLD_LIFE",
}

func (f Flag) String() string {
	if n, ok := flagNames[f]; ok {
		return n
	}
	return "UNKNOWN"
}

// Element identifies a damage aspect for resistance lookups.
type Element int

const (
	ElemNone Element = iota
	ElemAcid
	ElemElec
	ElemFire
	ElemCold
	ElemPoison
	ElemDisen
	ElemChaos
)

var elementNames = map[Element]string{
	ElemNone:   "NONE",
	ElemAcid:   "ACID",
	ElemElec:   "ELEC",
	ElemFire:   "FIRE",
	ElemCold:   "COLD",
	ElemPoison: "POISON",
	ElemDisen:  "DISEN",
	ElemChaos:  "CHAOS",
}

func (e Element) String() string {
	if n, ok := elementNames[e]; ok {
		return n
	}
	return "UNKNOWN"
}

// Resistance levels. Negative means vulnerable, zero none, ResistImmune
// and above means no damage at all.
const (
	ResistNone   = 0
	ResistBasic  = 1
	ResistImmune = 3
)
