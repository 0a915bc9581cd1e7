package model

// Monster is the attacker in blow resolution. Beyond hit points it
// carries loot taken from the player and a lore record of everything
// it has learned about the player's defenses.
type Monster struct {
	Name  string
	Level int

	HP    int
	MaxHP int

	Pos     Point
	Carried []*Item

	Lore Lore
}

// NewMonster returns a monster with full hit points.
func NewMonster(name string, level, maxHP int) *Monster {
	return &Monster{
		Name:  name,
		Level: level,
		HP:    maxHP,
		MaxHP: maxHP,
		Lore:  NewLore(),
	}
}

// Carry adds a stolen object to the monster's held loot.
func (m *Monster) Carry(it *Item) {
	if it == nil {
		return
	}
	m.Carried = append(m.Carried, it)
}

// Heal restores hit points, capped at the maximum.
func (m *Monster) Heal(amount int) int {
	if amount > m.MaxHP-m.HP {
		amount = m.MaxHP - m.HP
	}
	if amount < 0 {
		amount = 0
	}
	m.HP += amount
	return amount
}

// Lore is the attacker-side model of the defender: which ability flags
// the player was observed to have or lack, and the observed resistance
// level per element. It feeds later attack selection.
type Lore struct {
	Flags    map[Flag]bool
	Elements map[Element]int

	seenFlags map[Flag]bool
	seenElems map[Element]bool
}

func NewLore() Lore {
	return Lore{
		Flags:     make(map[Flag]bool),
		Elements:  make(map[Element]int),
		seenFlags: make(map[Flag]bool),
		seenElems: make(map[Element]bool),
	}
}

// LearnFlag records whether the player holds the given flag.
func (l *Lore) LearnFlag(f Flag, has bool) {
	if f == FlagNone {
		return
	}
	l.Flags[f] = has
	l.seenFlags[f] = true
}

// LearnResist records the player's observed resistance level.
func (l *Lore) LearnResist(el Element, level int) {
	if el == ElemNone {
		return
	}
	l.Elements[el] = level
	l.seenElems[el] = true
}

// KnowsFlag reports whether the flag has ever been observed.
func (l *Lore) KnowsFlag(f Flag) bool { return l.seenFlags[f] }

// KnowsResist reports whether the element has ever been observed.
func (l *Lore) KnowsResist(el Element) bool { return l.seenElems[el] }
