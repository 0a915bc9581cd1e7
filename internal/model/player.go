package model

// Point is a dungeon grid position.
type Point struct {
	X, Y int
}

// Equipment slots.
type EquipSlot int

const (
	SlotWeapon EquipSlot = iota
	SlotShield
	SlotBody
	SlotHelm
	SlotGloves
	SlotBoots
	SlotLight
	SlotRing
	SlotAmulet

	NumEquipSlots
)

// Player is the protagonist: the defender in blow resolution.
// All state mutated by effect handlers lives here.
type Player struct {
	Name  string
	Level int

	HP    int
	MaxHP int
	Dead  bool
	// DiedFrom records the damage-source description of the killing blow.
	DiedFrom string

	Stats [NumStats]int
	Exp   int
	Gold  int
	Depth int

	Pack  *Pack
	Equip [NumEquipSlots]*Item

	Timed   [NumTimedStatuses]int
	Resists map[Element]int
	Flags   map[Flag]bool

	// SaveSkill is the saving-throw skill, rolled against 100.
	SaveSkill int

	Pos Point
}

// NewPlayer returns a level lvl player with the given hit points and
// average stats.
func NewPlayer(name string, lvl, hp int) *Player {
	p := &Player{
		Name:    name,
		Level:   lvl,
		HP:      hp,
		MaxHP:   hp,
		Pack:    NewPack(),
		Resists: make(map[Element]int),
		Flags:   make(map[Flag]bool),
	}
	for i := range p.Stats {
		p.Stats[i] = 10
	}
	return p
}

// ResistLevel returns the player's resistance level for an element.
func (p *Player) ResistLevel(el Element) int {
	return p.Resists[el]
}

// HasFlag reports whether the player holds the given ability flag.
func (p *Player) HasFlag(f Flag) bool {
	return p.Flags[f]
}

// ArmorClass sums the armor contribution of everything worn.
func (p *Player) ArmorClass() int {
	ac := 0
	for _, it := range p.Equip {
		if it != nil {
			ac += it.Armor + it.Enchant
		}
	}
	return ac
}

// LightSource returns the equipped light, or nil.
func (p *Player) LightSource() *Item {
	return p.Equip[SlotLight]
}

// TakeHit applies damage and flips the dead flag when hit points run
// out. desc attributes the kill. Further mutation of a dead player is
// undefined; callers must check Dead immediately after this returns.
func (p *Player) TakeHit(damage int, desc string) {
	if p.Dead || damage <= 0 {
		return
	}
	p.HP -= damage
	if p.HP <= 0 {
		p.Dead = true
		p.DiedFrom = desc
	}
}

// IncTimed increases a timed-status counter and reports whether the
// counter actually changed. Protections and resistances block the
// increase outright.
func (p *Player) IncTimed(status TimedStatus, amount int) bool {
	if amount <= 0 || p.timedBlocked(status) {
		return false
	}
	p.Timed[status] += amount
	return true
}

func (p *Player) timedBlocked(status TimedStatus) bool {
	switch status {
	case TimedBlind:
		return p.Flags[ProtBlind]
	case TimedConfused:
		return p.Flags[ProtConf]
	case TimedAfraid:
		return p.Flags[ProtFear]
	case TimedParalyzed:
		return p.Flags[FreeAct]
	case TimedPoisoned:
		return p.Resists[ElemPoison] > 0
	case TimedHallu:
		return p.Resists[ElemChaos] > 0
	}
	return false
}

// DrainStat permanently reduces a stat. It reports whether the stat
// dropped and whether a sustain absorbed the drain instead.
func (p *Player) DrainStat(st Stat) (drained, sustained bool) {
	if st < 0 || st >= NumStats {
		return false, false
	}
	if p.Flags[st.SustainFlag()] {
		return false, true
	}
	if p.Stats[st] <= MinStatValue {
		return false, false
	}
	p.Stats[st]--
	return true, false
}

// LoseExp removes experience, never going below zero.
func (p *Player) LoseExp(amount int) {
	if amount > p.Exp {
		amount = p.Exp
	}
	p.Exp -= amount
}
