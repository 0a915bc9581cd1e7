package model

import "fmt"

// ItemClass is the broad kind of an item, used for eligibility checks
// (edible, chargeable, flammable and so on).
type ItemClass int

const (
	ClassNone ItemClass = iota
	ClassWeapon
	ClassArmor
	ClassShield
	ClassHelm
	ClassGloves
	ClassBoots
	ClassLight
	ClassRing
	ClassAmulet
	ClassPotion
	ClassScroll
	ClassWand
	ClassStaff
	ClassFood
	ClassGold
)

// Item is a single inventory object or a stack of identical ones.
type Item struct {
	Name     string
	Class    ItemClass
	Level    int // item kind level, scales charge drain
	Number   int // stack size
	Armor    int // base armor contribution when equipped
	Enchant  int // magical bonus, reduced by disenchantment
	Charges  int // wands and staves
	Fuel     int // light sources
	Value    int // gold amount for ClassGold
	Artifact bool
}

// NewItem returns a single item of the given class.
func NewItem(name string, class ItemClass) *Item {
	return &Item{Name: name, Class: class, Number: 1}
}

// NewGold materializes a currency object holding the given amount.
func NewGold(amount int) *Item {
	return &Item{Name: "gold", Class: ClassGold, Number: 1, Value: amount}
}

// CanHaveCharges reports whether this item kind stores magical charges.
func (it *Item) CanHaveCharges() bool {
	return it.Class == ClassWand || it.Class == ClassStaff
}

// IsEdible reports whether the item can be eaten.
func (it *Item) IsEdible() bool {
	return it.Class == ClassFood
}

// Vulnerable reports whether the item kind can be destroyed by the
// given element while carried.
func (it *Item) Vulnerable(el Element) bool {
	switch el {
	case ElemAcid:
		return it.Class == ClassScroll || it.Class == ClassFood
	case ElemElec:
		return it.Class == ClassWand || it.Class == ClassRing
	case ElemFire:
		return it.Class == ClassScroll || it.Class == ClassStaff || it.Class == ClassLight
	case ElemCold:
		return it.Class == ClassPotion
	}
	return false
}

// Desc returns the display name for messages. Stacks of more than one
// read as a plural ("Scrolls of Light").
func (it *Item) Desc() string {
	if it.Number > 1 {
		return it.Name + "s"
	}
	return it.Name
}

func (it *Item) String() string {
	return fmt.Sprintf("%s x%d", it.Name, it.Number)
}
