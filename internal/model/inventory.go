package model

import "errors"

// PackSize is the number of backpack slots. Random theft picks roll an
// index in [0, PackSize) and treat empty slots as failed attempts.
const PackSize = 23

var ErrPackFull = errors.New("pack is full")

// Pack is a fixed-size backpack. Slots may be nil; slot order is
// meaningful because thieves address items by slot letter.
type Pack struct {
	slots [PackSize]*Item
}

// NewPack returns an empty pack.
func NewPack() *Pack {
	return &Pack{}
}

// Slot returns the item in slot i, or nil for empty or out-of-range.
func (p *Pack) Slot(i int) *Item {
	if i < 0 || i >= PackSize {
		return nil
	}
	return p.slots[i]
}

// Add places the item in the first free slot.
func (p *Pack) Add(it *Item) error {
	for i := range p.slots {
		if p.slots[i] == nil {
			p.slots[i] = it
			return nil
		}
	}
	return ErrPackFull
}

// SetSlot places an item directly into a slot, replacing any occupant.
func (p *Pack) SetSlot(i int, it *Item) {
	if i < 0 || i >= PackSize {
		return
	}
	p.slots[i] = it
}

// RemoveOne splits a single unit off the stack in slot i and returns it.
// A stack of one leaves the slot empty. Returns nil for an empty slot.
func (p *Pack) RemoveOne(i int) *Item {
	it := p.Slot(i)
	if it == nil {
		return nil
	}
	if it.Number > 1 {
		it.Number--
		one := *it
		one.Number = 1
		return &one
	}
	p.slots[i] = nil
	return it
}

// Remove destroys up to n units from the stack in slot i and returns
// how many were actually removed.
func (p *Pack) Remove(i, n int) int {
	it := p.Slot(i)
	if it == nil || n <= 0 {
		return 0
	}
	if n >= it.Number {
		n = it.Number
		p.slots[i] = nil
		return n
	}
	it.Number -= n
	return n
}

// Count returns the number of occupied slots.
func (p *Pack) Count() int {
	n := 0
	for _, it := range p.slots {
		if it != nil {
			n++
		}
	}
	return n
}

// Items returns the occupied slots in order.
func (p *Pack) Items() []*Item {
	out := make([]*Item, 0, PackSize)
	for _, it := range p.slots {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
