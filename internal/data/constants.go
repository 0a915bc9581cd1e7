package data

// Tunables consumed by blow resolution.
const (
	// LifeDrainPercent scales experience drain: the drained amount grows
	// by this many points per 100 experience held.
	LifeDrainPercent = 2

	// MaxItemValue caps the amount of gold a single currency object can
	// hold; larger thefts are split into chunks.
	MaxItemValue = 9999

	// InvenDamageCap bounds the carried-item destruction intensity from
	// a single elemental blow.
	InvenDamageCap = 300

	// QuakeRadius is the radius of the localized collapse triggered by
	// crushing blows.
	QuakeRadius = 8

	// ShatterThreshold is the post-mitigation damage a blow must exceed
	// to shake the dungeon around the attacker.
	ShatterThreshold = 23
)
